package equitext

import (
	"math/rand"
	"testing"
)

func benchmarkText(b *testing.B, n int) string {
	b.Helper()
	rng := rand.New(rand.NewSource(1))

	buf := make([]byte, n)
	for i := range buf {
		buf[i] = printable[rng.Intn(len(printable))]
	}

	return string(buf)
}

func BenchmarkEncode(b *testing.B) {
	text := benchmarkText(b, 4096)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Encode(text); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	text := benchmarkText(b, 4096)
	encoded, err := Encode(text)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Decode(encoded); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	text := benchmarkText(b, 1024)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		encoded, err := Encode(text)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := Decode(encoded); err != nil {
			b.Fatal(err)
		}
	}
}
