package encoding

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/equitext/equitext/alphabet"
)

func TestChunkLength_Degenerate(t *testing.T) {
	require.Equal(t, 0, ChunkLength(alphabet.FromText("")))
	require.Equal(t, 0, ChunkLength(alphabet.FromText("aaa")))
}

func TestChunkLength_Concrete(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"ab", 1},         // 2^1 = 2 <= 2! = 2, 2^2 > 2
		{"abc", 1},        // 3^1 = 3 <= 3! = 6, 3^2 = 9 > 6
		{"abcd", 2},       // 4^2 = 16 <= 24, 4^3 = 64 > 24
		{"abcde", 2},      // 5^2 = 25 <= 120, 5^3 = 125 > 120
		{"abcdefghij", 6}, // 10^6 <= 10! = 3628800 < 10^7
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, ChunkLength(alphabet.FromText(tc.text)), "alphabet %q", tc.text)
	}
}

// TestChunkLength_Bound verifies A^L <= A! < A^(L+1) for a range of
// alphabet sizes, including ones whose factorial dwarfs uint64.
func TestChunkLength_Bound(t *testing.T) {
	for size := 2; size <= 120; size++ {
		runes := make([]rune, size)
		for i := range runes {
			runes[i] = rune('!' + i)
		}
		alpha := alphabet.New(runes)

		length := ChunkLength(alpha)
		require.Positive(t, length, "size %d", size)

		base := big.NewInt(int64(size))
		fact := alpha.Factorial()

		within := new(big.Int).Exp(base, big.NewInt(int64(length)), nil)
		require.LessOrEqual(t, within.Cmp(fact), 0, "size %d: A^L > A!", size)

		beyond := new(big.Int).Exp(base, big.NewInt(int64(length+1)), nil)
		require.Equal(t, 1, beyond.Cmp(fact), "size %d: A^(L+1) <= A!", size)
	}
}

// TestChunkLength_BelowAlphabetSize verifies the padding precondition
// L < A holds for every alphabet size (A^A > A! always), so the pad
// symbol alphabet[len_pad] can never fall out of range.
func TestChunkLength_BelowAlphabetSize(t *testing.T) {
	for size := 2; size <= 120; size++ {
		runes := make([]rune, size)
		for i := range runes {
			runes[i] = rune('!' + i)
		}
		alpha := alphabet.New(runes)

		require.Less(t, ChunkLength(alpha), size, "size %d", size)
	}
}
