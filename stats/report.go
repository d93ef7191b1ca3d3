package stats

import (
	"cmp"
	"slices"

	"github.com/equitext/equitext/internal/hash"
)

// Count returns the number of occurrences of each rune in text.
func Count(text string) map[rune]int {
	counts := make(map[rune]int)
	for _, r := range text {
		counts[r]++
	}

	return counts
}

// Uniform reports whether every rune of text occurs the same number
// of times. Equitext-encoded texts are uniform by construction; the
// empty text is trivially uniform.
func Uniform(text string) bool {
	counts := Count(text)
	want := -1
	for _, c := range counts {
		if want < 0 {
			want = c
			continue
		}
		if c != want {
			return false
		}
	}

	return true
}

// SymbolCount pairs a rune with its occurrence count.
type SymbolCount struct {
	Symbol rune
	Count  int
}

// Report summarizes the symbol occurrences of a text.
type Report struct {
	// Length is the text length in runes.
	Length int
	// Distinct is the number of distinct runes.
	Distinct int
	// Uniform reports whether all runes occur equally often.
	Uniform bool
	// Fingerprint is the xxHash64 of the text, for pairing encoded
	// and decoded artifacts in logs.
	Fingerprint uint64
	// Counts lists per-rune occurrences, most frequent first, ties
	// broken by code point.
	Counts []SymbolCount
}

// NewReport builds a Report for the given text.
func NewReport(text string) Report {
	counts := Count(text)

	list := make([]SymbolCount, 0, len(counts))
	length := 0
	for r, c := range counts {
		list = append(list, SymbolCount{Symbol: r, Count: c})
		length += c
	}
	slices.SortFunc(list, func(a, b SymbolCount) int {
		if n := cmp.Compare(b.Count, a.Count); n != 0 {
			return n
		}

		return cmp.Compare(a.Symbol, b.Symbol)
	})

	return Report{
		Length:      length,
		Distinct:    len(counts),
		Uniform:     Uniform(text),
		Fingerprint: hash.Fingerprint(text),
		Counts:      list,
	}
}
