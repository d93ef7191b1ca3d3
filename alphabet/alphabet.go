// Package alphabet derives and represents the symbol set of a text.
//
// An Alphabet is the sorted sequence of distinct runes appearing in a
// text. Each rune's position in that sequence is its ordinal, the rank
// every codec computation is based on. Alphabets are immutable once
// built and safe for concurrent use.
package alphabet

import (
	"math/big"
	"slices"
)

// Alphabet is an ordered set of distinct runes sorted by code point.
//
// The zero value is an empty alphabet. Use FromText or FromEncoded to
// build one.
type Alphabet struct {
	symbols  []rune
	ordinals map[rune]int
}

// New builds an Alphabet from an arbitrary set of runes. Duplicates
// are dropped and the result is sorted by code point.
func New(symbols []rune) *Alphabet {
	seen := make(map[rune]struct{}, len(symbols))
	distinct := make([]rune, 0, len(symbols))
	for _, r := range symbols {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		distinct = append(distinct, r)
	}
	slices.Sort(distinct)

	ordinals := make(map[rune]int, len(distinct))
	for i, r := range distinct {
		ordinals[r] = i
	}

	return &Alphabet{symbols: distinct, ordinals: ordinals}
}

// FromText derives the alphabet of an arbitrary text: the sorted
// distinct runes it contains.
func FromText(text string) *Alphabet {
	return New([]rune(text))
}

// FromEncoded recovers the alphabet of an equitext-encoded text.
//
// It scans left to right and stops at the first repeated rune. The
// encoder's first output block is a full permutation of the alphabet,
// so every distinct symbol appears before any repeat; collecting the
// distinct prefix and sorting it reproduces the alphabet without
// scanning the whole text.
//
// For texts that are not equitext-encoded the result is whatever
// distinct prefix precedes the first repeat, which may be a strict
// subset of the text's symbols.
func FromEncoded(text string) *Alphabet {
	seen := make(map[rune]struct{})
	prefix := make([]rune, 0, 64)
	for _, r := range text {
		if _, ok := seen[r]; ok {
			break
		}
		seen[r] = struct{}{}
		prefix = append(prefix, r)
	}

	return New(prefix)
}

// Size returns the number of symbols in the alphabet.
func (a *Alphabet) Size() int {
	return len(a.symbols)
}

// IsDegenerate reports whether the alphabet has at most one symbol.
// Degenerate alphabets make the codec a pass-through: occurrence
// uniformity is trivially satisfied (or undefined) below two symbols.
func (a *Alphabet) IsDegenerate() bool {
	return len(a.symbols) <= 1
}

// Symbol returns the rune at the given ordinal.
// Panics if i is out of range, like any slice access.
func (a *Alphabet) Symbol(i int) rune {
	return a.symbols[i]
}

// Ordinal returns the zero-based rank of r within the alphabet and
// whether r belongs to it.
func (a *Alphabet) Ordinal(r rune) (int, bool) {
	i, ok := a.ordinals[r]

	return i, ok
}

// Runes returns a copy of the alphabet's symbols in order. The copy is
// the caller's to mutate; the working-alphabet loops of the
// permutation codec shrink it in place.
func (a *Alphabet) Runes() []rune {
	return slices.Clone(a.symbols)
}

// String returns the alphabet's symbols concatenated in order.
func (a *Alphabet) String() string {
	return string(a.symbols)
}

// Factorial returns A! for alphabet size A, the size of the
// permutation space. Computed fresh on each call; the result is the
// caller's to mutate.
func (a *Alphabet) Factorial() *big.Int {
	f := big.NewInt(1)
	for i := 2; i <= len(a.symbols); i++ {
		f.Mul(f, big.NewInt(int64(i)))
	}

	return f
}
