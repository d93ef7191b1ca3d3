package encoding

import (
	"fmt"
	"math/big"

	"github.com/equitext/equitext/alphabet"
	"github.com/equitext/equitext/errs"
)

// PermutationIndex returns the rank of perm among all A! orderings of
// the alphabet, in the lexicographic-by-alphabet-order ranking.
//
// It walks perm left to right with a shrinking working copy of the
// alphabet: each symbol contributes its rank within the remaining
// sub-alphabet times the factorial of the remaining radix, then is
// removed from the working copy.
//
// Returns errs.ErrMalformedPermutationBlock unless perm contains each
// alphabet symbol exactly once.
func PermutationIndex(perm []rune, a *alphabet.Alphabet) (*big.Int, error) {
	size := a.Size()
	if len(perm) != size {
		return nil, fmt.Errorf("%w: block length %d, alphabet size %d",
			errs.ErrMalformedPermutationBlock, len(perm), size)
	}

	// fact tracks radix! while radix counts down from A-1; dividing by
	// the current radix steps it down one factorial per symbol.
	fact := big.NewInt(1)
	for i := 2; i < size; i++ {
		fact.Mul(fact, big.NewInt(int64(i)))
	}
	radix := size - 1

	working := a.Runes()
	index := new(big.Int)
	term := new(big.Int)
	for _, r := range perm {
		pos := -1
		for i, w := range working {
			if w == r {
				pos = i
				break
			}
		}
		if pos < 0 {
			// Either a foreign rune or a repeat of one already consumed.
			return nil, fmt.Errorf("%w: unexpected symbol %q",
				errs.ErrMalformedPermutationBlock, r)
		}

		term.SetInt64(int64(pos))
		index.Add(index, term.Mul(term, fact))

		working = append(working[:pos], working[pos+1:]...)
		if radix > 1 {
			fact.Div(fact, big.NewInt(int64(radix)))
		}
		radix--
	}

	return index, nil
}

// Permutation returns the ordering of the alphabet having the given
// rank, the inverse of PermutationIndex.
//
// The rank's factorial digits are left-padded with zeros to exactly A
// digits; each digit selects and removes one symbol from a shrinking
// working copy of the alphabet. The position-0 digit is always zero,
// which forces the single remaining symbol as the last output.
//
// Returns errs.ErrNegativeIndex for negative indices and
// errs.ErrIndexOutOfRange for indices >= A!.
func Permutation(index *big.Int, a *alphabet.Alphabet) ([]rune, error) {
	if index.Sign() < 0 {
		return nil, fmt.Errorf("%w: permutation index %s", errs.ErrNegativeIndex, index)
	}

	size := a.Size()
	digits := FactorialDigits(index)
	if len(digits) > size {
		// A factorial digit sequence of A positions covers exactly [0, A!).
		return nil, fmt.Errorf("%w: permutation index %s for alphabet size %d",
			errs.ErrIndexOutOfRange, index, size)
	}

	working := a.Runes()
	perm := make([]rune, 0, size)
	pad := size - len(digits)
	for i := 0; i < size; i++ {
		d := 0
		if i >= pad {
			d = digits[i-pad]
		}
		perm = append(perm, working[d])
		working = append(working[:d], working[d+1:]...)
	}

	return perm, nil
}
