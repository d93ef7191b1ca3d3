package encoding

import (
	"fmt"
	"math/big"

	"github.com/equitext/equitext/alphabet"
	"github.com/equitext/equitext/errs"
)

// CombinationIndex returns the index of a chunk of symbols within the
// combination space of the alphabet: the chunk's ordinals read as a
// base-A number, most significant symbol first.
//
// For a chunk of length L the result lies in [0, A^L).
//
// Returns errs.ErrUnknownSymbol if a rune of the chunk is not part of
// the alphabet.
func CombinationIndex(chunk []rune, a *alphabet.Alphabet) (*big.Int, error) {
	size := big.NewInt(int64(a.Size()))
	total := new(big.Int)
	for _, r := range chunk {
		ord, ok := a.Ordinal(r)
		if !ok {
			return nil, fmt.Errorf("%w: %q", errs.ErrUnknownSymbol, r)
		}
		total.Mul(total, size)
		total.Add(total, big.NewInt(int64(ord)))
	}

	return total, nil
}

// Combination returns the chunk of symbols having the given index
// within the combination space of the alphabet, by repeated division
// by A, prepending alphabet[remainder] each step.
//
// Index 0 yields the empty chunk, not alphabet[0]: leading
// zero-ordinal symbols are not represented. Callers that need a fixed
// chunk length left-pad the result with alphabet[0] (the decoder
// does).
//
// Returns errs.ErrNegativeIndex for negative indices.
func Combination(index *big.Int, a *alphabet.Alphabet) ([]rune, error) {
	if index.Sign() < 0 {
		return nil, fmt.Errorf("%w: combination index %s", errs.ErrNegativeIndex, index)
	}

	size := big.NewInt(int64(a.Size()))
	quot := new(big.Int).Set(index)
	remain := new(big.Int)

	var chunk []rune
	for quot.Sign() != 0 {
		quot.QuoRem(quot, size, remain)
		chunk = append(chunk, a.Symbol(int(remain.Int64())))
	}

	// Symbols were produced least significant first.
	for i, j := 0, len(chunk)-1; i < j; i, j = i+1, j-1 {
		chunk[i], chunk[j] = chunk[j], chunk[i]
	}

	return chunk, nil
}
