package encoding

import (
	"math/big"

	"github.com/equitext/equitext/alphabet"
)

// ChunkLength returns the chunk length the codec uses for the given
// alphabet: the largest L with A^L <= A!.
//
// That bound makes every combination index representable as a
// permutation index, so the encode step stays injective. Since
// A^A > A! for every A >= 2, the result is always at most A-1, which
// also keeps the pad symbol alphabet[len_pad] in range.
//
// Alphabets of size 0 or 1 return 0; the encoder and decoder bypass
// the codec entirely for them (the loop below would never terminate
// with A <= 1, where A^L never outgrows A!).
func ChunkLength(a *alphabet.Alphabet) int {
	size := a.Size()
	if size <= 1 {
		return 0
	}

	base := big.NewInt(int64(size))
	limit := a.Factorial()
	power := big.NewInt(1)

	length := 0
	for power.Mul(power, base); power.Cmp(limit) <= 0; power.Mul(power, base) {
		length++
	}

	return length
}
