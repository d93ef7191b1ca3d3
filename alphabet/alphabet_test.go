package alphabet

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromText_SortsAndDeduplicates(t *testing.T) {
	alpha := FromText("banana")

	require.Equal(t, 3, alpha.Size())
	require.Equal(t, "abn", alpha.String())
}

func TestFromText_Empty(t *testing.T) {
	alpha := FromText("")

	require.Equal(t, 0, alpha.Size())
	require.True(t, alpha.IsDegenerate())
}

func TestFromText_SingleSymbol(t *testing.T) {
	alpha := FromText("aaaa")

	require.Equal(t, 1, alpha.Size())
	require.True(t, alpha.IsDegenerate())
}

func TestFromText_Unicode(t *testing.T) {
	alpha := FromText("héllo")

	// Sorted by code point: 'h' < 'l' < 'o' < 'é'.
	require.Equal(t, "hloé", alpha.String())
}

func TestOrdinal(t *testing.T) {
	alpha := FromText("cab")

	for i, r := range "abc" {
		ord, ok := alpha.Ordinal(r)
		require.True(t, ok)
		require.Equal(t, i, ord)
		require.Equal(t, r, alpha.Symbol(i))
	}

	_, ok := alpha.Ordinal('z')
	require.False(t, ok)
}

func TestRunes_ReturnsCopy(t *testing.T) {
	alpha := FromText("abc")

	runes := alpha.Runes()
	runes[0] = 'z'

	require.Equal(t, "abc", alpha.String())
}

func TestFromEncoded_StopsAtFirstRepeat(t *testing.T) {
	// First block of encoder output is a full permutation, so the
	// repeat of 'c' marks the end of the alphabet.
	alpha := FromEncoded("bcacab")

	require.Equal(t, "abc", alpha.String())
}

func TestFromEncoded_NoRepeat(t *testing.T) {
	alpha := FromEncoded("dcba")

	require.Equal(t, "abcd", alpha.String())
}

func TestFromEncoded_Empty(t *testing.T) {
	alpha := FromEncoded("")

	require.Equal(t, 0, alpha.Size())
}

func TestFactorial(t *testing.T) {
	require.Equal(t, big.NewInt(1), FromText("").Factorial())
	require.Equal(t, big.NewInt(1), FromText("a").Factorial())
	require.Equal(t, big.NewInt(2), FromText("ab").Factorial())
	require.Equal(t, big.NewInt(6), FromText("abc").Factorial())
	require.Equal(t, big.NewInt(3628800), FromText("abcdefghij").Factorial())
}

func TestNew_DropsDuplicates(t *testing.T) {
	alpha := New([]rune{'b', 'a', 'b', 'a'})

	require.Equal(t, "ab", alpha.String())
}
