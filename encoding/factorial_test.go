package encoding

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFactorialDigits_Zero(t *testing.T) {
	require.Nil(t, FactorialDigits(big.NewInt(0)))
}

func TestFactorialDigits_Concrete(t *testing.T) {
	// 1 = 1*1!, 5 = 2*2! + 1*1!, 23 = 3*3! + 2*2! + 1*1! (= 4!-1).
	require.Equal(t, []int{1, 0}, FactorialDigits(big.NewInt(1)))
	require.Equal(t, []int{1, 0, 0}, FactorialDigits(big.NewInt(2)))
	require.Equal(t, []int{2, 1, 0}, FactorialDigits(big.NewInt(5)))
	require.Equal(t, []int{1, 0, 0, 0}, FactorialDigits(big.NewInt(6)))
	require.Equal(t, []int{3, 2, 1, 0}, FactorialDigits(big.NewInt(23)))
	require.Equal(t, []int{1, 0, 0, 0, 0}, FactorialDigits(big.NewInt(24)))
}

// TestFactorialDigits_Law verifies for a range of integers that each
// digit satisfies 0 <= digit_p <= p and that the digits reconstruct
// the value via sum(digit_p * p!).
func TestFactorialDigits_Law(t *testing.T) {
	for n := int64(0); n <= 5000; n++ {
		digits := FactorialDigits(big.NewInt(n))

		total := new(big.Int)
		placeValue := big.NewInt(1) // p!
		for p := 0; p < len(digits); p++ {
			digit := digits[len(digits)-1-p]
			require.GreaterOrEqual(t, digit, 0, "n=%d p=%d", n, p)
			require.LessOrEqual(t, digit, p, "n=%d p=%d", n, p)

			if p > 0 {
				placeValue.Mul(placeValue, big.NewInt(int64(p)))
			}
			total.Add(total, new(big.Int).Mul(big.NewInt(int64(digit)), placeValue))
		}

		require.Equal(t, big.NewInt(n), total, "n=%d digits=%v", n, digits)
	}
}

func TestFactorialDigits_NoLeadingZeros(t *testing.T) {
	for n := int64(1); n <= 720; n++ {
		digits := FactorialDigits(big.NewInt(n))
		require.NotZero(t, digits[0], "n=%d digits=%v", n, digits)
	}
}

func TestFactorialDigits_Large(t *testing.T) {
	// 25! is far past int64 range; the converter must stay exact.
	fact := new(big.Int).MulRange(1, 25)

	digits := FactorialDigits(fact)
	require.Len(t, digits, 26)
	require.Equal(t, 1, digits[0])
	for _, d := range digits[1:] {
		require.Zero(t, d)
	}
}
