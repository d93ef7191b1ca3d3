package encoding

import "math/big"

// FactorialDigits converts a non-negative integer to its digits in
// the factorial number system, most significant digit first.
//
// The digit at position p (counting from the least significant,
// 0-based) satisfies 0 <= digit <= p, and the value equals the sum of
// digit_p * p!. The sequence is minimal, with no leading zero digits;
// index 0 yields nil. Note that the position-0 digit is always zero
// (its place value is 0! with only 0 as a legal digit), so any
// non-zero index produces a sequence ending in 0.
//
// Digits fit in an int: digit_p <= p, and p is bounded by the digit
// count, which in codec use is bounded by the alphabet size.
func FactorialDigits(index *big.Int) []int {
	quot := new(big.Int).Set(index)
	remain := new(big.Int)
	value := big.NewInt(1)

	var digits []int
	for quot.Sign() != 0 {
		quot.QuoRem(quot, value, remain)
		digits = append(digits, int(remain.Int64()))
		value.Add(value, big.NewInt(1))
	}

	// Digits were produced least significant first.
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}

	return digits
}
