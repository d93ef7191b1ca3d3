// Package errs defines the sentinel errors returned by the equitext
// codec. Call sites wrap these with fmt.Errorf("...: %w", ...) so that
// callers can match them with errors.Is while still seeing the
// offending symbol, block or index in the message.
package errs

import "errors"

var (
	// ErrUnknownSymbol indicates a chunk or block contains a symbol
	// that is not part of the derived alphabet. Well-formed encoder
	// output never triggers it; it signals foreign or corrupted input.
	ErrUnknownSymbol = errors.New("symbol not in alphabet")

	// ErrMalformedPermutationBlock indicates a fixed-size block does
	// not contain each alphabet symbol exactly once (corruption or
	// truncation of the encoded text).
	ErrMalformedPermutationBlock = errors.New("block is not a permutation of the alphabet")

	// ErrIndexOutOfRange indicates a permutation index outside
	// [0, A!) or a combination index that does not fit the chunk
	// space of the alphabet.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNegativeIndex indicates a negative combination or
	// permutation index.
	ErrNegativeIndex = errors.New("index is negative")

	// ErrAlphabetTooSmall indicates the alphabet cannot host the pad
	// symbol, i.e. chunk length >= alphabet size. Unreachable for any
	// alphabet of two or more symbols (A^A > A! always), validated
	// regardless.
	ErrAlphabetTooSmall = errors.New("alphabet too small for padding")

	// ErrInvalidPadding indicates the decoded text ends with a pad
	// marker whose length is zero or exceeds the decoded length.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrInvalidCompression indicates an unsupported compression type
	// was requested.
	ErrInvalidCompression = errors.New("invalid compression type")
)
