// Package equitext implements a reversible text-to-text transform in
// which every symbol of the alphabet occurs the same number of times
// in the encoded output.
//
// The input's alphabet is its sorted set of distinct symbols. The
// encoder pads the text, slices it into fixed-size chunks, maps each
// chunk to a combination index (the chunk read as a base-A number),
// and re-expresses that index as a permutation of the full alphabet
// via the factorial number system. Each output block is therefore one
// permutation of the alphabet, so every symbol occurs exactly once
// per block. The decoder recovers the alphabet from the encoded text
// itself and inverts each step.
//
// Equalizing occurrences is the goal, not shrinking: the output grows
// by roughly A/L (about 1.44x for printable ASCII). The optional
// compress codecs recover the size cost for storage or transport.
//
// # Basic Usage
//
//	encoded, err := equitext.Encode("hello, world!")
//	if err != nil {
//	    return err
//	}
//	decoded, err := equitext.Decode(encoded)
//	// decoded == "hello, world!"
//
// Texts with at most one distinct symbol (including the empty text)
// pass through both directions unchanged.
//
// With output compression:
//
//	encoder, _ := equitext.NewEncoder(
//	    equitext.WithCompression(format.CompressionZstd),
//	)
//	payload, err := encoder.EncodeToBytes(text)
//
// # Package Structure
//
// This package provides the encode and decode pipelines. The codec
// primitives live in the encoding package, alphabet derivation in the
// alphabet package, occurrence statistics and histogram rendering in
// the stats package.
//
// All operations are pure and deterministic; chunks are processed
// sequentially (blocks are small enough that parallelizing them does
// not pay).
package equitext

// Encode encodes a text with equitext using default settings.
//
// The result is a concatenation of alphabet permutations, one block
// of len(alphabet) symbols per chunk of input. Texts with a
// degenerate alphabet (at most one distinct symbol) are returned
// unchanged.
func Encode(text string) (string, error) {
	return defaultEncoder.Encode(text)
}

// Decode decodes an equitext-encoded text using default settings.
//
// Decoding text that was not produced by Encode is undefined: it may
// return an error, or garbage without one.
func Decode(text string) (string, error) {
	return defaultDecoder.Decode(text)
}

var (
	defaultEncoder = &Encoder{}
	defaultDecoder = &Decoder{}
)
