package equitext

import (
	"fmt"

	"github.com/equitext/equitext/alphabet"
	"github.com/equitext/equitext/compress"
	"github.com/equitext/equitext/encoding"
	"github.com/equitext/equitext/errs"
	"github.com/equitext/equitext/format"
	"github.com/equitext/equitext/internal/pool"
)

// Encoder encodes texts with equitext. The zero value encodes without
// output compression; use NewEncoder with options to configure one.
//
// Encoders hold no per-call state and are safe for concurrent use.
type Encoder struct {
	codec       compress.Codec
	compression format.CompressionType
}

// NewEncoder creates an Encoder configured by the given options.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	enc := &Encoder{compression: format.CompressionNone}
	if err := applyEncoderOptions(enc, opts...); err != nil {
		return nil, err
	}

	return enc, nil
}

// Encode encodes a text with equitext.
//
// Pipeline:
//  1. Derive the alphabet (sorted distinct runes). Degenerate
//     alphabets (size <= 1) return the text unchanged.
//  2. Select the chunk length L, the largest with A^L <= A!.
//  3. Pad with the rune alphabet[len_pad] so the length divides by L.
//     Padding is never empty: an aligned text gains a full pad chunk,
//     otherwise the decoder could not recover the pad length from the
//     final symbol.
//  4. Per chunk, combination index -> permutation of the alphabet;
//     blocks concatenate into the output.
//
// Every block of the result is a permutation of the alphabet, so each
// symbol occurs exactly once per block.
func (e *Encoder) Encode(text string) (string, error) {
	alpha := alphabet.FromText(text)
	if alpha.IsDegenerate() {
		return text, nil
	}

	chunkLen := encoding.ChunkLength(alpha)
	// A^A > A! for A >= 2, so chunkLen < A always holds and the pad
	// symbol below stays in range. Validated, never assumed.
	if chunkLen >= alpha.Size() {
		return "", fmt.Errorf("%w: chunk length %d, alphabet size %d",
			errs.ErrAlphabetTooSmall, chunkLen, alpha.Size())
	}

	runes := []rune(text)
	lenPad := chunkLen - len(runes)%chunkLen
	padSymbol := alpha.Symbol(lenPad)
	for i := 0; i < lenPad; i++ {
		runes = append(runes, padSymbol)
	}

	buf := pool.GetRuneBuffer()
	defer pool.PutRuneBuffer(buf)

	for i := 0; i < len(runes); i += chunkLen {
		index, err := encoding.CombinationIndex(runes[i:i+chunkLen], alpha)
		if err != nil {
			return "", err
		}
		block, err := encoding.Permutation(index, alpha)
		if err != nil {
			return "", err
		}
		buf.Append(block...)
	}

	return buf.String(), nil
}

// EncodeToBytes encodes a text with equitext and compresses the
// result with the configured compression codec.
//
// With the default CompressionNone the returned bytes are the UTF-8
// encoding of Encode's result.
func (e *Encoder) EncodeToBytes(text string) ([]byte, error) {
	encoded, err := e.Encode(text)
	if err != nil {
		return nil, err
	}

	return e.dataCodec().Compress([]byte(encoded))
}

// Compression returns the configured compression type.
func (e *Encoder) Compression() format.CompressionType {
	if e.compression == 0 {
		return format.CompressionNone
	}

	return e.compression
}

func (e *Encoder) dataCodec() compress.Codec {
	if e.codec == nil {
		return compress.NewNoOpCompressor()
	}

	return e.codec
}
