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

// Decoder decodes equitext-encoded texts. The zero value expects
// uncompressed input; use NewDecoder with options to configure one.
//
// Decoders hold no per-call state and are safe for concurrent use.
type Decoder struct {
	codec       compress.Codec
	compression format.CompressionType
}

// NewDecoder creates a Decoder configured by the given options.
func NewDecoder(opts ...DecoderOption) (*Decoder, error) {
	dec := &Decoder{compression: format.CompressionNone}
	if err := applyDecoderOptions(dec, opts...); err != nil {
		return nil, err
	}

	return dec, nil
}

// Decode decodes an equitext-encoded text.
//
// Pipeline:
//  1. Recover the alphabet from the text itself: the encoder's first
//     block is a full permutation, so the distinct prefix before the
//     first repeated rune is the whole alphabet. Degenerate alphabets
//     return the text unchanged.
//  2. Select the chunk length L for that alphabet.
//  3. Per block of A runes, permutation index -> combination,
//     left-padded with alphabet[0] to L runes.
//  4. Read the pad length from the final rune's ordinal and drop that
//     many runes.
//
// Corrupted input surfaces as an error: a length that is no multiple
// of A, a block that is not a permutation of the alphabet, a block
// whose combination exceeds the chunk space, or an out-of-range pad
// length. Text that was never equitext-encoded may still decode
// without error into garbage; such input is undefined, not detected.
func (d *Decoder) Decode(text string) (string, error) {
	alpha := alphabet.FromEncoded(text)
	if alpha.IsDegenerate() {
		return text, nil
	}

	size := alpha.Size()
	chunkLen := encoding.ChunkLength(alpha)

	runes := []rune(text)
	if len(runes)%size != 0 {
		return "", fmt.Errorf("%w: text length %d is not a multiple of alphabet size %d",
			errs.ErrMalformedPermutationBlock, len(runes), size)
	}

	buf := pool.GetRuneBuffer()
	defer pool.PutRuneBuffer(buf)

	for i := 0; i < len(runes); i += size {
		index, err := encoding.PermutationIndex(runes[i:i+size], alpha)
		if err != nil {
			return "", err
		}
		chunk, err := encoding.Combination(index, alpha)
		if err != nil {
			return "", err
		}
		if len(chunk) > chunkLen {
			return "", fmt.Errorf("%w: block decodes to %d symbols, chunk length is %d",
				errs.ErrIndexOutOfRange, len(chunk), chunkLen)
		}
		for p := len(chunk); p < chunkLen; p++ {
			buf.Append(alpha.Symbol(0))
		}
		buf.Append(chunk...)
	}

	decoded := buf.Runes()
	lenPad, _ := alpha.Ordinal(decoded[len(decoded)-1])
	if lenPad == 0 || lenPad > chunkLen {
		return "", fmt.Errorf("%w: pad length %d, chunk length %d",
			errs.ErrInvalidPadding, lenPad, chunkLen)
	}

	return string(decoded[:len(decoded)-lenPad]), nil
}

// DecodeFromBytes decompresses the payload with the configured
// compression codec, then decodes it as equitext.
func (d *Decoder) DecodeFromBytes(data []byte) (string, error) {
	decompressed, err := d.dataCodec().Decompress(data)
	if err != nil {
		return "", err
	}

	return d.Decode(string(decompressed))
}

// Compression returns the configured compression type.
func (d *Decoder) Compression() format.CompressionType {
	if d.compression == 0 {
		return format.CompressionNone
	}

	return d.compression
}

func (d *Decoder) dataCodec() compress.Codec {
	if d.codec == nil {
		return compress.NewNoOpCompressor()
	}

	return d.codec
}
