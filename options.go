package equitext

import (
	"github.com/equitext/equitext/compress"
	"github.com/equitext/equitext/format"
	"github.com/equitext/equitext/internal/options"
)

// EncoderOption configures an Encoder created by NewEncoder.
type EncoderOption = options.Option[*Encoder]

// DecoderOption configures a Decoder created by NewDecoder.
type DecoderOption = options.Option[*Decoder]

// WithCompression selects the compression codec EncodeToBytes applies
// to encoded output. The default is format.CompressionNone.
//
// Returns an error from NewEncoder for unknown compression types.
func WithCompression(compression format.CompressionType) EncoderOption {
	return options.New(func(e *Encoder) error {
		codec, err := compress.GetCodec(compression)
		if err != nil {
			return err
		}
		e.compression = compression
		e.codec = codec

		return nil
	})
}

// WithDecompression selects the compression codec DecodeFromBytes
// expects on its input. It must match the encoder's WithCompression
// setting. The default is format.CompressionNone.
//
// Returns an error from NewDecoder for unknown compression types.
func WithDecompression(compression format.CompressionType) DecoderOption {
	return options.New(func(d *Decoder) error {
		codec, err := compress.GetCodec(compression)
		if err != nil {
			return err
		}
		d.compression = compression
		d.codec = codec

		return nil
	})
}

func applyEncoderOptions(e *Encoder, opts ...EncoderOption) error {
	return options.Apply(e, opts...)
}

func applyDecoderOptions(d *Decoder, opts ...DecoderOption) error {
	return options.Apply(d, opts...)
}
