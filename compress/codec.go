package compress

import (
	"fmt"

	"github.com/equitext/equitext/errs"
	"github.com/equitext/equitext/format"
)

// Compressor compresses a byte payload, typically the UTF-8 bytes of
// an equitext-encoded text.
type Compressor interface {
	// Compress compresses the input and returns a newly allocated
	// result. The input slice is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compressor for payloads produced with the
// same algorithm. It returns an error on corrupted or foreign input.
type Decompressor interface {
	// Decompress decompresses the input and returns a newly allocated
	// result. The input slice is not modified.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression
// type.
//
// Returns errs.ErrInvalidCompression for unknown types.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
}
