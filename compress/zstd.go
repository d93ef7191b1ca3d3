package compress

// ZstdCompressor compresses encoded text with Zstandard. Best ratio
// of the built-in codecs; encoded equitext routinely compresses well
// below the original input size because every block draws on the same
// alphabet.
//
// The default build uses the pure-Go klauspost implementation; the
// "gozstd" build tag selects the cgo-backed valyala implementation.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default
// settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
