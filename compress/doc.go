// Package compress provides compression codecs for equitext-encoded
// output.
//
// Equitext encoding is not compression: the output grows by roughly
// A/L over the input (about 1.44x for printable ASCII). It is,
// however, extremely repetitive material for a general-purpose
// compressor, since every A-symbol block is a permutation of the same
// alphabet. This package supplies that second stage for storage or
// transport of encoded text.
//
// The package defines a Codec interface and four implementations
// selected by format.CompressionType:
//
//   - None: pass-through (CompressionNone)
//   - Zstd: best ratio, moderate speed (CompressionZstd)
//   - S2: balanced ratio and speed (CompressionS2)
//   - LZ4: fastest decompression (CompressionLZ4)
//
// The Zstd codec uses the pure-Go klauspost implementation by
// default; building with the "gozstd" tag switches to the cgo-backed
// valyala/gozstd variant.
//
// All codecs are safe for concurrent use. Compression operates on the
// UTF-8 bytes of the encoded text; the equitext transform itself never
// sees compressed data.
package compress
