// Package encoding implements the pure codec primitives of equitext:
// combination indexing, factorial-number-system conversion,
// permutation indexing and chunk-length selection.
//
// All functions are stateless and operate on explicit alphabet and
// text parameters. Indices are arbitrary-precision (*big.Int):
// combination spaces (A^L) and permutation spaces (A!) overflow any
// fixed-width integer type for realistic alphabets, and a silent
// overflow would corrupt the encoding rather than fail it.
//
// The primitives compose into two pipelines (see the root package):
//
//	encode: chunk -> CombinationIndex -> Permutation -> output block
//	decode: block -> PermutationIndex -> Combination -> chunk
package encoding
