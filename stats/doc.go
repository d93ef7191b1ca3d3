// Package stats inspects symbol occurrences in texts.
//
// It provides occurrence counting, the uniformity check that defines
// a well-formed equitext encoding (every symbol occurring equally
// often), a summarizing Report with a content fingerprint, and a
// terminal histogram renderer.
//
// The package consumes codec output but is independent of it: any
// text can be counted or rendered.
package stats
