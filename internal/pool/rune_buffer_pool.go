package pool

import "sync"

const (
	// RuneBufferDefaultSize is the initial capacity of a RuneBuffer
	// obtained from the pool.
	RuneBufferDefaultSize = 4 * 1024
	// RuneBufferMaxThreshold caps the capacity of buffers returned to
	// the pool; larger ones are dropped so one oversized encode does
	// not pin memory for the life of the process.
	RuneBufferMaxThreshold = 256 * 1024
)

// RuneBuffer is a reusable rune slice used to assemble encoder and
// decoder output without reallocating per block.
type RuneBuffer struct {
	// B is the underlying rune slice.
	B []rune
}

// NewRuneBuffer creates a RuneBuffer with the given initial capacity.
func NewRuneBuffer(defaultSize int) *RuneBuffer {
	return &RuneBuffer{
		B: make([]rune, 0, defaultSize),
	}
}

// Append appends runes to the buffer, growing it if necessary.
func (rb *RuneBuffer) Append(runes ...rune) {
	rb.B = append(rb.B, runes...)
}

// Runes returns the underlying rune slice.
func (rb *RuneBuffer) Runes() []rune {
	return rb.B
}

// String returns the buffer contents as a string.
func (rb *RuneBuffer) String() string {
	return string(rb.B)
}

// Len returns the number of runes in the buffer.
func (rb *RuneBuffer) Len() int {
	return len(rb.B)
}

// Cap returns the capacity of the buffer.
func (rb *RuneBuffer) Cap() int {
	return cap(rb.B)
}

// Truncate shortens the buffer to n runes.
// Panics if n is negative or greater than the current length.
func (rb *RuneBuffer) Truncate(n int) {
	if n < 0 || n > len(rb.B) {
		panic("Truncate: invalid length")
	}
	rb.B = rb.B[:n]
}

// Reset empties the buffer but keeps the allocated memory for reuse.
func (rb *RuneBuffer) Reset() {
	rb.B = rb.B[:0]
}

var runeBufferPool = sync.Pool{
	New: func() any {
		return NewRuneBuffer(RuneBufferDefaultSize)
	},
}

// GetRuneBuffer obtains an empty RuneBuffer from the pool.
func GetRuneBuffer() *RuneBuffer {
	rb, _ := runeBufferPool.Get().(*RuneBuffer)
	rb.Reset()

	return rb
}

// PutRuneBuffer returns a RuneBuffer to the pool. Buffers grown past
// RuneBufferMaxThreshold are dropped instead.
func PutRuneBuffer(rb *RuneBuffer) {
	if rb == nil || rb.Cap() > RuneBufferMaxThreshold {
		return
	}
	runeBufferPool.Put(rb)
}
