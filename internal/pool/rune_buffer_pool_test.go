package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRuneBuffer_Append(t *testing.T) {
	rb := NewRuneBuffer(8)

	rb.Append('a', 'b')
	rb.Append([]rune("cd")...)

	require.Equal(t, 4, rb.Len())
	require.Equal(t, "abcd", rb.String())
	require.Equal(t, []rune("abcd"), rb.Runes())
}

func TestRuneBuffer_Reset(t *testing.T) {
	rb := NewRuneBuffer(8)
	rb.Append([]rune("hello")...)

	capBefore := rb.Cap()
	rb.Reset()

	require.Equal(t, 0, rb.Len())
	require.Equal(t, capBefore, rb.Cap())
}

func TestRuneBuffer_Truncate(t *testing.T) {
	rb := NewRuneBuffer(8)
	rb.Append([]rune("hello")...)

	rb.Truncate(3)
	require.Equal(t, "hel", rb.String())

	require.Panics(t, func() { rb.Truncate(10) })
	require.Panics(t, func() { rb.Truncate(-1) })
}

func TestGetPutRuneBuffer(t *testing.T) {
	rb := GetRuneBuffer()
	require.NotNil(t, rb)
	require.Equal(t, 0, rb.Len())

	rb.Append([]rune("data")...)
	PutRuneBuffer(rb)

	again := GetRuneBuffer()
	require.Equal(t, 0, again.Len())
	PutRuneBuffer(again)
}

func TestPutRuneBuffer_DropsOversized(t *testing.T) {
	rb := NewRuneBuffer(RuneBufferMaxThreshold + 1)
	require.NotPanics(t, func() { PutRuneBuffer(rb) })
	require.NotPanics(t, func() { PutRuneBuffer(nil) })
}
