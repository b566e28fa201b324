package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	capacity := 1024
	bb := NewByteBuffer(capacity)

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, len(bb.B), "new buffer should have zero length")
	assert.Equal(t, capacity, cap(bb.B), "new buffer should have specified capacity")
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(SampleBufferDefaultSize)
	bb.B = append(bb.B, []byte("some data")...)
	originalCap := cap(bb.B)

	bb.Reset()

	assert.Equal(t, 0, len(bb.B), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, cap(bb.B), "Reset should preserve capacity")
}

func TestByteBuffer_MustWrite(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte("packed"))
	bb.MustWrite([]byte(" samples"))

	assert.Equal(t, []byte("packed samples"), bb.Bytes())
	assert.Equal(t, 14, bb.Len())
}

func TestByteBuffer_SliceAndSetLength(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.SetLength(3)
	copy(bb.Slice(0, 3), []byte{0x12, 0x34, 0x56})

	require.Equal(t, []byte{0x12, 0x34, 0x56}, bb.Bytes())

	assert.Panics(t, func() { bb.Slice(2, 1) })
	assert.Panics(t, func() { bb.SetLength(-1) })
	assert.Panics(t, func() { bb.SetLength(cap(bb.B) + 1) })
}

func TestByteBuffer_ExtendOrGrow(t *testing.T) {
	bb := NewByteBuffer(4)

	require.True(t, bb.Extend(4), "should extend within capacity")
	require.False(t, bb.Extend(1), "should refuse to extend past capacity")

	bb.ExtendOrGrow(8)
	assert.Equal(t, 12, bb.Len())
	assert.GreaterOrEqual(t, bb.Cap(), 12)
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.Grow(100)

	assert.GreaterOrEqual(t, bb.Cap(), 100)
	assert.Equal(t, 0, bb.Len(), "Grow should not change length")
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte{1, 2, 3})

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.Equal(t, []byte{1, 2, 3}, out.Bytes())
}

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(64, 128)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("data"))
	p.Put(bb)

	reused := p.Get()
	assert.Equal(t, 0, reused.Len(), "pooled buffer should be reset")
}

func TestByteBufferPool_DiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(8, 16)

	bb := p.Get()
	bb.Grow(1024)
	// Must not panic; oversized buffers are dropped instead of pooled.
	p.Put(bb)
	p.Put(nil)
}

func TestDefaultPools(t *testing.T) {
	sb := GetSampleBuffer()
	require.NotNil(t, sb)
	PutSampleBuffer(sb)

	cb := GetCaptureBuffer()
	require.NotNil(t, cb)
	PutCaptureBuffer(cb)
}
