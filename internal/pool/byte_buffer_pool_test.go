package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 1024, bb.Cap())
}

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(16)

	n, err := bb.Write([]byte("column"))
	require.NoError(t, err)
	require.Equal(t, 6, n)
	require.Equal(t, []byte("column"), bb.Bytes())

	capBefore := bb.Cap()
	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, capBefore, bb.Cap(), "Reset should keep capacity")
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("no-op with enough capacity", func(t *testing.T) {
		bb := NewByteBuffer(64)
		bb.Grow(32)
		assert.Equal(t, 64, bb.Cap())
	})

	t.Run("small buffers grow by default size", func(t *testing.T) {
		bb := NewByteBuffer(8)
		_, _ = bb.Write([]byte("12345678"))
		bb.Grow(1)
		assert.Equal(t, 8+ColumnBufferDefaultSize, bb.Cap())
		assert.Equal(t, []byte("12345678"), bb.Bytes())
	})

	t.Run("grows at least by requested bytes", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(ColumnBufferDefaultSize * 2)
		assert.GreaterOrEqual(t, bb.Cap(), ColumnBufferDefaultSize*2)
	})

	t.Run("large buffers grow by a quarter", func(t *testing.T) {
		size := 8 * ColumnBufferDefaultSize
		bb := NewByteBuffer(size)
		bb.B = bb.B[:size]
		bb.Grow(1)
		assert.Equal(t, size+size/4, bb.Cap())
	})
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	_, _ = bb.Write([]byte("payload"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(7), n)
	require.Equal(t, "payload", out.String())
}

func TestByteBufferPool(t *testing.T) {
	t.Run("get returns empty buffer", func(t *testing.T) {
		p := NewByteBufferPool(128, 0)
		bb := p.Get()
		require.NotNil(t, bb)
		require.Equal(t, 0, bb.Len())
		p.Put(bb)
	})

	t.Run("put resets buffer", func(t *testing.T) {
		p := NewByteBufferPool(128, 0)
		bb := p.Get()
		_, _ = bb.Write([]byte("dirty"))
		p.Put(bb)
		require.Equal(t, 0, bb.Len())
	})

	t.Run("put nil is ignored", func(t *testing.T) {
		p := NewByteBufferPool(128, 0)
		require.NotPanics(t, func() { p.Put(nil) })
	})

	t.Run("oversized buffers are dropped", func(t *testing.T) {
		p := NewByteBufferPool(16, 32)
		bb := NewByteBuffer(64)
		_, _ = bb.Write([]byte("kept as is"))
		p.Put(bb)
		require.Equal(t, 10, bb.Len(), "dropped buffer is not reset")
	})

	t.Run("default column pool", func(t *testing.T) {
		bb := GetColumnBuffer()
		require.NotNil(t, bb)
		require.GreaterOrEqual(t, bb.Cap(), 0)
		PutColumnBuffer(bb)
	})
}
