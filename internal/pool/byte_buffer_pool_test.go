package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(128)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 128, bb.Cap())
}

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(4)

	n, err := bb.Write([]byte("ring"))
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.NoError(t, bb.WriteByte('!'))
	require.Equal(t, []byte("ring!"), bb.Bytes())

	capBefore := bb.Cap()
	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, capBefore, bb.Cap())
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("no-op with spare capacity", func(t *testing.T) {
		bb := NewByteBuffer(64)
		bb.Grow(32)
		assert.Equal(t, 64, bb.Cap())
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(8)
		_, _ = bb.Write([]byte("abcdefgh"))
		bb.Grow(1)

		assert.GreaterOrEqual(t, bb.Cap(), 8+CoordBufferDefaultSize)
		assert.Equal(t, []byte("abcdefgh"), bb.Bytes())
	})

	t.Run("large request honored", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(CoordBufferDefaultSize * 2)
		assert.GreaterOrEqual(t, bb.Cap(), CoordBufferDefaultSize*2)
	})
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	_, _ = bb.Write([]byte("polygon"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(7), n)
	require.Equal(t, "polygon", out.String())
}

func TestByteBufferPool(t *testing.T) {
	t.Run("get returns empty buffer", func(t *testing.T) {
		p := NewByteBufferPool(32, 0)
		bb := p.Get()
		require.NotNil(t, bb)
		_, _ = bb.Write([]byte("data"))
		p.Put(bb)

		again := p.Get()
		require.Equal(t, 0, again.Len())
	})

	t.Run("put nil is safe", func(t *testing.T) {
		p := NewByteBufferPool(32, 0)
		require.NotPanics(t, func() { p.Put(nil) })
	})

	t.Run("oversized buffer is not reset", func(t *testing.T) {
		p := NewByteBufferPool(8, 16)
		bb := NewByteBuffer(64)
		_, _ = bb.Write([]byte("keep"))
		p.Put(bb)

		// Discarded buffers are left untouched.
		require.Equal(t, 4, bb.Len())
	})
}

func TestDefaultPools(t *testing.T) {
	s := GetStructureBuffer()
	require.NotNil(t, s)
	require.Equal(t, 0, s.Len())
	PutStructureBuffer(s)

	c := GetCoordBuffer()
	require.NotNil(t, c)
	require.Equal(t, 0, c.Len())
	PutCoordBuffer(c)
}
