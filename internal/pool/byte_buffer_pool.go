package pool

import (
	"io"
	"sync"
)

// Buffer sizes for blob encoding. Structure columns are small (a few bytes per
// container), coordinate columns are 16-32 bytes per coordinate.
const (
	StructureBufferDefaultSize  = 1024        // 1KiB
	StructureBufferMaxThreshold = 1024 * 64   // 64KiB
	CoordBufferDefaultSize      = 1024 * 16   // 16KiB
	CoordBufferMaxThreshold     = 1024 * 1024 // 1MiB
)

// ByteBuffer is a growable byte slice that can be returned to a ByteBufferPool.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates an empty ByteBuffer with the given capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer and keeps its capacity.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the number of bytes written.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Grow ensures the buffer can take requiredBytes more bytes without reallocating.
//
// Small buffers grow by CoordBufferDefaultSize, larger ones by a quarter of
// their capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	if cap(bb.B)-len(bb.B) >= requiredBytes {
		return
	}

	growBy := CoordBufferDefaultSize
	if cap(bb.B) > 4*CoordBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// WriteByte appends a single byte.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)
	return nil
}

// Write appends data to the buffer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the buffer contents to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool recycles ByteBuffers and drops those that grew past maxThreshold.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool handing out buffers of defaultSize capacity.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get returns an empty buffer.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns bb to the pool. Oversized buffers are discarded.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	structurePool = NewByteBufferPool(StructureBufferDefaultSize, StructureBufferMaxThreshold)
	coordPool     = NewByteBufferPool(CoordBufferDefaultSize, CoordBufferMaxThreshold)
)

// GetStructureBuffer returns a buffer for a blob structure column.
func GetStructureBuffer() *ByteBuffer {
	return structurePool.Get()
}

// PutStructureBuffer releases a buffer obtained from GetStructureBuffer.
func PutStructureBuffer(bb *ByteBuffer) {
	structurePool.Put(bb)
}

// GetCoordBuffer returns a buffer for a blob coordinate column.
func GetCoordBuffer() *ByteBuffer {
	return coordPool.Get()
}

// PutCoordBuffer releases a buffer obtained from GetCoordBuffer.
func PutCoordBuffer(bb *ByteBuffer) {
	coordPool.Put(bb)
}
