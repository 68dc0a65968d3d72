package encoding

import (
	"iter"

	"github.com/arloliu/flatgeom/endian"
	"github.com/arloliu/flatgeom/internal/pool"
)

// ValueSize is the encoded size of one value.
const ValueSize = 8

// ValueRawEncoder encodes float64 values in their IEEE 754 form using the
// byte order of an endian engine.
type ValueRawEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

var _ ColumnarEncoder[float64] = (*ValueRawEncoder)(nil)

// NewValueRawEncoder creates an encoder backed by a pooled coordinate buffer.
func NewValueRawEncoder(engine endian.EndianEngine) *ValueRawEncoder {
	return &ValueRawEncoder{
		engine: engine,
		buf:    pool.GetCoordBuffer(),
	}
}

// Write appends val.
//
// Panics if Finish has been called.
func (e *ValueRawEncoder) Write(val float64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count++
	e.buf.B = endian.AppendFloat64(e.engine, e.buf.B, val)
}

// WriteSlice appends values, growing the buffer once.
//
// Panics if Finish has been called.
func (e *ValueRawEncoder) WriteSlice(values []float64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}
	if len(values) == 0 {
		return
	}

	e.count += len(values)
	e.buf.Grow(len(values) * ValueSize)
	for _, v := range values {
		e.buf.B = endian.AppendFloat64(e.engine, e.buf.B, v)
	}
}

// Bytes returns the encoded values.
//
// Panics if Finish has been called.
func (e *ValueRawEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.buf.Bytes()
}

// Len returns the number of encoded values.
func (e *ValueRawEncoder) Len() int {
	return e.count
}

// Size returns the number of encoded bytes.
//
// Panics if Finish has been called.
func (e *ValueRawEncoder) Size() int {
	if e.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.buf.Len()
}

// Finish returns the buffer to the pool. Calling it twice is a no-op.
func (e *ValueRawEncoder) Finish() {
	if e.buf != nil {
		pool.PutCoordBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// ValueRawDecoder decodes values written by ValueRawEncoder. It is stateless.
type ValueRawDecoder struct {
	engine endian.EndianEngine
}

var _ ColumnarDecoder[float64] = ValueRawDecoder{}

// NewValueRawDecoder creates a decoder; engine must match the encoder's.
func NewValueRawDecoder(engine endian.EndianEngine) ValueRawDecoder {
	return ValueRawDecoder{engine: engine}
}

// All yields up to count values from data.
func (d ValueRawDecoder) All(data []byte, count int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		n := min(count, len(data)/ValueSize)
		for i := range n {
			if !yield(endian.Float64(d.engine, data[i*ValueSize:])) {
				return
			}
		}
	}
}

// At returns the value at index.
func (d ValueRawDecoder) At(data []byte, index int, count int) (float64, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	start := index * ValueSize
	if start+ValueSize > len(data) {
		return 0, false
	}

	return endian.Float64(d.engine, data[start:]), true
}

// AppendAll appends up to count decoded values to dst.
func (d ValueRawDecoder) AppendAll(dst []float64, data []byte, count int) []float64 {
	for v := range d.All(data, count) {
		dst = append(dst, v)
	}

	return dst
}
