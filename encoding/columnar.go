package encoding

import "iter"

// ColumnarEncoder appends values of type T to a single column.
type ColumnarEncoder[T comparable] interface {
	// Bytes returns the encoded bytes. The slice is valid until the next Write,
	// WriteSlice or Finish.
	Bytes() []byte

	// Len returns the number of encoded values.
	Len() int

	// Size returns the number of encoded bytes.
	Size() int

	// Finish returns buffer resources to the pool. The encoder is unusable
	// afterwards.
	Finish()

	// Write appends a single value.
	Write(v T)

	// WriteSlice appends every value of values.
	WriteSlice(values []T)
}

// ColumnarDecoder reads values produced by the matching ColumnarEncoder.
type ColumnarDecoder[T comparable] interface {
	// All yields up to count values from data. Truncated data yields fewer.
	All(data []byte, count int) iter.Seq[T]

	// At returns the value at index, or false when index is outside
	// [0, count) or data is too short.
	At(data []byte, index int, count int) (T, bool)
}
