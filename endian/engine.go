// Package endian provides the byte order engines used by the blob format.
//
// An EndianEngine combines encoding/binary's ByteOrder and AppendByteOrder so
// the encoder can append fixed-width values straight into its column buffers
// and the decoder can read them back with the same value.
//
// # Basic Usage
//
// Blobs are little-endian unless the encoder is configured otherwise:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint32(buf, size)
//	buf = endian.AppendFloat64(engine, buf, x)
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. The returned
// engines are immutable and stateless.
package endian

import (
	"encoding/binary"
	"math"
)

// EndianEngine combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary. binary.LittleEndian and binary.BigEndian satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// AppendFloat64 appends the IEEE 754 bits of v to buf in the engine's byte order.
func AppendFloat64(engine EndianEngine, buf []byte, v float64) []byte {
	return engine.AppendUint64(buf, math.Float64bits(v))
}

// Float64 reads an IEEE 754 value from the first 8 bytes of b.
func Float64(engine EndianEngine, b []byte) float64 {
	return math.Float64frombits(engine.Uint64(b))
}
