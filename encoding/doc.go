// Package encoding provides the columnar codecs used for blob coordinate
// payloads.
//
// A ColumnarEncoder appends values to a pooled buffer; the matching
// ColumnarDecoder reads them back from the encoded bytes either sequentially
// (All) or by index (At).
//
// # Built-in Implementations
//
//   - ValueRawEncoder / ValueRawDecoder: fixed 8-byte IEEE 754 values in the
//     byte order of an endian engine
//
// Most users should use the blob package, which drives these codecs.
package encoding
