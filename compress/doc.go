// Package compress provides the payload codecs of the blob format.
//
// A blob stores its structure column and coordinate column as one payload,
// optionally compressed with one of the codecs below. The codec is recorded in
// the blob header, so a decoder picks the matching Decompressor with GetCodec.
//
// # Codecs
//
//   - None: the payload is stored as is. Cheapest for tiny geometries.
//   - Zstd: best ratio. Coordinates of real-world shapes share exponents and
//     leading mantissa bits, which Zstandard exploits well.
//   - S2: fast Snappy-compatible compression from klauspost/compress.
//   - LZ4: fast block compression from pierrec/lz4.
//
// Zstd is implemented with klauspost/compress by default. Building with the
// gozstd tag (and cgo) switches to the valyala/gozstd bindings.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//		return err
//	}
//	packed, err := codec.Compress(payload)
package compress
