// Package blob encodes geometry event streams into a compact binary form and
// decodes them back.
//
// An Encoder is a stream.Processor: feed it any geometry (or any Source) and
// call Finish to obtain the bytes. Decode validates a blob and returns a
// *Blob, which is a stream.Source that replays the same events into any
// processor, for example a geometry.Builder.
//
// # Basic Usage
//
//	enc, err := blob.NewEncoder(blob.WithCompression(format.CompressionZstd))
//	if err != nil {
//		return err
//	}
//	if err := polygon.Process(enc); err != nil {
//		return err
//	}
//	data, err := enc.Finish()
//
//	b, err := blob.Decode(data)
//	if err != nil {
//		return err
//	}
//	builder, _ := geometry.NewBuilder[geometry.Coord2]()
//	err = b.Process(builder)
//
// # Format
//
// See package section for the byte layout. The structure column and the
// coordinate column are stored in one payload, which is checksummed with
// xxHash64 before compression. Position indices are not stored: a decoded blob
// reports every element at its position inside its enclosing sequence, and
// top-level geometries at their position in the stream.
//
// Three-dimensional blobs store z for every coordinate. A coordinate received
// through XY, or through Coordinate without z, is stored with NaN and replayed
// without z.
//
// # Thread Safety
//
// Encoders are NOT thread-safe and NOT reusable. A decoded *Blob is immutable
// and may be replayed concurrently.
package blob
