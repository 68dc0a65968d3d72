// Package flatgeom provides flat, cache-friendly storage for multi-part
// geometries and an event protocol for converting them to and from other
// representations.
//
// Flatgeom stores every coordinate of a MultiLineString, Polygon or
// MultiPolygon in one contiguous buffer, with cumulative end offsets marking
// where each part, ring or polygon stops. Parts are read back as zero-copy
// views over that buffer.
//
// # Core Features
//
//   - Flat containers for MultiPoint, LineString, MultiLineString, Polygon,
//     MultiPolygon and GeometryCollection, generic over 2D/3D coordinates
//   - A streaming processor protocol (package stream) shared by every reader
//     and writer
//   - A Builder that reconstructs flat geometries from any event source
//   - A compact binary blob form with optional compression (None, Zstd, S2, LZ4)
//   - go-geom and GeoJSON interop (packages interop/gogeom and interop/geojson)
//
// # Basic Usage
//
// Building a polygon and sending it through the blob format:
//
//	poly := geometry.NewPolygon[geometry.Coord2]()
//	poly.AddRing(geometry.Coord2{0, 0}, geometry.Coord2{5, 0}, geometry.Coord2{5, 5})
//
//	data, err := flatgeom.Encode[geometry.Coord2](poly)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	back, err := flatgeom.Decode[geometry.Coord2](data)
//
// Converting from another representation:
//
//	g, err := flatgeom.ToGeometry[geometry.Coord2](gogeom.NewSource(t))
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the geometry and
// blob packages. For fine-grained control, use those packages directly.
package flatgeom

import (
	"github.com/arloliu/flatgeom/blob"
	"github.com/arloliu/flatgeom/geometry"
	"github.com/arloliu/flatgeom/stream"
)

// ToGeometry replays src into a new Builder and returns the result.
//
// Parameters:
//   - src: Any event source (a geometry, a decoded blob, an interop source)
//   - opts: Optional builder configuration (see geometry.BuilderOption)
//
// Returns:
//   - geometry.Geometry[C]: The single geometry produced, or a
//     GeometryCollection when src produced several top-level geometries.
//   - error: errs.ErrNoGeometry when src produced nothing, or the first error
//     reported by src.
//
// Example:
//
//	g, err := flatgeom.ToGeometry[geometry.Coord3](blobValue)
func ToGeometry[C geometry.Coord](src stream.Source, opts ...geometry.BuilderOption) (geometry.Geometry[C], error) {
	b, err := geometry.NewBuilder[C](opts...)
	if err != nil {
		return nil, err
	}
	if err := src.Process(b); err != nil {
		return nil, err
	}

	return b.Geometry()
}

// Process emits g into p. It is equivalent to g.Process(p).
func Process[C geometry.Coord](g geometry.Geometry[C], p stream.Processor) error {
	return geometry.Process(g, p)
}

// Encode serializes g into a blob.
//
// The blob dimension follows C (2 for Coord2, 3 for Coord3 and Coord4, whose
// fourth value is not stored). Further options override the defaults of
// blob.NewEncoder: little-endian, Zstd compression.
//
// Example:
//
//	data, err := flatgeom.Encode[geometry.Coord2](poly,
//	    blob.WithCompression(format.CompressionS2),
//	)
func Encode[C geometry.Coord](g geometry.Geometry[C], opts ...blob.EncoderOption) ([]byte, error) {
	all := make([]blob.EncoderOption, 0, len(opts)+1)
	all = append(all, blob.WithDimension(min(geometry.Dim[C](), 3)))
	all = append(all, opts...)

	return blob.Encode(g, all...)
}

// Decode parses a blob and rebuilds the geometry it holds.
//
// A blob of a different dimension than C is converted the same way the
// Builder converts events: a missing z becomes zero and an extra z is dropped.
func Decode[C geometry.Coord](data []byte, opts ...blob.DecoderOption) (geometry.Geometry[C], error) {
	b, err := blob.Decode(data, opts...)
	if err != nil {
		return nil, err
	}

	return ToGeometry[C](b)
}
