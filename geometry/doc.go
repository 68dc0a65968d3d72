// Package geometry implements flat, offset-indexed vector geometries and
// their bridge to the stream protocol.
//
// # Data Model
//
// Every container keeps its coordinates in one contiguous buffer and
// describes nesting with cumulative end-offset tables instead of nested
// slices:
//
//	MultiPoint       coords
//	LineString       coords
//	MultiLineString  coords + ends (one per part)
//	Polygon          coords + ends (one per ring, ring 0 is the exterior)
//	MultiPolygon     coords + ringEnds (one per ring) + polyEnds (one per polygon)
//
// GeometryCollection holds other geometries and may nest. Geometry is the
// closed union of the six kinds.
//
// Dimensionality is a type parameter: C is [2]float64, [3]float64 or
// [4]float64 (or a named type over one of them). Aliases such as Polygon2 and
// MultiPolygon3 cover the common cases.
//
// Rings are stored without their closing coordinate. AddRing, AddExterior
// and AddInterior drop a trailing coordinate equal to the first one, and the
// closing coordinate is produced again only when a ring is emitted, so a ring
// keeps its length across any number of round trips.
//
// # Building
//
//	poly := geometry.NewPolygon[geometry.Coord2]()
//	poly.AddRing(geometry.Coord2{0, 0}, geometry.Coord2{5, 0}, geometry.Coord2{5, 5}, geometry.Coord2{0, 5})
//	poly.AddRing(geometry.Coord2{1, 1}, geometry.Coord2{2, 1}, geometry.Coord2{2, 2}, geometry.Coord2{1, 2})
//
// # Streaming
//
// Every geometry is a stream.Source: Process reports it to a
// stream.Processor as begin/coordinate/end events. Builder is the opposite
// direction, a stream.Processor that assembles a Geometry:
//
//	b, _ := geometry.NewBuilder[geometry.Coord2]()
//	if err := src.Process(b); err != nil {
//	    return err
//	}
//	g, err := b.Geometry()
//
// A stream holding several top-level geometries is returned as an implicit
// GeometryCollection; an empty stream yields errs.ErrNoGeometry.
//
// # Thread Safety
//
// Geometries are safe for concurrent reads. Appends and Builders require
// exclusive access.
package geometry
