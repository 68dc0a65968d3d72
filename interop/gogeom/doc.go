// Package gogeom converts between flat geometries and github.com/twpayne/go-geom.
//
// Process walks any geom.T and reports it as geometry events, so a go-geom
// value can feed a geometry.Builder, a blob.Encoder or any other processor.
// Writer goes the other way: it is a stream.Processor that assembles geom.T
// values from events.
//
// Through go-geom this package also reads and writes WKT, WKB and GeoJSON:
//
//	g, err := gogeom.UnmarshalWKT[geometry.Coord2]("POLYGON ((0 0, 5 0, 5 5, 0 5, 0 0))")
//	if err != nil {
//		return err
//	}
//	text, err := gogeom.MarshalWKT(g)
//
// Rings are closed on the go-geom side, as go-geom and the formats above
// expect, and stored without the repeated coordinate on the flat side.
package gogeom
