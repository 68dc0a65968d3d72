// Package geojson converts between flat geometries and
// github.com/paulmach/go.geojson geometry objects.
//
// Process reports a *geojson.Geometry as geometry events and Writer builds one
// from events. Marshal and Unmarshal wrap both directions with JSON encoding.
package geojson
