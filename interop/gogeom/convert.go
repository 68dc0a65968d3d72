package gogeom

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkb"
	"github.com/twpayne/go-geom/encoding/wkt"

	"github.com/arloliu/flatgeom/geometry"
)

// LayoutOf returns the go-geom layout matching coordinate type C.
func LayoutOf[C geometry.Coord]() geom.Layout {
	if geometry.Dim[C]() >= 3 {
		return geom.XYZ
	}

	return geom.XY
}

// ToGeom converts a flat geometry into its go-geom equivalent.
func ToGeom[C geometry.Coord](g geometry.Geometry[C]) (geom.T, error) {
	w := NewWriter(LayoutOf[C]())
	if err := g.Process(w); err != nil {
		return nil, err
	}

	return w.Geometry()
}

// FromGeom converts a go-geom geometry into a flat geometry. Points become
// single-point MultiPoints.
func FromGeom[C geometry.Coord](t geom.T, opts ...geometry.BuilderOption) (geometry.Geometry[C], error) {
	b, err := geometry.NewBuilder[C](opts...)
	if err != nil {
		return nil, err
	}
	if err := Process(t, b); err != nil {
		return nil, err
	}

	return b.Geometry()
}

// MarshalWKT encodes g as well-known text.
func MarshalWKT[C geometry.Coord](g geometry.Geometry[C]) (string, error) {
	t, err := ToGeom(g)
	if err != nil {
		return "", err
	}

	s, err := wkt.Marshal(t)
	if err != nil {
		return "", errors.Wrap(err, "marshal wkt")
	}

	return s, nil
}

// UnmarshalWKT decodes well-known text into a flat geometry.
func UnmarshalWKT[C geometry.Coord](s string) (geometry.Geometry[C], error) {
	t, err := wkt.Unmarshal(s)
	if err != nil {
		return nil, errors.Wrap(err, "unmarshal wkt")
	}

	return FromGeom[C](t)
}

// MarshalWKB encodes g as well-known binary in the given byte order.
func MarshalWKB[C geometry.Coord](g geometry.Geometry[C], byteOrder binary.ByteOrder) ([]byte, error) {
	t, err := ToGeom(g)
	if err != nil {
		return nil, err
	}

	data, err := wkb.Marshal(t, byteOrder)
	if err != nil {
		return nil, errors.Wrap(err, "marshal wkb")
	}

	return data, nil
}

// UnmarshalWKB decodes well-known binary into a flat geometry.
func UnmarshalWKB[C geometry.Coord](data []byte) (geometry.Geometry[C], error) {
	t, err := wkb.Unmarshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "unmarshal wkb")
	}

	return FromGeom[C](t)
}

// MarshalGeoJSON encodes g as a GeoJSON geometry object.
func MarshalGeoJSON[C geometry.Coord](g geometry.Geometry[C]) ([]byte, error) {
	t, err := ToGeom(g)
	if err != nil {
		return nil, err
	}

	data, err := geojson.Marshal(t)
	if err != nil {
		return nil, errors.Wrap(err, "marshal geojson")
	}

	return data, nil
}

// UnmarshalGeoJSON decodes a GeoJSON geometry object into a flat geometry.
func UnmarshalGeoJSON[C geometry.Coord](data []byte) (geometry.Geometry[C], error) {
	var t geom.T
	if err := geojson.Unmarshal(data, &t); err != nil {
		return nil, errors.Wrap(err, "unmarshal geojson")
	}

	return FromGeom[C](t)
}
