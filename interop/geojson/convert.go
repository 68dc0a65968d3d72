package geojson

import (
	gj "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"

	"github.com/arloliu/flatgeom/geometry"
)

// FromGeometry converts a flat geometry into a GeoJSON geometry object.
func FromGeometry[C geometry.Coord](g geometry.Geometry[C]) (*gj.Geometry, error) {
	w := NewWriter(geometry.Dim[C]() >= 3)
	if err := g.Process(w); err != nil {
		return nil, err
	}

	return w.Geometry()
}

// ToGeometry converts a GeoJSON geometry object into a flat geometry.
func ToGeometry[C geometry.Coord](g *gj.Geometry, opts ...geometry.BuilderOption) (geometry.Geometry[C], error) {
	b, err := geometry.NewBuilder[C](opts...)
	if err != nil {
		return nil, err
	}
	if err := Process(g, b); err != nil {
		return nil, err
	}

	return b.Geometry()
}

// Marshal encodes g as a GeoJSON geometry object.
func Marshal[C geometry.Coord](g geometry.Geometry[C]) ([]byte, error) {
	out, err := FromGeometry(g)
	if err != nil {
		return nil, err
	}

	data, err := out.MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "marshal geojson")
	}

	return data, nil
}

// Unmarshal decodes a GeoJSON geometry object into a flat geometry.
func Unmarshal[C geometry.Coord](data []byte) (geometry.Geometry[C], error) {
	g, err := gj.UnmarshalGeometry(data)
	if err != nil {
		return nil, errors.Wrap(err, "unmarshal geojson")
	}

	return ToGeometry[C](g)
}
