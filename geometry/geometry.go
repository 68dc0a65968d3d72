package geometry

import (
	"github.com/arloliu/flatgeom/stream"
)

// Kind identifies the active variant of a Geometry.
type Kind uint8

const (
	KindMultiPoint Kind = iota + 1
	KindLineString
	KindMultiLineString
	KindPolygon
	KindMultiPolygon
	KindGeometryCollection
)

func (k Kind) String() string {
	switch k {
	case KindMultiPoint:
		return "MultiPoint"
	case KindLineString:
		return "LineString"
	case KindMultiLineString:
		return "MultiLineString"
	case KindPolygon:
		return "Polygon"
	case KindMultiPolygon:
		return "MultiPolygon"
	case KindGeometryCollection:
		return "GeometryCollection"
	default:
		return "Unknown"
	}
}

// Geometry is one of *MultiPoint, *LineString, *MultiLineString, *Polygon,
// *MultiPolygon or *GeometryCollection, all instantiated with the same C.
//
// The set is closed: the unexported marker keeps other packages from adding
// variants, so a type switch over the six cases is exhaustive.
type Geometry[C Coord] interface {
	// Kind returns the active variant.
	Kind() Kind
	// IsEmpty reports whether the geometry holds no coordinates.
	IsEmpty() bool
	// Bounds returns the x/y envelope, or false when the geometry is empty.
	Bounds() (Bounds, bool)
	// Process emits the geometry into p as a standalone geometry at index 0.
	Process(p stream.Processor) error

	sealed(C)
}

// Bounds is an axis-aligned x/y envelope.
type Bounds struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// boundsOf computes the envelope of coords.
func boundsOf[C Coord](coords []C) (Bounds, bool) {
	if len(coords) == 0 {
		return Bounds{}, false
	}

	b := Bounds{MinX: coords[0][0], MinY: coords[0][1], MaxX: coords[0][0], MaxY: coords[0][1]}
	for i := 1; i < len(coords); i++ {
		b.add(coords[i][0], coords[i][1])
	}

	return b, true
}

func (b *Bounds) add(x, y float64) {
	b.MinX = min(b.MinX, x)
	b.MinY = min(b.MinY, y)
	b.MaxX = max(b.MaxX, x)
	b.MaxY = max(b.MaxY, y)
}

// Union returns the smallest envelope containing b and o.
func (b Bounds) Union(o Bounds) Bounds {
	b.add(o.MinX, o.MinY)
	b.add(o.MaxX, o.MaxY)

	return b
}

// isNil reports whether g is nil or a nil pointer to one of the variants.
func isNil[C Coord](g Geometry[C]) bool {
	switch g := g.(type) {
	case nil:
		return true
	case *MultiPoint[C]:
		return g == nil
	case *LineString[C]:
		return g == nil
	case *MultiLineString[C]:
		return g == nil
	case *Polygon[C]:
		return g == nil
	case *MultiPolygon[C]:
		return g == nil
	case *GeometryCollection[C]:
		return g == nil
	default:
		return false
	}
}
