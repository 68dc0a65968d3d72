package geometry

import (
	"slices"

	"github.com/arloliu/flatgeom/errs"
	"github.com/arloliu/flatgeom/internal/hash"
	"github.com/arloliu/flatgeom/stream"
)

// Fingerprint returns an xxHash64 digest of g's structure and coordinates.
//
// Geometries with the same kinds, nesting, counts and coordinate values have
// the same fingerprint. All D values of every coordinate take part.
func Fingerprint[C Coord](g Geometry[C]) (uint64, error) {
	h := &fingerprinter[C]{h: hash.NewHasher()}
	if err := walk(g, h); err != nil {
		return 0, err
	}

	return h.h.Sum64(), nil
}

// walk visits containers directly instead of going through Process, so the
// digest covers every stored value (Process only reports x, y and z) and
// excludes the emitted closing coordinates.
func walk[C Coord](g Geometry[C], f *fingerprinter[C]) error {
	if isNil(g) {
		return errs.ErrUnknownGeometry
	}
	f.tag(byte(g.Kind()))

	switch g := g.(type) {
	case *MultiPoint[C]:
		f.coords(g.coords)
	case *LineString[C]:
		f.coords(g.coords)
	case *MultiLineString[C]:
		f.offsets(g.ends)
		f.coords(g.coords)
	case *Polygon[C]:
		f.offsets(g.ends)
		f.coords(g.coords)
	case *MultiPolygon[C]:
		f.offsets(g.polyEnds)
		f.offsets(g.ringEnds)
		f.coords(g.coords)
	case *GeometryCollection[C]:
		f.h.WriteUint64(uint64(len(g.geoms)))
		for _, member := range g.geoms {
			if err := walk(member, f); err != nil {
				return err
			}
		}
	default:
		return errs.ErrUnknownGeometry
	}

	return nil
}

type fingerprinter[C Coord] struct {
	h *hash.Hasher
}

func (f *fingerprinter[C]) tag(b byte) {
	_ = f.h.WriteByte(b)
}

func (f *fingerprinter[C]) offsets(ends []int) {
	f.h.WriteUint64(uint64(len(ends)))
	for _, e := range ends {
		f.h.WriteUint64(uint64(e))
	}
}

func (f *fingerprinter[C]) coords(coords []C) {
	f.h.WriteUint64(uint64(len(coords)))
	for _, c := range coords {
		for i := 0; i < len(c); i++ {
			f.h.WriteFloat64(c[i])
		}
	}
}

// Equal reports whether a and b have the same kind, nesting, offsets and
// coordinate values. A nil geometry is never equal to anything.
func Equal[C Coord](a, b Geometry[C]) bool {
	if isNil(a) || isNil(b) {
		return false
	}

	switch a := a.(type) {
	case *MultiPoint[C]:
		b, ok := b.(*MultiPoint[C])
		return ok && slices.Equal(a.coords, b.coords)
	case *LineString[C]:
		b, ok := b.(*LineString[C])
		return ok && slices.Equal(a.coords, b.coords)
	case *MultiLineString[C]:
		b, ok := b.(*MultiLineString[C])
		return ok && slices.Equal(a.ends, b.ends) && slices.Equal(a.coords, b.coords)
	case *Polygon[C]:
		b, ok := b.(*Polygon[C])
		return ok && slices.Equal(a.ends, b.ends) && slices.Equal(a.coords, b.coords)
	case *MultiPolygon[C]:
		b, ok := b.(*MultiPolygon[C])
		return ok && slices.Equal(a.polyEnds, b.polyEnds) &&
			slices.Equal(a.ringEnds, b.ringEnds) && slices.Equal(a.coords, b.coords)
	case *GeometryCollection[C]:
		b, ok := b.(*GeometryCollection[C])
		if !ok || len(a.geoms) != len(b.geoms) {
			return false
		}
		for i := range a.geoms {
			if !Equal(a.geoms[i], b.geoms[i]) {
				return false
			}
		}

		return true
	default:
		return false
	}
}

var _ stream.Source = Geometry[Coord2](nil)
