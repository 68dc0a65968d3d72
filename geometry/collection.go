package geometry

import (
	"iter"
	"slices"
)

// GeometryCollection is an ordered, possibly heterogeneous sequence of
// geometries. Collections may contain collections.
type GeometryCollection[C Coord] struct {
	geoms []Geometry[C]
}

// NewGeometryCollection returns a collection holding geoms. The collection
// takes ownership of the members.
func NewGeometryCollection[C Coord](geoms ...Geometry[C]) *GeometryCollection[C] {
	return &GeometryCollection[C]{geoms: geoms}
}

func (gc *GeometryCollection[C]) sealed(C) {}

// Kind returns KindGeometryCollection.
func (gc *GeometryCollection[C]) Kind() Kind { return KindGeometryCollection }

// Len returns the number of direct members.
func (gc *GeometryCollection[C]) Len() int { return len(gc.geoms) }

// IsEmpty reports whether every member is empty. Nil members count as empty.
func (gc *GeometryCollection[C]) IsEmpty() bool {
	for _, g := range gc.geoms {
		if !isNil(g) && !g.IsEmpty() {
			return false
		}
	}

	return true
}

// At returns member i.
func (gc *GeometryCollection[C]) At(i int) Geometry[C] { return gc.geoms[i] }

// Geoms returns the members. The caller must not modify the slice.
func (gc *GeometryCollection[C]) Geoms() []Geometry[C] { return gc.geoms }

// All iterates over the direct members.
func (gc *GeometryCollection[C]) All() iter.Seq[Geometry[C]] {
	return slices.Values(gc.geoms)
}

// Push appends members.
func (gc *GeometryCollection[C]) Push(geoms ...Geometry[C]) {
	gc.geoms = append(gc.geoms, geoms...)
}

// Bounds returns the union of the members' envelopes. Nil members are skipped.
func (gc *GeometryCollection[C]) Bounds() (Bounds, bool) {
	var (
		out Bounds
		ok  bool
	)
	for _, g := range gc.geoms {
		if isNil(g) {
			continue
		}
		b, has := g.Bounds()
		if !has {
			continue
		}
		if !ok {
			out, ok = b, true
			continue
		}
		out = out.Union(b)
	}

	return out, ok
}
