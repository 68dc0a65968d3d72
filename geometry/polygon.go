package geometry

import (
	"iter"
	"slices"
)

// Polygon is an ordered sequence of rings. Ring 0 is the exterior, the rest
// are holes. A Polygon with no rings is empty.
//
// Rings are stored open: the closing coordinate is dropped on append and only
// produced again by LineString.AllClosed and by Process.
type Polygon[C Coord] struct {
	coords []C
	ends   []int
}

// NewPolygon returns an empty Polygon.
func NewPolygon[C Coord]() *Polygon[C] {
	return &Polygon[C]{}
}

func (p *Polygon[C]) sealed(C) {}

// Kind returns KindPolygon.
func (p *Polygon[C]) Kind() Kind { return KindPolygon }

// Len returns the number of rings, exterior included.
func (p *Polygon[C]) Len() int { return len(p.ends) }

// NumCoords returns the number of stored coordinates across all rings.
func (p *Polygon[C]) NumCoords() int { return len(p.coords) }

// IsEmpty reports whether no ring holds a coordinate.
func (p *Polygon[C]) IsEmpty() bool { return len(p.coords) == 0 }

// Coords returns the shared coordinate buffer. The caller must not modify it.
func (p *Polygon[C]) Coords() []C { return p.coords }

// Ends returns the cumulative end offset of every ring.
func (p *Polygon[C]) Ends() []int { return p.ends }

// Ring returns a read-only view of ring i.
func (p *Polygon[C]) Ring(i int) *LineString[C] {
	start, end := span(p.ends, i)
	return view(p.coords, start, end)
}

// Exterior returns ring 0, or nil for a polygon without rings.
func (p *Polygon[C]) Exterior() *LineString[C] {
	if len(p.ends) == 0 {
		return nil
	}

	return p.Ring(0)
}

// Rings iterates over every ring, exterior first. The sequence is lazy and
// can be ranged over any number of times.
func (p *Polygon[C]) Rings() iter.Seq[*LineString[C]] {
	return p.ringsFrom(0)
}

// Interiors iterates over the holes.
func (p *Polygon[C]) Interiors() iter.Seq[*LineString[C]] {
	return p.ringsFrom(1)
}

func (p *Polygon[C]) ringsFrom(first int) iter.Seq[*LineString[C]] {
	return func(yield func(*LineString[C]) bool) {
		for i := first; i < len(p.ends); i++ {
			if !yield(p.Ring(i)) {
				return
			}
		}
	}
}

// AddRing appends a ring. The first ring added is the exterior. A trailing
// coordinate equal to the first is dropped.
func (p *Polygon[C]) AddRing(coords ...C) {
	p.coords = append(p.coords, trimClosing(coords)...)
	p.ends = append(p.ends, len(p.coords))
}

// Bounds returns the envelope of all rings.
func (p *Polygon[C]) Bounds() (Bounds, bool) {
	return boundsOf(p.coords)
}

// Clone returns a deep copy.
func (p *Polygon[C]) Clone() *Polygon[C] {
	return &Polygon[C]{coords: slices.Clone(p.coords), ends: slices.Clone(p.ends)}
}
