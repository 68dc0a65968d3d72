package geometry

import (
	"iter"
	"slices"
)

// MultiPolygon is an ordered sequence of polygons sharing one coordinate buffer.
//
// Two offset tables describe the nesting: ringEnds[r] is the exclusive end of
// ring r in coords, polyEnds[p] is the exclusive end of polygon p in ringEnds.
// Within every polygon, its first ring is the exterior.
type MultiPolygon[C Coord] struct {
	coords   []C
	ringEnds []int
	polyEnds []int
}

// NewMultiPolygon returns an empty MultiPolygon.
func NewMultiPolygon[C Coord]() *MultiPolygon[C] {
	return &MultiPolygon[C]{}
}

func (mp *MultiPolygon[C]) sealed(C) {}

// Kind returns KindMultiPolygon.
func (mp *MultiPolygon[C]) Kind() Kind { return KindMultiPolygon }

// Len returns the number of polygons.
func (mp *MultiPolygon[C]) Len() int { return len(mp.polyEnds) }

// NumRings returns the number of rings across all polygons.
func (mp *MultiPolygon[C]) NumRings() int { return len(mp.ringEnds) }

// NumCoords returns the number of stored coordinates across all polygons.
func (mp *MultiPolygon[C]) NumCoords() int { return len(mp.coords) }

// IsEmpty reports whether no ring holds a coordinate.
func (mp *MultiPolygon[C]) IsEmpty() bool { return len(mp.coords) == 0 }

// Coords returns the shared coordinate buffer. The caller must not modify it.
func (mp *MultiPolygon[C]) Coords() []C { return mp.coords }

// RingEnds returns the cumulative coordinate end offset of every ring.
func (mp *MultiPolygon[C]) RingEnds() []int { return mp.ringEnds }

// PolygonEnds returns the cumulative ring end offset of every polygon.
func (mp *MultiPolygon[C]) PolygonEnds() []int { return mp.polyEnds }

// NumPolygonRings returns the ring count of polygon i.
func (mp *MultiPolygon[C]) NumPolygonRings(i int) int {
	start, end := span(mp.polyEnds, i)
	return end - start
}

// Polygon returns a read-only view of polygon i. Coordinates are shared with
// the MultiPolygon; only the view's ring offset table is allocated.
func (mp *MultiPolygon[C]) Polygon(i int) *Polygon[C] {
	rs, re := span(mp.polyEnds, i)
	if rs == re {
		return NewPolygon[C]()
	}

	cs, _ := span(mp.ringEnds, rs)
	ce := mp.ringEnds[re-1]

	ends := make([]int, re-rs)
	for j := range ends {
		ends[j] = mp.ringEnds[rs+j] - cs
	}

	return &Polygon[C]{coords: mp.coords[cs:ce:ce], ends: ends}
}

// All iterates over the polygons in order.
func (mp *MultiPolygon[C]) All() iter.Seq[*Polygon[C]] {
	return func(yield func(*Polygon[C]) bool) {
		for i := range mp.polyEnds {
			if !yield(mp.Polygon(i)) {
				return
			}
		}
	}
}

func (mp *MultiPolygon[C]) appendRing(coords []C) {
	mp.coords = append(mp.coords, trimClosing(coords)...)
	mp.ringEnds = append(mp.ringEnds, len(mp.coords))
}

// AddExterior starts a new polygon whose exterior ring is coords.
func (mp *MultiPolygon[C]) AddExterior(coords ...C) {
	mp.appendRing(coords)
	mp.polyEnds = append(mp.polyEnds, len(mp.ringEnds))
}

// AddInterior appends a hole to the most recently started polygon. Without a
// polygon to attach to, coords becomes the exterior of a new polygon.
func (mp *MultiPolygon[C]) AddInterior(coords ...C) {
	if len(mp.polyEnds) == 0 {
		mp.AddExterior(coords...)
		return
	}

	mp.appendRing(coords)
	mp.polyEnds[len(mp.polyEnds)-1] = len(mp.ringEnds)
}

// AddEmpty appends a polygon without rings.
func (mp *MultiPolygon[C]) AddEmpty() {
	mp.polyEnds = append(mp.polyEnds, len(mp.ringEnds))
}

// Push appends a copy of p.
func (mp *MultiPolygon[C]) Push(p *Polygon[C]) {
	base := len(mp.coords)
	mp.coords = append(mp.coords, p.coords...)
	for _, end := range p.ends {
		mp.ringEnds = append(mp.ringEnds, base+end)
	}
	mp.polyEnds = append(mp.polyEnds, len(mp.ringEnds))
}

// Bounds returns the envelope of all polygons.
func (mp *MultiPolygon[C]) Bounds() (Bounds, bool) {
	return boundsOf(mp.coords)
}

// Clone returns a deep copy.
func (mp *MultiPolygon[C]) Clone() *MultiPolygon[C] {
	return &MultiPolygon[C]{
		coords:   slices.Clone(mp.coords),
		ringEnds: slices.Clone(mp.ringEnds),
		polyEnds: slices.Clone(mp.polyEnds),
	}
}
