package geometry

import (
	"iter"
	"slices"
)

// MultiPoint is an ordered sequence of coordinates stored in one flat buffer.
// Duplicates are allowed and insertion order is preserved.
type MultiPoint[C Coord] struct {
	coords []C
}

// NewMultiPoint returns an empty MultiPoint.
func NewMultiPoint[C Coord]() *MultiPoint[C] {
	return &MultiPoint[C]{}
}

// NewMultiPointFromRaw returns a MultiPoint that takes ownership of coords.
func NewMultiPointFromRaw[C Coord](coords []C) *MultiPoint[C] {
	return &MultiPoint[C]{coords: coords}
}

func (mp *MultiPoint[C]) sealed(C) {}

// Kind returns KindMultiPoint.
func (mp *MultiPoint[C]) Kind() Kind { return KindMultiPoint }

// Len returns the number of points.
func (mp *MultiPoint[C]) Len() int { return len(mp.coords) }

// IsEmpty reports whether the MultiPoint has no points.
func (mp *MultiPoint[C]) IsEmpty() bool { return len(mp.coords) == 0 }

// At returns the i-th point.
func (mp *MultiPoint[C]) At(i int) C { return mp.coords[i] }

// Coords returns the underlying buffer. The caller must not modify it.
func (mp *MultiPoint[C]) Coords() []C { return mp.coords }

// All iterates over the points in order.
func (mp *MultiPoint[C]) All() iter.Seq[C] {
	return slices.Values(mp.coords)
}

// Push appends a point.
func (mp *MultiPoint[C]) Push(c C) {
	mp.coords = append(mp.coords, c)
}

// Extend appends points in order.
func (mp *MultiPoint[C]) Extend(coords ...C) {
	mp.coords = append(mp.coords, coords...)
}

// Bounds returns the envelope of all points.
func (mp *MultiPoint[C]) Bounds() (Bounds, bool) {
	return boundsOf(mp.coords)
}

// Clone returns a deep copy.
func (mp *MultiPoint[C]) Clone() *MultiPoint[C] {
	return &MultiPoint[C]{coords: slices.Clone(mp.coords)}
}
