package geometry

import (
	"iter"
	"slices"
)

// LineString is an open path of zero or more coordinates. It is not
// implicitly closed.
//
// Rings of polygons are exposed as LineString views over the parent buffer;
// for those, AllClosed yields the ring with its closing coordinate.
type LineString[C Coord] struct {
	coords []C
}

// NewLineString returns an empty LineString.
func NewLineString[C Coord]() *LineString[C] {
	return &LineString[C]{}
}

// NewLineStringFromRaw returns a LineString that takes ownership of coords.
func NewLineStringFromRaw[C Coord](coords []C) *LineString[C] {
	return &LineString[C]{coords: coords}
}

// view wraps a sub-range of a parent buffer. The capacity is clipped so an
// append on the view reallocates instead of overwriting the parent.
func view[C Coord](coords []C, start, end int) *LineString[C] {
	return &LineString[C]{coords: coords[start:end:end]}
}

func (ls *LineString[C]) sealed(C) {}

// Kind returns KindLineString.
func (ls *LineString[C]) Kind() Kind { return KindLineString }

// Len returns the number of stored coordinates.
func (ls *LineString[C]) Len() int { return len(ls.coords) }

// IsEmpty reports whether the path has no coordinates.
func (ls *LineString[C]) IsEmpty() bool { return len(ls.coords) == 0 }

// At returns the i-th coordinate.
func (ls *LineString[C]) At(i int) C { return ls.coords[i] }

// Coords returns the underlying buffer. The caller must not modify it.
func (ls *LineString[C]) Coords() []C { return ls.coords }

// All iterates over the stored coordinates.
func (ls *LineString[C]) All() iter.Seq[C] {
	return slices.Values(ls.coords)
}

// AllClosed iterates over the coordinates followed by the first coordinate
// again. An empty path yields nothing.
func (ls *LineString[C]) AllClosed() iter.Seq[C] {
	return func(yield func(C) bool) {
		if len(ls.coords) == 0 {
			return
		}
		for _, c := range ls.coords {
			if !yield(c) {
				return
			}
		}
		yield(ls.coords[0])
	}
}

// Push appends a coordinate.
func (ls *LineString[C]) Push(c C) {
	ls.coords = append(ls.coords, c)
}

// Extend appends coordinates in order.
func (ls *LineString[C]) Extend(coords ...C) {
	ls.coords = append(ls.coords, coords...)
}

// Bounds returns the envelope of the path.
func (ls *LineString[C]) Bounds() (Bounds, bool) {
	return boundsOf(ls.coords)
}

// Clone returns a deep copy.
func (ls *LineString[C]) Clone() *LineString[C] {
	return &LineString[C]{coords: slices.Clone(ls.coords)}
}
