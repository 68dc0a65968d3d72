package geometry

import (
	"iter"
	"slices"
)

// MultiLineString is an ordered sequence of independent paths (parts).
//
// All parts share one coordinate buffer; ends[i] is the exclusive end offset
// of part i, so part boundaries come from cumulative offsets only.
type MultiLineString[C Coord] struct {
	coords []C
	ends   []int
}

// NewMultiLineString returns an empty MultiLineString.
func NewMultiLineString[C Coord]() *MultiLineString[C] {
	return &MultiLineString[C]{}
}

func (mls *MultiLineString[C]) sealed(C) {}

// Kind returns KindMultiLineString.
func (mls *MultiLineString[C]) Kind() Kind { return KindMultiLineString }

// Len returns the number of parts.
func (mls *MultiLineString[C]) Len() int { return len(mls.ends) }

// NumCoords returns the number of coordinates across all parts.
func (mls *MultiLineString[C]) NumCoords() int { return len(mls.coords) }

// IsEmpty reports whether no part holds a coordinate.
func (mls *MultiLineString[C]) IsEmpty() bool { return len(mls.coords) == 0 }

// Coords returns the shared coordinate buffer. The caller must not modify it.
func (mls *MultiLineString[C]) Coords() []C { return mls.coords }

// Ends returns the cumulative end offset of every part.
func (mls *MultiLineString[C]) Ends() []int { return mls.ends }

// LineString returns a read-only view of part i.
func (mls *MultiLineString[C]) LineString(i int) *LineString[C] {
	start, end := span(mls.ends, i)
	return view(mls.coords, start, end)
}

// All iterates over the parts in order.
func (mls *MultiLineString[C]) All() iter.Seq[*LineString[C]] {
	return func(yield func(*LineString[C]) bool) {
		for i := range mls.ends {
			if !yield(mls.LineString(i)) {
				return
			}
		}
	}
}

// AddLineString appends a part made of coords. An empty part is kept.
func (mls *MultiLineString[C]) AddLineString(coords ...C) {
	mls.coords = append(mls.coords, coords...)
	mls.ends = append(mls.ends, len(mls.coords))
}

// Push appends a copy of ls as a new part.
func (mls *MultiLineString[C]) Push(ls *LineString[C]) {
	mls.AddLineString(ls.coords...)
}

// Bounds returns the envelope of all parts.
func (mls *MultiLineString[C]) Bounds() (Bounds, bool) {
	return boundsOf(mls.coords)
}

// Clone returns a deep copy.
func (mls *MultiLineString[C]) Clone() *MultiLineString[C] {
	return &MultiLineString[C]{coords: slices.Clone(mls.coords), ends: slices.Clone(mls.ends)}
}
