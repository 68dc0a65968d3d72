package geometry

// Coord is the set of coordinate tuples a geometry can be built from.
//
// The tuple length is the dimension D of every container instantiated with
// it. Tuples shorter than two values are not part of the set, so a geometry
// with fewer than two dimensions cannot be declared.
type Coord interface {
	~[2]float64 | ~[3]float64 | ~[4]float64
}

// Common coordinate tuples.
type (
	Coord2 = [2]float64
	Coord3 = [3]float64
	Coord4 = [4]float64
)

// Dim returns the number of values in a coordinate of type C.
func Dim[C Coord]() int {
	var c C
	return len(c)
}

// NewCoord returns a coordinate with the given x and y and every other value zero.
func NewCoord[C Coord](x, y float64) C {
	var c C
	c[0] = x
	c[1] = y

	return c
}

// NewCoordZ returns a coordinate with x, y and, when C has a third value, z.
func NewCoordZ[C Coord](x, y, z float64) C {
	c := NewCoord[C](x, y)
	if i := 2; i < len(c) {
		c[i] = z
	}

	return c
}

// Z returns the third value of c, or 0 and false when C is two-dimensional.
func Z[C Coord](c C) (float64, bool) {
	if i := 2; i < len(c) {
		return c[i], true
	}

	return 0, false
}

// trimClosing drops a trailing coordinate that repeats the first one.
// Rings never store their closing coordinate.
func trimClosing[C Coord](ring []C) []C {
	if n := len(ring); n >= 2 && ring[0] == ring[n-1] {
		return ring[:n-1]
	}

	return ring
}

// span returns the half-open range [start, end) described by entry i of a
// cumulative end-offset table.
func span(ends []int, i int) (int, int) {
	start := 0
	if i > 0 {
		start = ends[i-1]
	}

	return start, ends[i]
}
