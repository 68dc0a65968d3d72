package geometry

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/flatgeom/errs"
)

func square(x0, y0, size float64) []Coord2 {
	return []Coord2{{x0, y0}, {x0 + size, y0}, {x0 + size, y0 + size}, {x0, y0 + size}}
}

func TestDim(t *testing.T) {
	require.Equal(t, 2, Dim[Coord2]())
	require.Equal(t, 3, Dim[Coord3]())
	require.Equal(t, 4, Dim[Coord4]())

	type lonLat [2]float64
	require.Equal(t, 2, Dim[lonLat]())
}

func TestNewCoord(t *testing.T) {
	require.Equal(t, Coord2{1, 2}, NewCoord[Coord2](1, 2))
	require.Equal(t, Coord3{1, 2, 0}, NewCoord[Coord3](1, 2))
	require.Equal(t, Coord2{1, 2}, NewCoordZ[Coord2](1, 2, 3))
	require.Equal(t, Coord3{1, 2, 3}, NewCoordZ[Coord3](1, 2, 3))
	require.Equal(t, Coord4{1, 2, 3, 0}, NewCoordZ[Coord4](1, 2, 3))

	z, ok := Z(Coord3{1, 2, 3})
	require.True(t, ok)
	require.Equal(t, 3.0, z)

	_, ok = Z(Coord2{1, 2})
	require.False(t, ok)
}

func TestMultiPoint(t *testing.T) {
	mp := NewMultiPoint[Coord2]()
	require.True(t, mp.IsEmpty())
	require.Equal(t, KindMultiPoint, mp.Kind())

	mp.Extend(square(0, 0, 5)...)
	mp.Push(Coord2{0, 0}) // duplicates are kept

	require.Equal(t, 5, mp.Len())
	require.Equal(t, Coord2{5, 0}, mp.At(1))
	require.Equal(t, mp.Coords(), slices.Collect(mp.All()))

	b, ok := mp.Bounds()
	require.True(t, ok)
	require.Equal(t, Bounds{MinX: 0, MinY: 0, MaxX: 5, MaxY: 5}, b)

	clone := mp.Clone()
	clone.Push(Coord2{9, 9})
	require.Equal(t, 5, mp.Len())
	require.Equal(t, 6, clone.Len())
}

func TestLineString(t *testing.T) {
	t.Run("open path", func(t *testing.T) {
		ls := NewLineStringFromRaw(square(0, 0, 5))

		require.Equal(t, 4, ls.Len())
		require.Equal(t, ls.Coords(), slices.Collect(ls.All()))
	})

	t.Run("closed iteration repeats first", func(t *testing.T) {
		ls := NewLineStringFromRaw(square(0, 0, 5))

		closed := slices.Collect(ls.AllClosed())
		require.Len(t, closed, 5)
		require.Equal(t, closed[0], closed[4])
		require.Equal(t, 4, ls.Len(), "closing is presentation only")
	})

	t.Run("closed iteration of empty path", func(t *testing.T) {
		ls := NewLineString[Coord2]()
		require.Empty(t, slices.Collect(ls.AllClosed()))
	})

	t.Run("closed iteration stops early", func(t *testing.T) {
		ls := NewLineStringFromRaw(square(0, 0, 5))
		n := 0
		for range ls.AllClosed() {
			n++
			if n == 2 {
				break
			}
		}
		require.Equal(t, 2, n)
	})

	t.Run("empty bounds", func(t *testing.T) {
		_, ok := NewLineString[Coord2]().Bounds()
		require.False(t, ok)
	})
}

func TestMultiLineString(t *testing.T) {
	mls := NewMultiLineString[Coord2]()
	mls.AddLineString(square(0, 0, 5)...)
	mls.AddLineString()
	mls.Push(NewLineStringFromRaw([]Coord2{{7, 7}, {8, 8}}))

	require.Equal(t, 3, mls.Len())
	require.Equal(t, 6, mls.NumCoords())
	require.Equal(t, []int{4, 4, 6}, mls.Ends())

	parts := slices.Collect(mls.All())
	require.Len(t, parts, 3)
	require.Equal(t, 4, parts[0].Len())
	require.Equal(t, 0, parts[1].Len())
	require.Equal(t, []Coord2{{7, 7}, {8, 8}}, parts[2].Coords())
}

func TestMultiLineString_ViewDoesNotAliasParent(t *testing.T) {
	mls := NewMultiLineString[Coord2]()
	mls.AddLineString(Coord2{0, 0}, Coord2{1, 1})
	mls.AddLineString(Coord2{2, 2}, Coord2{3, 3})

	first := mls.LineString(0)
	first.Push(Coord2{99, 99})

	require.Equal(t, Coord2{2, 2}, mls.LineString(1).At(0))
	require.Equal(t, 4, mls.NumCoords())
}

func TestPolygon(t *testing.T) {
	t.Run("rings and roles", func(t *testing.T) {
		p := NewPolygon[Coord2]()
		p.AddRing(square(0, 0, 5)...)
		p.AddRing(square(1, 1, 1)...)
		p.AddRing(square(3, 3, 1)...)

		require.Equal(t, KindPolygon, p.Kind())
		require.Equal(t, 3, p.Len())
		require.Equal(t, []int{4, 8, 12}, p.Ends())
		require.Equal(t, square(0, 0, 5), p.Exterior().Coords())
		require.Len(t, slices.Collect(p.Interiors()), 2)
		require.Len(t, slices.Collect(p.Rings()), 3)
		// Rings is restartable.
		require.Len(t, slices.Collect(p.Rings()), 3)
	})

	t.Run("closing duplicate is dropped", func(t *testing.T) {
		ring := append(square(0, 0, 5), Coord2{0, 0})
		p := NewPolygon[Coord2]()
		p.AddRing(ring...)

		require.Equal(t, 4, p.Ring(0).Len())
	})

	t.Run("empty polygon", func(t *testing.T) {
		p := NewPolygon[Coord2]()

		require.Equal(t, 0, p.Len())
		require.True(t, p.IsEmpty())
		require.Nil(t, p.Exterior())
		require.Empty(t, slices.Collect(p.Rings()))
	})

	t.Run("empty exterior is still ring zero", func(t *testing.T) {
		p := NewPolygon[Coord2]()
		p.AddRing()
		p.AddRing(square(1, 1, 1)...)

		require.Equal(t, 2, p.Len())
		require.Equal(t, 0, p.Exterior().Len())
		require.Equal(t, 4, p.Ring(1).Len())
	})

	t.Run("clone is independent", func(t *testing.T) {
		p := NewPolygon[Coord2]()
		p.AddRing(square(0, 0, 5)...)
		c := p.Clone()
		c.AddRing(square(1, 1, 1)...)

		require.Equal(t, 1, p.Len())
		require.Equal(t, 2, c.Len())
	})
}

func TestMultiPolygon(t *testing.T) {
	mp := NewMultiPolygon[Coord2]()
	mp.AddExterior(square(0, 0, 5)...)
	mp.AddInterior(square(1, 1, 1)...)
	mp.AddInterior(square(3, 3, 1)...)
	mp.AddExterior(square(4, 0, 3)...)
	mp.AddInterior(square(5, 1, 1)...)
	mp.AddExterior(square(4, 0, 3)...)

	require.Equal(t, KindMultiPolygon, mp.Kind())
	require.Equal(t, 3, mp.Len())
	require.Equal(t, 6, mp.NumRings())
	require.Equal(t, []int{3, 5, 6}, mp.PolygonEnds())
	require.Equal(t, []int{4, 8, 12, 16, 20, 24}, mp.RingEnds())
	require.Equal(t, 3, mp.NumPolygonRings(0))
	require.Equal(t, 2, mp.NumPolygonRings(1))
	require.Equal(t, 1, mp.NumPolygonRings(2))

	second := mp.Polygon(1)
	require.Equal(t, 2, second.Len())
	require.Equal(t, square(4, 0, 3), second.Exterior().Coords())
	require.Equal(t, square(5, 1, 1), second.Ring(1).Coords())

	var counts []int
	for p := range mp.All() {
		counts = append(counts, p.Len())
	}
	require.Equal(t, []int{3, 2, 1}, counts)
}

func TestMultiPolygon_Push(t *testing.T) {
	p1 := NewPolygon[Coord2]()
	p1.AddRing(square(0, 0, 5)...)
	p1.AddRing(square(1, 1, 1)...)

	p2 := NewPolygon[Coord2]()
	p2.AddRing(square(10, 10, 2)...)

	mp := NewMultiPolygon[Coord2]()
	mp.Push(p1)
	mp.Push(NewPolygon[Coord2]())
	mp.Push(p2)

	require.Equal(t, 3, mp.Len())
	require.Equal(t, 0, mp.Polygon(1).Len())
	require.True(t, Equal[Coord2](p1, mp.Polygon(0)))
	require.True(t, Equal[Coord2](p2, mp.Polygon(2)))
}

func TestMultiPolygon_InteriorWithoutPolygon(t *testing.T) {
	mp := NewMultiPolygon[Coord2]()
	mp.AddInterior(square(0, 0, 1)...)

	require.Equal(t, 1, mp.Len())
	require.Equal(t, 1, mp.NumPolygonRings(0))
}

func TestMultiPolygon_AddEmpty(t *testing.T) {
	mp := NewMultiPolygon[Coord2]()
	mp.AddEmpty()
	mp.AddExterior(square(0, 0, 1)...)

	require.Equal(t, 2, mp.Len())
	require.Equal(t, 0, mp.NumPolygonRings(0))
	require.Equal(t, 1, mp.NumPolygonRings(1))
}

func TestGeometryCollection(t *testing.T) {
	inner := NewGeometryCollection[Coord2](NewLineStringFromRaw([]Coord2{{-3, 1}, {0, 0}}))
	gc := NewGeometryCollection[Coord2](NewMultiPointFromRaw(square(0, 0, 5)))
	gc.Push(inner, NewPolygon[Coord2]())

	require.Equal(t, KindGeometryCollection, gc.Kind())
	require.Equal(t, 3, gc.Len())
	require.Equal(t, KindGeometryCollection, gc.At(1).Kind())
	require.Len(t, slices.Collect(gc.All()), 3)
	require.False(t, gc.IsEmpty())

	b, ok := gc.Bounds()
	require.True(t, ok)
	require.Equal(t, Bounds{MinX: -3, MinY: 0, MaxX: 5, MaxY: 5}, b)

	empty := NewGeometryCollection[Coord2](NewPolygon[Coord2]())
	require.True(t, empty.IsEmpty())
	_, ok = empty.Bounds()
	require.False(t, ok)
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindMultiPoint, "MultiPoint"},
		{KindLineString, "LineString"},
		{KindMultiLineString, "MultiLineString"},
		{KindPolygon, "Polygon"},
		{KindMultiPolygon, "MultiPolygon"},
		{KindGeometryCollection, "GeometryCollection"},
		{Kind(0), "Unknown"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.kind.String())
	}
}

func TestFingerprintAndEqual(t *testing.T) {
	build := func() *Polygon[Coord2] {
		p := NewPolygon[Coord2]()
		p.AddRing(square(0, 0, 5)...)
		p.AddRing(square(1, 1, 1)...)
		return p
	}

	a, b := build(), build()
	fa, err := Fingerprint[Coord2](a)
	require.NoError(t, err)
	fb, err := Fingerprint[Coord2](b)
	require.NoError(t, err)
	require.Equal(t, fa, fb)
	require.True(t, Equal[Coord2](a, b))

	// Same coordinates, different ring split.
	c := NewPolygon[Coord2]()
	c.AddRing(append(square(0, 0, 5), square(1, 1, 1)...)...)
	fc, err := Fingerprint[Coord2](c)
	require.NoError(t, err)
	require.NotEqual(t, fa, fc)
	require.False(t, Equal[Coord2](a, c))

	// Same coordinates, different kind.
	mp := NewMultiPointFromRaw(square(0, 0, 5))
	ls := NewLineStringFromRaw(square(0, 0, 5))
	fmp, _ := Fingerprint[Coord2](mp)
	fls, _ := Fingerprint[Coord2](ls)
	require.NotEqual(t, fmp, fls)
	require.False(t, Equal[Coord2](mp, ls))

	_, err = Fingerprint[Coord2](nil)
	require.Error(t, err)
}

func TestFingerprintAndEqual_TypedNil(t *testing.T) {
	var mp *MultiPoint2
	_, err := Fingerprint[Coord2](mp)
	require.ErrorIs(t, err, errs.ErrUnknownGeometry)

	gc := NewGeometryCollection[Coord2](NewMultiPointFromRaw([]Coord2{{1, 2}}), (*LineString[Coord2])(nil))
	_, err = Fingerprint[Coord2](gc)
	require.ErrorIs(t, err, errs.ErrUnknownGeometry)

	require.False(t, Equal[Coord2](mp, mp))
	require.False(t, Equal[Coord2](mp, NewMultiPoint[Coord2]()))
	require.False(t, Equal[Coord2](NewMultiPoint[Coord2](), mp))
	require.False(t, Equal[Coord2](nil, nil))
}

func TestGeometryCollection_NilMembers(t *testing.T) {
	gc := NewGeometryCollection[Coord2](nil, (*Polygon[Coord2])(nil))
	require.True(t, gc.IsEmpty())
	_, ok := gc.Bounds()
	require.False(t, ok)

	gc.Push(NewMultiPointFromRaw([]Coord2{{1, 2}}))
	require.False(t, gc.IsEmpty())
	b, ok := gc.Bounds()
	require.True(t, ok)
	require.Equal(t, Bounds{MinX: 1, MinY: 2, MaxX: 1, MaxY: 2}, b)
}
