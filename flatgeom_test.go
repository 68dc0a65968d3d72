package flatgeom

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/flatgeom/blob"
	"github.com/arloliu/flatgeom/errs"
	"github.com/arloliu/flatgeom/format"
	"github.com/arloliu/flatgeom/geometry"
	"github.com/arloliu/flatgeom/stream"
)

func samplePolygon() *geometry.Polygon2 {
	poly := geometry.NewPolygon[geometry.Coord2]()
	poly.AddRing(geometry.Coord2{0, 0}, geometry.Coord2{5, 0}, geometry.Coord2{5, 5}, geometry.Coord2{0, 5})
	poly.AddRing(geometry.Coord2{1, 1}, geometry.Coord2{2, 1}, geometry.Coord2{2, 2})

	return poly
}

func TestToGeometry(t *testing.T) {
	poly := samplePolygon()

	g, err := ToGeometry[geometry.Coord2](poly)
	require.NoError(t, err)
	require.True(t, geometry.Equal[geometry.Coord2](poly, g))

	_, err = ToGeometry[geometry.Coord2](stream.SourceFunc(func(stream.Processor) error { return nil }))
	require.ErrorIs(t, err, errs.ErrNoGeometry)

	_, err = ToGeometry[geometry.Coord2](poly, geometry.WithCapacity(-1))
	require.Error(t, err)
}

func TestProcess(t *testing.T) {
	rec := stream.NewRecorder(false)
	require.NoError(t, Process[geometry.Coord2](samplePolygon(), rec))

	require.Equal(t, 1, rec.Count(stream.EventPolygonBegin))
	require.Equal(t, 2, rec.Count(stream.EventLineStringBegin))
	// 4 + 1 closing for the exterior, 3 + 1 for the interior
	require.Equal(t, 9, rec.Count(stream.EventXY))
}

func TestEncodeDecode(t *testing.T) {
	t.Run("2d", func(t *testing.T) {
		poly := samplePolygon()

		data, err := Encode[geometry.Coord2](poly)
		require.NoError(t, err)

		back, err := Decode[geometry.Coord2](data)
		require.NoError(t, err)
		require.True(t, geometry.Equal[geometry.Coord2](poly, back))
	})

	t.Run("3d with options", func(t *testing.T) {
		ls := geometry.NewLineStringFromRaw([]geometry.Coord3{{0, 0, 1}, {1, 1, 2}, {2, 0, 3}})

		data, err := Encode[geometry.Coord3](ls, blob.WithBigEndian(), blob.WithCompression(format.CompressionLZ4))
		require.NoError(t, err)

		b, err := blob.Decode(data)
		require.NoError(t, err)
		require.Equal(t, 3, b.Dimension())
		require.True(t, b.IsBigEndian())
		require.Equal(t, format.CompressionLZ4, b.Compression())

		back, err := Decode[geometry.Coord3](data)
		require.NoError(t, err)
		require.Equal(t, ls.Coords(), back.(*geometry.LineString3).Coords())
	})

	t.Run("4d stores three values", func(t *testing.T) {
		mp := geometry.NewMultiPoint[geometry.Coord4]()
		mp.Push(geometry.Coord4{1, 2, 3, 4})

		data, err := Encode[geometry.Coord4](mp)
		require.NoError(t, err)

		back, err := Decode[geometry.Coord4](data)
		require.NoError(t, err)
		require.Equal(t, []geometry.Coord4{{1, 2, 3, 0}}, back.(*geometry.MultiPoint[geometry.Coord4]).Coords())
	})

	t.Run("dimension change", func(t *testing.T) {
		ls := geometry.NewLineStringFromRaw([]geometry.Coord2{{0, 0}, {1, 1}})

		data, err := Encode[geometry.Coord2](ls)
		require.NoError(t, err)

		back, err := Decode[geometry.Coord3](data)
		require.NoError(t, err)
		require.Equal(t, []geometry.Coord3{{0, 0, 0}, {1, 1, 0}}, back.(*geometry.LineString3).Coords())
	})

	t.Run("corrupt blob", func(t *testing.T) {
		_, err := Decode[geometry.Coord2]([]byte{1, 2, 3})
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})
}
