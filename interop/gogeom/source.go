package gogeom

import (
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"

	"github.com/arloliu/flatgeom/errs"
	"github.com/arloliu/flatgeom/stream"
)

// Source adapts a geom.T to stream.Source.
type Source struct {
	T geom.T
}

var _ stream.Source = Source{}

// NewSource returns a Source over t.
func NewSource(t geom.T) Source {
	return Source{T: t}
}

// Process emits s.T into p.
func (s Source) Process(p stream.Processor) error {
	return Process(s.T, p)
}

// Process emits t into p as a standalone geometry.
//
// Points are reported with PointBegin and PointEnd. A LinearRing on its own is
// reported as a tagged LineString. Z and M ordinates are forwarded through
// Coordinate when p is multi-dimensional and the layout carries them.
func Process(t geom.T, p stream.Processor) error {
	w := walker{p: p, full: p.MultiDim()}
	return w.geometry(t, 0)
}

type walker struct {
	p    stream.Processor
	full bool
}

func (w walker) geometry(t geom.T, idx int) error {
	switch g := t.(type) {
	case *geom.Point:
		return w.point(g, idx)
	case *geom.MultiPoint:
		return w.multiPoint(g, idx)
	case *geom.LineString:
		return w.path(g.Layout(), g.FlatCoords(), true, idx)
	case *geom.LinearRing:
		return w.path(g.Layout(), g.FlatCoords(), true, idx)
	case *geom.MultiLineString:
		return w.multiLineString(g, idx)
	case *geom.Polygon:
		return w.polygon(g, true, idx)
	case *geom.MultiPolygon:
		return w.multiPolygon(g, idx)
	case *geom.GeometryCollection:
		return w.collection(g, idx)
	default:
		return errors.Wrapf(errs.ErrUnsupportedGeometry, "%T", t)
	}
}

// coords emits every coordinate of flat, numbered from 0.
func (w walker) coords(layout geom.Layout, flat []float64) error {
	stride := layout.Stride()
	if stride == 0 {
		return nil
	}
	zi, mi := layout.ZIndex(), layout.MIndex()

	for i, off := 0, 0; off+stride <= len(flat); i, off = i+1, off+stride {
		x, y := flat[off], flat[off+1]
		if !w.full {
			if err := w.p.XY(x, y, i); err != nil {
				return err
			}
			continue
		}

		z, m := stream.None, stream.None
		if zi >= 0 {
			z = stream.Some(flat[off+zi])
		}
		if mi >= 0 {
			m = stream.Some(flat[off+mi])
		}
		if err := w.p.Coordinate(x, y, z, m, stream.None, stream.NoTimestamp, i); err != nil {
			return err
		}
	}

	return nil
}

func numCoords(layout geom.Layout, flat []float64) int {
	if stride := layout.Stride(); stride > 0 {
		return len(flat) / stride
	}

	return 0
}

func (w walker) point(g *geom.Point, idx int) error {
	if err := w.p.PointBegin(idx); err != nil {
		return err
	}
	if err := w.coords(g.Layout(), g.FlatCoords()); err != nil {
		return err
	}

	return w.p.PointEnd(idx)
}

// multiPoint emits the non-empty points of g.
func (w walker) multiPoint(g *geom.MultiPoint, idx int) error {
	flat := g.FlatCoords()
	if err := w.p.MultiPointBegin(numCoords(g.Layout(), flat), idx); err != nil {
		return err
	}
	if err := w.coords(g.Layout(), flat); err != nil {
		return err
	}

	return w.p.MultiPointEnd(idx)
}

func (w walker) path(layout geom.Layout, flat []float64, tagged bool, idx int) error {
	if err := w.p.LineStringBegin(tagged, numCoords(layout, flat), idx); err != nil {
		return err
	}
	if err := w.coords(layout, flat); err != nil {
		return err
	}

	return w.p.LineStringEnd(tagged, idx)
}

func (w walker) multiLineString(g *geom.MultiLineString, idx int) error {
	n := g.NumLineStrings()
	if err := w.p.MultiLineStringBegin(n, idx); err != nil {
		return err
	}
	for i := range n {
		if err := w.path(g.Layout(), g.LineString(i).FlatCoords(), false, i); err != nil {
			return err
		}
	}

	return w.p.MultiLineStringEnd(idx)
}

func (w walker) polygon(g *geom.Polygon, tagged bool, idx int) error {
	n := g.NumLinearRings()
	if err := w.p.PolygonBegin(tagged, n, idx); err != nil {
		return err
	}
	for i := range n {
		if err := w.path(g.Layout(), g.LinearRing(i).FlatCoords(), false, i); err != nil {
			return err
		}
	}

	return w.p.PolygonEnd(tagged, idx)
}

func (w walker) multiPolygon(g *geom.MultiPolygon, idx int) error {
	n := g.NumPolygons()
	if err := w.p.MultiPolygonBegin(n, idx); err != nil {
		return err
	}
	for i := range n {
		if err := w.polygon(g.Polygon(i), false, i); err != nil {
			return err
		}
	}

	return w.p.MultiPolygonEnd(idx)
}

func (w walker) collection(g *geom.GeometryCollection, idx int) error {
	geoms := g.Geoms()
	if err := w.p.GeometryCollectionBegin(len(geoms), idx); err != nil {
		return err
	}
	for i, member := range geoms {
		if err := w.geometry(member, i); err != nil {
			return err
		}
	}

	return w.p.GeometryCollectionEnd(idx)
}
