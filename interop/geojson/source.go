package geojson

import (
	gj "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"

	"github.com/arloliu/flatgeom/errs"
	"github.com/arloliu/flatgeom/stream"
)

// Source adapts a GeoJSON geometry to stream.Source.
type Source struct {
	G *gj.Geometry
}

var _ stream.Source = Source{}

// NewSource returns a Source over g.
func NewSource(g *gj.Geometry) Source {
	return Source{G: g}
}

// Process emits s.G into p.
func (s Source) Process(p stream.Processor) error {
	return Process(s.G, p)
}

// Process emits g into p as a standalone geometry. Positions carry x, y and
// optionally z; a fourth value is forwarded as m.
func Process(g *gj.Geometry, p stream.Processor) error {
	w := walker{p: p, full: p.MultiDim()}
	return w.geometry(g, 0)
}

type walker struct {
	p    stream.Processor
	full bool
}

func (w walker) geometry(g *gj.Geometry, idx int) error {
	if g == nil {
		return errors.Wrap(errs.ErrUnsupportedGeometry, "nil geojson geometry")
	}

	switch g.Type {
	case gj.GeometryPoint:
		return w.point(g.Point, idx)
	case gj.GeometryMultiPoint:
		if err := w.p.MultiPointBegin(len(g.MultiPoint), idx); err != nil {
			return err
		}
		if err := w.positions(g.MultiPoint); err != nil {
			return err
		}

		return w.p.MultiPointEnd(idx)
	case gj.GeometryLineString:
		return w.path(g.LineString, true, idx)
	case gj.GeometryMultiLineString:
		if err := w.p.MultiLineStringBegin(len(g.MultiLineString), idx); err != nil {
			return err
		}
		for i, line := range g.MultiLineString {
			if err := w.path(line, false, i); err != nil {
				return err
			}
		}

		return w.p.MultiLineStringEnd(idx)
	case gj.GeometryPolygon:
		return w.polygon(g.Polygon, true, idx)
	case gj.GeometryMultiPolygon:
		if err := w.p.MultiPolygonBegin(len(g.MultiPolygon), idx); err != nil {
			return err
		}
		for i, rings := range g.MultiPolygon {
			if err := w.polygon(rings, false, i); err != nil {
				return err
			}
		}

		return w.p.MultiPolygonEnd(idx)
	case gj.GeometryCollection:
		if err := w.p.GeometryCollectionBegin(len(g.Geometries), idx); err != nil {
			return err
		}
		for i, member := range g.Geometries {
			if err := w.geometry(member, i); err != nil {
				return err
			}
		}

		return w.p.GeometryCollectionEnd(idx)
	default:
		return errors.Wrapf(errs.ErrUnsupportedGeometry, "geojson type %q", g.Type)
	}
}

func (w walker) position(pos []float64, idx int) error {
	if len(pos) < 2 {
		return errors.Wrapf(errs.ErrUnsupportedGeometry, "position with %d values", len(pos))
	}
	if !w.full {
		return w.p.XY(pos[0], pos[1], idx)
	}

	z, m := stream.None, stream.None
	if len(pos) > 2 {
		z = stream.Some(pos[2])
	}
	if len(pos) > 3 {
		m = stream.Some(pos[3])
	}

	return w.p.Coordinate(pos[0], pos[1], z, m, stream.None, stream.NoTimestamp, idx)
}

func (w walker) positions(pos [][]float64) error {
	for i := range pos {
		if err := w.position(pos[i], i); err != nil {
			return err
		}
	}

	return nil
}

func (w walker) point(pos []float64, idx int) error {
	if err := w.p.PointBegin(idx); err != nil {
		return err
	}
	if len(pos) > 0 {
		if err := w.position(pos, 0); err != nil {
			return err
		}
	}

	return w.p.PointEnd(idx)
}

func (w walker) path(pos [][]float64, tagged bool, idx int) error {
	if err := w.p.LineStringBegin(tagged, len(pos), idx); err != nil {
		return err
	}
	if err := w.positions(pos); err != nil {
		return err
	}

	return w.p.LineStringEnd(tagged, idx)
}

func (w walker) polygon(rings [][][]float64, tagged bool, idx int) error {
	if err := w.p.PolygonBegin(tagged, len(rings), idx); err != nil {
		return err
	}
	for i, ring := range rings {
		if err := w.path(ring, false, i); err != nil {
			return err
		}
	}

	return w.p.PolygonEnd(tagged, idx)
}
