package geojson

import (
	gj "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"

	"github.com/arloliu/flatgeom/errs"
	"github.com/arloliu/flatgeom/stream"
)

// Writer is a stream.Processor that builds GeoJSON geometry objects.
//
// A single top-level geometry is returned as is; several are wrapped in a
// GeometryCollection. Rings are written as received, so a ring coming from a
// flat geometry is already closed.
//
// Note: a Writer is NOT thread-safe and NOT reusable.
type Writer struct {
	withZ bool

	completed []*gj.Geometry
	frames    [][]*gj.Geometry

	kind  gj.GeometryType
	path  [][]float64
	rings [][][]float64
	polys [][][][]float64

	finished bool
}

var _ stream.Processor = (*Writer)(nil)

// NewWriter creates a Writer. With withZ set, coordinates that carry z are
// written as three-value positions.
func NewWriter(withZ bool) *Writer {
	return &Writer{withZ: withZ}
}

// Geometry finalizes the writer and returns the produced geometry.
func (w *Writer) Geometry() (*gj.Geometry, error) {
	if w.finished {
		return nil, errs.ErrBuilderFinished
	}
	w.finished = true

	if len(w.frames) > 0 || w.kind != "" {
		return nil, errors.Wrap(errs.ErrUnbalancedStream, "geometry still open")
	}

	switch len(w.completed) {
	case 0:
		return nil, errs.ErrNoGeometry
	case 1:
		return w.completed[0], nil
	default:
		return gj.NewCollectionGeometry(w.completed...), nil
	}
}

func (w *Writer) start(kind gj.GeometryType) error {
	if w.finished {
		return errs.ErrBuilderFinished
	}
	if w.kind != "" {
		return errors.Wrapf(errs.ErrUnbalancedStream, "%s inside %s", kind, w.kind)
	}
	w.kind = kind
	w.path, w.rings, w.polys = nil, nil, nil

	return nil
}

func (w *Writer) expect(kind gj.GeometryType) error {
	if w.finished {
		return errs.ErrBuilderFinished
	}
	if w.kind != kind {
		return errors.Wrapf(errs.ErrUnbalancedStream, "%s end without begin", kind)
	}

	return nil
}

func (w *Writer) finish(g *gj.Geometry) {
	w.kind = ""
	w.path, w.rings, w.polys = nil, nil, nil

	if n := len(w.frames); n > 0 {
		w.frames[n-1] = append(w.frames[n-1], g)
		return
	}
	w.completed = append(w.completed, g)
}

func (w *Writer) push(pos []float64) error {
	if w.finished {
		return errs.ErrBuilderFinished
	}
	if w.kind != "" {
		w.path = append(w.path, pos)
	}

	return nil
}

// MultiDim reports whether the writer keeps z.
func (w *Writer) MultiDim() bool {
	return w.withZ
}

func (w *Writer) XY(x, y float64, _ int) error {
	return w.push([]float64{x, y})
}

func (w *Writer) Coordinate(x, y float64, z, _, _ stream.Ordinate, _ stream.Timestamp, _ int) error {
	if w.withZ && z.Valid {
		return w.push([]float64{x, y, z.Value})
	}

	return w.push([]float64{x, y})
}

func (w *Writer) PointBegin(_ int) error {
	return w.start(gj.GeometryPoint)
}

func (w *Writer) PointEnd(_ int) error {
	if err := w.expect(gj.GeometryPoint); err != nil {
		return err
	}

	var pos []float64
	if len(w.path) > 0 {
		pos = w.path[0]
	}
	w.finish(gj.NewPointGeometry(pos))

	return nil
}

func (w *Writer) MultiPointBegin(_, _ int) error {
	return w.start(gj.GeometryMultiPoint)
}

func (w *Writer) MultiPointEnd(_ int) error {
	if err := w.expect(gj.GeometryMultiPoint); err != nil {
		return err
	}
	w.finish(gj.NewMultiPointGeometry(w.path...))

	return nil
}

func (w *Writer) LineStringBegin(tagged bool, size, _ int) error {
	if tagged {
		return w.start(gj.GeometryLineString)
	}
	if w.finished {
		return errs.ErrBuilderFinished
	}
	w.path = make([][]float64, 0, max(size, 0))

	return nil
}

func (w *Writer) LineStringEnd(tagged bool, _ int) error {
	if tagged {
		if err := w.expect(gj.GeometryLineString); err != nil {
			return err
		}
		w.finish(gj.NewLineStringGeometry(w.path))

		return nil
	}

	switch w.kind {
	case gj.GeometryMultiLineString, gj.GeometryPolygon, gj.GeometryMultiPolygon:
		w.rings = append(w.rings, w.path)
		w.path = nil

		return nil
	default:
		return w.expect(gj.GeometryMultiLineString)
	}
}

func (w *Writer) MultiLineStringBegin(_, _ int) error {
	return w.start(gj.GeometryMultiLineString)
}

func (w *Writer) MultiLineStringEnd(_ int) error {
	if err := w.expect(gj.GeometryMultiLineString); err != nil {
		return err
	}
	w.finish(gj.NewMultiLineStringGeometry(w.rings...))

	return nil
}

func (w *Writer) PolygonBegin(tagged bool, _, _ int) error {
	if tagged {
		return w.start(gj.GeometryPolygon)
	}
	if err := w.expect(gj.GeometryMultiPolygon); err != nil {
		return err
	}
	w.rings = nil

	return nil
}

func (w *Writer) PolygonEnd(tagged bool, _ int) error {
	if tagged {
		if err := w.expect(gj.GeometryPolygon); err != nil {
			return err
		}
		w.finish(gj.NewPolygonGeometry(w.rings))

		return nil
	}

	if err := w.expect(gj.GeometryMultiPolygon); err != nil {
		return err
	}
	w.polys = append(w.polys, w.rings)
	w.rings = nil

	return nil
}

func (w *Writer) MultiPolygonBegin(_, _ int) error {
	return w.start(gj.GeometryMultiPolygon)
}

func (w *Writer) MultiPolygonEnd(_ int) error {
	if err := w.expect(gj.GeometryMultiPolygon); err != nil {
		return err
	}
	w.finish(gj.NewMultiPolygonGeometry(w.polys...))

	return nil
}

func (w *Writer) GeometryCollectionBegin(size, _ int) error {
	if w.finished {
		return errs.ErrBuilderFinished
	}
	if w.kind != "" {
		return errors.Wrapf(errs.ErrUnbalancedStream, "collection inside %s", w.kind)
	}
	w.frames = append(w.frames, make([]*gj.Geometry, 0, max(size, 0)))

	return nil
}

func (w *Writer) GeometryCollectionEnd(_ int) error {
	if w.finished {
		return errs.ErrBuilderFinished
	}
	n := len(w.frames)
	if n == 0 || w.kind != "" {
		return errors.Wrap(errs.ErrUnbalancedStream, "collection end without begin")
	}

	members := w.frames[n-1]
	w.frames = w.frames[:n-1]
	w.finish(gj.NewCollectionGeometry(members...))

	return nil
}
