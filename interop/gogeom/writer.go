package gogeom

import (
	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"

	"github.com/arloliu/flatgeom/errs"
	"github.com/arloliu/flatgeom/stream"
)

type writerKind uint8

const (
	writerNone writerKind = iota
	writerPoint
	writerMultiPoint
	writerLineString
	writerMultiLineString
	writerPolygon
	writerMultiPolygon
)

// Writer is a stream.Processor that assembles go-geom geometries.
//
// It follows the same rules as geometry.Builder: a single top-level geometry
// is returned as is and several are wrapped in a GeometryCollection.
//
// Note: a Writer is NOT thread-safe and NOT reusable.
type Writer struct {
	layout geom.Layout
	stride int
	logger logr.Logger

	completed []geom.T
	frames    [][]geom.T

	kind  writerKind
	flat  []float64
	ends  []int
	endss [][]int

	finished bool
}

var _ stream.Processor = (*Writer)(nil)

// NewWriter creates a Writer producing geometries with the given layout.
// geom.NoLayout selects geom.XY.
func NewWriter(layout geom.Layout) *Writer {
	if layout == geom.NoLayout {
		layout = geom.XY
	}

	return &Writer{
		layout: layout,
		stride: layout.Stride(),
		logger: logr.Discard(),
	}
}

// WithLogger sets the logger used for lifecycle messages and returns w.
func (w *Writer) WithLogger(logger logr.Logger) *Writer {
	w.logger = logger
	return w
}

// Layout returns the layout of the produced geometries.
func (w *Writer) Layout() geom.Layout {
	return w.layout
}

// Geometry finalizes the writer and returns the produced geometry.
func (w *Writer) Geometry() (geom.T, error) {
	if w.finished {
		return nil, errs.ErrBuilderFinished
	}
	w.finished = true

	if len(w.frames) > 0 || w.kind != writerNone {
		return nil, errors.Wrap(errs.ErrUnbalancedStream, "geometry still open")
	}

	switch len(w.completed) {
	case 0:
		return nil, errs.ErrNoGeometry
	case 1:
		return w.completed[0], nil
	default:
		return newCollection(w.layout, w.completed)
	}
}

func newCollection(layout geom.Layout, members []geom.T) (*geom.GeometryCollection, error) {
	gc := geom.NewGeometryCollection()
	if len(members) == 0 {
		if err := gc.SetLayout(layout); err != nil {
			return nil, errors.Wrap(err, "set collection layout")
		}

		return gc, nil
	}
	if err := gc.Push(members...); err != nil {
		return nil, errors.Wrap(err, "push collection members")
	}

	return gc, nil
}

func (w *Writer) start(kind writerKind) error {
	if w.finished {
		return errs.ErrBuilderFinished
	}
	if w.kind != writerNone {
		return errors.Wrapf(errs.ErrUnbalancedStream, "nested geometry inside %d", w.kind)
	}

	w.kind = kind
	w.flat = nil
	w.ends = nil
	w.endss = nil

	return nil
}

func (w *Writer) expect(kind writerKind) error {
	if w.finished {
		return errs.ErrBuilderFinished
	}
	if w.kind != kind {
		return errors.Wrap(errs.ErrUnbalancedStream, "end without matching begin")
	}

	return nil
}

func (w *Writer) finish(g geom.T) {
	w.kind = writerNone
	w.flat, w.ends, w.endss = nil, nil, nil

	if n := len(w.frames); n > 0 {
		w.frames[n-1] = append(w.frames[n-1], g)
		return
	}

	w.completed = append(w.completed, g)
	w.logger.V(1).Info("geometry completed", "layout", g.Layout(), "count", len(w.completed))
}

func (w *Writer) appendCoord(vals ...float64) error {
	if w.finished {
		return errs.ErrBuilderFinished
	}
	if w.kind == writerNone {
		return nil
	}

	for j := range w.stride {
		if j < len(vals) {
			w.flat = append(w.flat, vals[j])
		} else {
			w.flat = append(w.flat, 0)
		}
	}

	return nil
}

// MultiDim reports whether the layout carries more than x and y.
func (w *Writer) MultiDim() bool {
	return w.stride > 2
}

func (w *Writer) XY(x, y float64, _ int) error {
	return w.appendCoord(x, y)
}

func (w *Writer) Coordinate(x, y float64, z, m, _ stream.Ordinate, _ stream.Timestamp, _ int) error {
	var buf [4]float64
	buf[0], buf[1] = x, y
	if zi := w.layout.ZIndex(); zi >= 0 {
		buf[zi] = z.Value
	}
	if mi := w.layout.MIndex(); mi >= 0 {
		buf[mi] = m.Value
	}

	return w.appendCoord(buf[:w.stride]...)
}

func (w *Writer) PointBegin(_ int) error {
	return w.start(writerPoint)
}

func (w *Writer) PointEnd(_ int) error {
	if err := w.expect(writerPoint); err != nil {
		return err
	}
	if len(w.flat) == 0 {
		w.finish(geom.NewPointEmpty(w.layout))
		return nil
	}
	w.finish(geom.NewPointFlat(w.layout, w.flat[:w.stride]))

	return nil
}

func (w *Writer) MultiPointBegin(_, _ int) error {
	return w.start(writerMultiPoint)
}

func (w *Writer) MultiPointEnd(_ int) error {
	if err := w.expect(writerMultiPoint); err != nil {
		return err
	}
	w.finish(geom.NewMultiPointFlat(w.layout, w.flat))

	return nil
}

func (w *Writer) LineStringBegin(tagged bool, _, _ int) error {
	if tagged {
		return w.start(writerLineString)
	}
	if w.finished {
		return errs.ErrBuilderFinished
	}

	return nil
}

func (w *Writer) LineStringEnd(tagged bool, _ int) error {
	if tagged {
		if err := w.expect(writerLineString); err != nil {
			return err
		}
		w.finish(geom.NewLineStringFlat(w.layout, w.flat))

		return nil
	}

	switch w.kind {
	case writerMultiLineString, writerPolygon, writerMultiPolygon:
		w.ends = append(w.ends, len(w.flat))
		return nil
	default:
		return w.expect(writerMultiLineString)
	}
}

func (w *Writer) MultiLineStringBegin(_, _ int) error {
	return w.start(writerMultiLineString)
}

func (w *Writer) MultiLineStringEnd(_ int) error {
	if err := w.expect(writerMultiLineString); err != nil {
		return err
	}
	w.finish(geom.NewMultiLineStringFlat(w.layout, w.flat, w.ends))

	return nil
}

func (w *Writer) PolygonBegin(tagged bool, _, _ int) error {
	if tagged {
		return w.start(writerPolygon)
	}
	if err := w.expect(writerMultiPolygon); err != nil {
		return err
	}
	w.ends = nil

	return nil
}

func (w *Writer) PolygonEnd(tagged bool, _ int) error {
	if tagged {
		if err := w.expect(writerPolygon); err != nil {
			return err
		}
		w.finish(geom.NewPolygonFlat(w.layout, w.flat, w.ends))

		return nil
	}

	if err := w.expect(writerMultiPolygon); err != nil {
		return err
	}
	w.endss = append(w.endss, w.ends)
	w.ends = nil

	return nil
}

func (w *Writer) MultiPolygonBegin(_, _ int) error {
	return w.start(writerMultiPolygon)
}

func (w *Writer) MultiPolygonEnd(_ int) error {
	if err := w.expect(writerMultiPolygon); err != nil {
		return err
	}
	w.finish(geom.NewMultiPolygonFlat(w.layout, w.flat, w.endss))

	return nil
}

func (w *Writer) GeometryCollectionBegin(size, _ int) error {
	if w.finished {
		return errs.ErrBuilderFinished
	}
	if w.kind != writerNone {
		return errors.Wrap(errs.ErrUnbalancedStream, "collection inside a geometry")
	}
	w.frames = append(w.frames, make([]geom.T, 0, max(size, 0)))

	return nil
}

func (w *Writer) GeometryCollectionEnd(_ int) error {
	if w.finished {
		return errs.ErrBuilderFinished
	}
	n := len(w.frames)
	if n == 0 || w.kind != writerNone {
		return errors.Wrap(errs.ErrUnbalancedStream, "collection end without begin")
	}

	members := w.frames[n-1]
	w.frames = w.frames[:n-1]

	gc, err := newCollection(w.layout, members)
	if err != nil {
		return err
	}
	w.finish(gc)

	return nil
}
