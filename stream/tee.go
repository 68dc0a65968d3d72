package stream

// Tee returns a Processor that forwards every event to a and then b.
//
// MultiDim is true when either processor wants full coordinates. Coordinate
// calls are then forwarded to each side as XY or Coordinate according to that
// side's own MultiDim, so a 2D consumer never sees the extra ordinates.
func Tee(a, b Processor) Processor {
	return &tee{a: a, b: b}
}

type tee struct {
	a, b Processor
}

func (t *tee) both(fa, fb func() error) error {
	if err := fa(); err != nil {
		return err
	}

	return fb()
}

func (t *tee) MultiDim() bool {
	return t.a.MultiDim() || t.b.MultiDim()
}

func (t *tee) XY(x, y float64, idx int) error {
	return t.both(
		func() error { return t.a.XY(x, y, idx) },
		func() error { return t.b.XY(x, y, idx) },
	)
}

func forwardCoordinate(p Processor, x, y float64, z, m, tt Ordinate, tm Timestamp, idx int) error {
	if p.MultiDim() {
		return p.Coordinate(x, y, z, m, tt, tm, idx)
	}

	return p.XY(x, y, idx)
}

func (t *tee) Coordinate(x, y float64, z, m, tt Ordinate, tm Timestamp, idx int) error {
	return t.both(
		func() error { return forwardCoordinate(t.a, x, y, z, m, tt, tm, idx) },
		func() error { return forwardCoordinate(t.b, x, y, z, m, tt, tm, idx) },
	)
}

func (t *tee) PointBegin(idx int) error {
	return t.both(func() error { return t.a.PointBegin(idx) }, func() error { return t.b.PointBegin(idx) })
}

func (t *tee) PointEnd(idx int) error {
	return t.both(func() error { return t.a.PointEnd(idx) }, func() error { return t.b.PointEnd(idx) })
}

func (t *tee) MultiPointBegin(size, idx int) error {
	return t.both(
		func() error { return t.a.MultiPointBegin(size, idx) },
		func() error { return t.b.MultiPointBegin(size, idx) },
	)
}

func (t *tee) MultiPointEnd(idx int) error {
	return t.both(func() error { return t.a.MultiPointEnd(idx) }, func() error { return t.b.MultiPointEnd(idx) })
}

func (t *tee) LineStringBegin(tagged bool, size, idx int) error {
	return t.both(
		func() error { return t.a.LineStringBegin(tagged, size, idx) },
		func() error { return t.b.LineStringBegin(tagged, size, idx) },
	)
}

func (t *tee) LineStringEnd(tagged bool, idx int) error {
	return t.both(
		func() error { return t.a.LineStringEnd(tagged, idx) },
		func() error { return t.b.LineStringEnd(tagged, idx) },
	)
}

func (t *tee) MultiLineStringBegin(size, idx int) error {
	return t.both(
		func() error { return t.a.MultiLineStringBegin(size, idx) },
		func() error { return t.b.MultiLineStringBegin(size, idx) },
	)
}

func (t *tee) MultiLineStringEnd(idx int) error {
	return t.both(
		func() error { return t.a.MultiLineStringEnd(idx) },
		func() error { return t.b.MultiLineStringEnd(idx) },
	)
}

func (t *tee) PolygonBegin(tagged bool, size, idx int) error {
	return t.both(
		func() error { return t.a.PolygonBegin(tagged, size, idx) },
		func() error { return t.b.PolygonBegin(tagged, size, idx) },
	)
}

func (t *tee) PolygonEnd(tagged bool, idx int) error {
	return t.both(
		func() error { return t.a.PolygonEnd(tagged, idx) },
		func() error { return t.b.PolygonEnd(tagged, idx) },
	)
}

func (t *tee) MultiPolygonBegin(size, idx int) error {
	return t.both(
		func() error { return t.a.MultiPolygonBegin(size, idx) },
		func() error { return t.b.MultiPolygonBegin(size, idx) },
	)
}

func (t *tee) MultiPolygonEnd(idx int) error {
	return t.both(
		func() error { return t.a.MultiPolygonEnd(idx) },
		func() error { return t.b.MultiPolygonEnd(idx) },
	)
}

func (t *tee) GeometryCollectionBegin(size, idx int) error {
	return t.both(
		func() error { return t.a.GeometryCollectionBegin(size, idx) },
		func() error { return t.b.GeometryCollectionBegin(size, idx) },
	)
}

func (t *tee) GeometryCollectionEnd(idx int) error {
	return t.both(
		func() error { return t.a.GeometryCollectionEnd(idx) },
		func() error { return t.b.GeometryCollectionEnd(idx) },
	)
}
