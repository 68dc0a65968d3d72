package geometry

import (
	"github.com/go-logr/logr"

	"github.com/arloliu/flatgeom/errs"
	"github.com/arloliu/flatgeom/internal/options"
	"github.com/arloliu/flatgeom/stream"
)

// Builder is a stream.Processor that reconstructs flat geometries from events.
//
// Only one non-collection geometry is open at a time (current). Nested
// GeometryCollections are tracked with an explicit frame stack, so nesting
// depth is bounded by memory rather than the call stack. Coordinates of the
// leaf sequence being read (a path, a ring or a set of points) accumulate in
// coords until the matching end event flushes them into current.
//
// Note: a Builder is NOT thread-safe and NOT reusable. Once Geometry or
// TakeGeometry has been called, create a new Builder.
type Builder[C Coord] struct {
	completed []Geometry[C]
	frames    [][]Geometry[C]
	current   Geometry[C]
	coords    []C

	// ringPos is the zero-based position of the next ring inside the
	// polygon being read.
	ringPos  int
	finished bool
	logger   logr.Logger
}

var _ stream.Processor = (*Builder[Coord2])(nil)

// NewBuilder creates a Builder. Invalid options return an error.
func NewBuilder[C Coord](opts ...BuilderOption) (*Builder[C], error) {
	cfg := newBuilderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Builder[C]{
		completed: make([]Geometry[C], 0, 1),
		coords:    make([]C, 0, cfg.coordCapacity),
		logger:    cfg.logger,
	}, nil
}

// Geometry finalizes the builder.
//
// With no completed geometry it returns errs.ErrNoGeometry. A single
// top-level geometry is returned as is; several are wrapped, in arrival
// order, in an implicit GeometryCollection.
func (b *Builder[C]) Geometry() (Geometry[C], error) {
	if b.finished {
		return nil, errs.ErrBuilderFinished
	}

	g, ok := b.TakeGeometry()
	if !ok {
		return nil, errs.ErrNoGeometry
	}

	return g, nil
}

// TakeGeometry finalizes the builder like Geometry and reports whether any
// geometry was produced.
func (b *Builder[C]) TakeGeometry() (Geometry[C], bool) {
	if b.finished {
		return nil, false
	}
	b.finished = true

	geoms := b.completed
	b.completed = nil
	b.coords = nil

	switch len(geoms) {
	case 0:
		return nil, false
	case 1:
		return geoms[0], true
	default:
		return NewGeometryCollection(geoms...), true
	}
}

// Len returns the number of completed top-level geometries so far.
func (b *Builder[C]) Len() int {
	return len(b.completed)
}

// startGeometry opens g as the current geometry.
func (b *Builder[C]) startGeometry(g Geometry[C]) {
	b.current = g
	b.coords = b.coords[:0]
	b.logger.V(2).Info("begin geometry", "kind", g.Kind(), "depth", len(b.frames))
}

// finishGeometry moves the current geometry into the innermost open
// collection, or into the completed list at top level.
func (b *Builder[C]) finishGeometry() {
	if b.current == nil {
		return
	}

	b.push(b.current)
	b.current = nil
}

func (b *Builder[C]) push(g Geometry[C]) {
	if n := len(b.frames); n > 0 {
		b.frames[n-1] = append(b.frames[n-1], g)
		return
	}

	b.completed = append(b.completed, g)
	b.logger.V(1).Info("geometry completed", "kind", g.Kind(), "count", len(b.completed))
}

// flush hands the buffered coordinates to the current geometry and clears the
// buffer. Without a current geometry the coordinates are dropped.
func (b *Builder[C]) flush() {
	defer func() { b.coords = b.coords[:0] }()

	switch g := b.current.(type) {
	case *MultiPoint[C]:
		g.Extend(b.coords...)
	case *LineString[C]:
		g.Extend(b.coords...)
	case *MultiLineString[C]:
		g.AddLineString(b.coords...)
	case *Polygon[C]:
		g.AddRing(b.coords...)
		b.ringPos++
	case *MultiPolygon[C]:
		if b.ringPos == 0 {
			g.AddExterior(b.coords...)
		} else {
			g.AddInterior(b.coords...)
		}
		b.ringPos++
	}
}

func (b *Builder[C]) checkOpen() error {
	if b.finished {
		return errs.ErrBuilderFinished
	}

	return nil
}

// MultiDim reports whether C carries a third value.
func (b *Builder[C]) MultiDim() bool {
	return Dim[C]() >= 3
}

// XY buffers a coordinate; values beyond x and y are zero.
func (b *Builder[C]) XY(x, y float64, _ int) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	b.coords = append(b.coords, NewCoord[C](x, y))

	return nil
}

// Coordinate buffers a coordinate. z is kept when C has a third value; m, t
// and tm are ignored.
func (b *Builder[C]) Coordinate(x, y float64, z, _, _ stream.Ordinate, _ stream.Timestamp, _ int) error {
	if err := b.checkOpen(); err != nil {
		return err
	}

	c := NewCoord[C](x, y)
	if z.Valid {
		c = NewCoordZ[C](x, y, z.Value)
	}
	b.coords = append(b.coords, c)

	return nil
}

// PointBegin opens a single point, stored as a one-point MultiPoint.
func (b *Builder[C]) PointBegin(_ int) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	b.startGeometry(NewMultiPoint[C]())

	return nil
}

func (b *Builder[C]) PointEnd(_ int) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	b.flush()
	b.finishGeometry()

	return nil
}

func (b *Builder[C]) MultiPointBegin(size, _ int) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	b.startGeometry(&MultiPoint[C]{coords: make([]C, 0, max(size, 0))})

	return nil
}

func (b *Builder[C]) MultiPointEnd(_ int) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	b.flush()
	b.finishGeometry()

	return nil
}

// LineStringBegin opens a standalone LineString when tagged. Untagged
// begins are parts or rings of the already open container.
func (b *Builder[C]) LineStringBegin(tagged bool, size, _ int) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	if tagged {
		b.startGeometry(&LineString[C]{coords: make([]C, 0, max(size, 0))})
	}

	return nil
}

func (b *Builder[C]) LineStringEnd(tagged bool, _ int) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	b.flush()
	if tagged {
		b.finishGeometry()
	}

	return nil
}

func (b *Builder[C]) MultiLineStringBegin(size, _ int) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	b.startGeometry(&MultiLineString[C]{ends: make([]int, 0, max(size, 0))})

	return nil
}

func (b *Builder[C]) MultiLineStringEnd(_ int) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	b.finishGeometry()

	return nil
}

// PolygonBegin opens a standalone Polygon when tagged. An untagged begin
// starts the next member of the open MultiPolygon; either way the ring
// position restarts at the exterior.
func (b *Builder[C]) PolygonBegin(tagged bool, size, _ int) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	if tagged {
		b.startGeometry(&Polygon[C]{ends: make([]int, 0, max(size, 0))})
	}
	b.ringPos = 0

	return nil
}

func (b *Builder[C]) PolygonEnd(tagged bool, _ int) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	if tagged {
		b.finishGeometry()
		return nil
	}

	// A member polygon without rings never reached AddExterior.
	if mp, ok := b.current.(*MultiPolygon[C]); ok && b.ringPos == 0 {
		mp.AddEmpty()
	}

	return nil
}

func (b *Builder[C]) MultiPolygonBegin(size, _ int) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	b.startGeometry(&MultiPolygon[C]{polyEnds: make([]int, 0, max(size, 0))})

	return nil
}

func (b *Builder[C]) MultiPolygonEnd(_ int) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	b.finishGeometry()

	return nil
}

// GeometryCollectionBegin pushes a new collection frame.
func (b *Builder[C]) GeometryCollectionBegin(size, _ int) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	b.frames = append(b.frames, make([]Geometry[C], 0, max(size, 0)))
	b.logger.V(2).Info("begin geometry", "kind", KindGeometryCollection, "depth", len(b.frames))

	return nil
}

// GeometryCollectionEnd pops the innermost frame and stores it as a
// GeometryCollection in the enclosing frame or the completed list.
func (b *Builder[C]) GeometryCollectionEnd(_ int) error {
	if err := b.checkOpen(); err != nil {
		return err
	}

	n := len(b.frames)
	if n == 0 {
		return nil
	}
	members := b.frames[n-1]
	b.frames = b.frames[:n-1]
	b.push(NewGeometryCollection(members...))

	return nil
}
