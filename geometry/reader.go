package geometry

import (
	"github.com/arloliu/flatgeom/errs"
	"github.com/arloliu/flatgeom/stream"
)

// Process emits g into p. It is equivalent to g.Process(p).
//
// Rings are always emitted closed: the first coordinate is repeated at the
// end, and the size passed to LineStringBegin for a ring counts that closing
// coordinate, so a stored ring of n coordinates reports n+1. Empty rings
// report 0 and emit nothing. Tagged LineStrings and MultiLineString parts
// report their stored length.
//
// A nil geometry, or a nil pointer anywhere in the tree, fails with
// errs.ErrUnknownGeometry before anything further is emitted for it.
func Process[C Coord](g Geometry[C], p stream.Processor) error {
	return newEmitter[C](p).geometry(g, 0)
}

// emitter walks flat containers and reports them to a processor. Errors from
// the processor are returned unchanged and stop the walk.
type emitter[C Coord] struct {
	p    stream.Processor
	full bool
}

func newEmitter[C Coord](p stream.Processor) emitter[C] {
	return emitter[C]{p: p, full: p.MultiDim() && Dim[C]() >= 3}
}

func (e emitter[C]) geometry(g Geometry[C], idx int) error {
	if isNil(g) {
		return errs.ErrUnknownGeometry
	}

	switch g := g.(type) {
	case *MultiPoint[C]:
		return e.multiPoint(g, idx)
	case *LineString[C]:
		return e.lineString(g, idx)
	case *MultiLineString[C]:
		return e.multiLineString(g, idx)
	case *Polygon[C]:
		return e.polygon(g.coords, g.ends, true, idx)
	case *MultiPolygon[C]:
		return e.multiPolygon(g, idx)
	case *GeometryCollection[C]:
		return e.collection(g, idx)
	default:
		return errs.ErrUnknownGeometry
	}
}

func (e emitter[C]) coord(c C, idx int) error {
	if e.full {
		z, _ := Z(c)
		return e.p.Coordinate(c[0], c[1], stream.Some(z), stream.None, stream.None, stream.NoTimestamp, idx)
	}

	return e.p.XY(c[0], c[1], idx)
}

func (e emitter[C]) coords(coords []C) error {
	for i := range coords {
		if err := e.coord(coords[i], i); err != nil {
			return err
		}
	}

	return nil
}

// ring emits one ring closed. The size reported to the processor is the
// number of coordinates actually emitted.
func (e emitter[C]) ring(ring []C, idx int) error {
	size := len(ring)
	if size > 0 {
		size++
	}

	if err := e.p.LineStringBegin(false, size, idx); err != nil {
		return err
	}
	if err := e.coords(ring); err != nil {
		return err
	}
	if len(ring) > 0 {
		if err := e.coord(ring[0], len(ring)); err != nil {
			return err
		}
	}

	return e.p.LineStringEnd(false, idx)
}

func (e emitter[C]) multiPoint(mp *MultiPoint[C], idx int) error {
	if err := e.p.MultiPointBegin(len(mp.coords), idx); err != nil {
		return err
	}
	if err := e.coords(mp.coords); err != nil {
		return err
	}

	return e.p.MultiPointEnd(idx)
}

func (e emitter[C]) lineString(ls *LineString[C], idx int) error {
	if err := e.p.LineStringBegin(true, len(ls.coords), idx); err != nil {
		return err
	}
	if err := e.coords(ls.coords); err != nil {
		return err
	}

	return e.p.LineStringEnd(true, idx)
}

func (e emitter[C]) multiLineString(mls *MultiLineString[C], idx int) error {
	if err := e.p.MultiLineStringBegin(len(mls.ends), idx); err != nil {
		return err
	}

	for i := range mls.ends {
		start, end := span(mls.ends, i)
		part := mls.coords[start:end]

		if err := e.p.LineStringBegin(false, len(part), i); err != nil {
			return err
		}
		if err := e.coords(part); err != nil {
			return err
		}
		if err := e.p.LineStringEnd(false, i); err != nil {
			return err
		}
	}

	return e.p.MultiLineStringEnd(idx)
}

// polygon emits the rings described by ends over coords. It serves both the
// standalone Polygon (tagged) and the members of a MultiPolygon.
func (e emitter[C]) polygon(coords []C, ends []int, tagged bool, idx int) error {
	if err := e.p.PolygonBegin(tagged, len(ends), idx); err != nil {
		return err
	}

	for i := range ends {
		start, end := span(ends, i)
		if err := e.ring(coords[start:end], i); err != nil {
			return err
		}
	}

	return e.p.PolygonEnd(tagged, idx)
}

func (e emitter[C]) multiPolygon(mp *MultiPolygon[C], idx int) error {
	if err := e.p.MultiPolygonBegin(len(mp.polyEnds), idx); err != nil {
		return err
	}

	for i := range mp.polyEnds {
		rs, re := span(mp.polyEnds, i)
		if err := e.polygonRings(mp, rs, re, i); err != nil {
			return err
		}
	}

	return e.p.MultiPolygonEnd(idx)
}

// polygonRings emits rings [rs, re) of mp as the untagged polygon idx without
// materializing a Polygon view.
func (e emitter[C]) polygonRings(mp *MultiPolygon[C], rs, re, idx int) error {
	if err := e.p.PolygonBegin(false, re-rs, idx); err != nil {
		return err
	}

	for r := rs; r < re; r++ {
		start, end := span(mp.ringEnds, r)
		if err := e.ring(mp.coords[start:end], r-rs); err != nil {
			return err
		}
	}

	return e.p.PolygonEnd(false, idx)
}

func (e emitter[C]) collection(gc *GeometryCollection[C], idx int) error {
	if err := e.p.GeometryCollectionBegin(len(gc.geoms), idx); err != nil {
		return err
	}

	for i, g := range gc.geoms {
		if err := e.geometry(g, i); err != nil {
			return err
		}
	}

	return e.p.GeometryCollectionEnd(idx)
}

// Process emits the MultiPoint into p.
func (mp *MultiPoint[C]) Process(p stream.Processor) error {
	return Process[C](mp, p)
}

// Process emits the LineString into p as a tagged, standalone path.
func (ls *LineString[C]) Process(p stream.Processor) error {
	return Process[C](ls, p)
}

// Process emits the MultiLineString into p, one untagged LineString per part.
func (mls *MultiLineString[C]) Process(p stream.Processor) error {
	return Process[C](mls, p)
}

// Process emits the Polygon into p with every ring closed.
func (p *Polygon[C]) Process(proc stream.Processor) error {
	return Process[C](p, proc)
}

// Process emits the MultiPolygon into p, one untagged Polygon per member.
func (mp *MultiPolygon[C]) Process(p stream.Processor) error {
	return Process[C](mp, p)
}

// Process emits the collection and, recursively, its members into p.
func (gc *GeometryCollection[C]) Process(p stream.Processor) error {
	return Process[C](gc, p)
}
