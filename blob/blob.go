package blob

import (
	"math"

	"github.com/arloliu/flatgeom/format"
	"github.com/arloliu/flatgeom/section"
	"github.com/arloliu/flatgeom/stream"
)

// op is one decoded structure entry.
type op struct {
	code section.Opcode
	n    uint32
}

// Blob is a decoded geometry blob. It replays its event stream through
// Process any number of times.
type Blob struct {
	header section.Header
	ops    []op
	values []float64
}

var _ stream.Source = (*Blob)(nil)

// Dimension returns the number of ordinates stored per coordinate.
func (b *Blob) Dimension() int { return int(b.header.Flag.Dimension) }

// NumCoords returns the number of stored coordinates.
func (b *Blob) NumCoords() int { return int(b.header.CoordCount) }

// NumOps returns the number of structure entries.
func (b *Blob) NumOps() int { return len(b.ops) }

// Compression returns the codec the payload was stored with.
func (b *Blob) Compression() format.CompressionType { return b.header.Flag.Compression() }

// IsBigEndian reports whether the blob was written big-endian.
func (b *Blob) IsBigEndian() bool { return b.header.Flag.IsBigEndian() }

// Checksum returns the xxHash64 of the uncompressed payload.
func (b *Blob) Checksum() uint64 { return b.header.Checksum }

// frame tracks the position of an open geometry and the next child position.
type frame struct {
	idx  int
	next int
}

// replayer carries the state of one Process call.
type replayer struct {
	p      stream.Processor
	dim    int
	full   bool
	frames []frame
	cursor int
}

func (r *replayer) top() *frame {
	return &r.frames[len(r.frames)-1]
}

// Process replays the recorded events into p and stops at the first error.
// Position indices are regenerated from the nesting.
func (b *Blob) Process(p stream.Processor) error {
	r := &replayer{
		p:      p,
		dim:    b.Dimension(),
		full:   p.MultiDim() && b.Dimension() >= section.MaxDimension,
		frames: make([]frame, 1, 8),
	}

	for _, o := range b.ops {
		var err error
		switch {
		case o.code == section.OpCoords:
			err = r.coords(b.values, int(o.n))
		case o.code.IsBegin():
			idx := r.top().next
			r.frames = append(r.frames, frame{idx: idx})
			err = r.begin(o, idx)
		default:
			f := *r.top()
			r.frames = r.frames[:len(r.frames)-1]
			r.top().next++
			err = r.end(o.code, f.idx)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *replayer) coords(values []float64, n int) error {
	for range n {
		v := values[r.cursor : r.cursor+r.dim]
		r.cursor += r.dim

		t := r.top()
		idx := t.next
		t.next++

		var err error
		if r.full {
			z := stream.None
			if !math.IsNaN(v[2]) {
				z = stream.Some(v[2])
			}
			err = r.p.Coordinate(v[0], v[1], z, stream.None, stream.None, stream.NoTimestamp, idx)
		} else {
			err = r.p.XY(v[0], v[1], idx)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *replayer) begin(o op, idx int) error {
	size := int(o.n)
	tagged := o.code.IsTagged()

	switch o.code.Base() { //nolint: exhaustive
	case section.OpPointBegin:
		return r.p.PointBegin(idx)
	case section.OpMultiPointBegin:
		return r.p.MultiPointBegin(size, idx)
	case section.OpLineStringBegin:
		return r.p.LineStringBegin(tagged, size, idx)
	case section.OpMultiLineStringBegin:
		return r.p.MultiLineStringBegin(size, idx)
	case section.OpPolygonBegin:
		return r.p.PolygonBegin(tagged, size, idx)
	case section.OpMultiPolygonBegin:
		return r.p.MultiPolygonBegin(size, idx)
	default:
		return r.p.GeometryCollectionBegin(size, idx)
	}
}

func (r *replayer) end(code section.Opcode, idx int) error {
	tagged := code.IsTagged()

	switch code.Base() { //nolint: exhaustive
	case section.OpPointEnd:
		return r.p.PointEnd(idx)
	case section.OpMultiPointEnd:
		return r.p.MultiPointEnd(idx)
	case section.OpLineStringEnd:
		return r.p.LineStringEnd(tagged, idx)
	case section.OpMultiLineStringEnd:
		return r.p.MultiLineStringEnd(idx)
	case section.OpPolygonEnd:
		return r.p.PolygonEnd(tagged, idx)
	case section.OpMultiPolygonEnd:
		return r.p.MultiPolygonEnd(idx)
	default:
		return r.p.GeometryCollectionEnd(idx)
	}
}
