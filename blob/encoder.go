package blob

import (
	"math"

	"github.com/pkg/errors"

	"github.com/arloliu/flatgeom/compress"
	"github.com/arloliu/flatgeom/encoding"
	"github.com/arloliu/flatgeom/errs"
	"github.com/arloliu/flatgeom/internal/hash"
	"github.com/arloliu/flatgeom/internal/options"
	"github.com/arloliu/flatgeom/internal/pool"
	"github.com/arloliu/flatgeom/section"
	"github.com/arloliu/flatgeom/stream"
)

// noRun marks that no coordinate run is open.
const noRun = -1

// Encoder records a geometry event stream as a blob.
//
// Note: The Encoder is NOT thread-safe and NOT reusable. After calling
// Finish, a new encoder must be created.
type Encoder struct {
	*EncoderConfig

	structure *pool.ByteBuffer
	coords    *encoding.ValueRawEncoder

	opCount    int
	coordCount int
	depth      int

	// runOperand is the byte offset of the operand of the open OpCoords
	// entry, or noRun.
	runOperand int
	runLen     uint32

	finished bool
}

var _ stream.Processor = (*Encoder)(nil)

// NewEncoder creates an Encoder. Invalid options return an error.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	config := newEncoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(config.Compression())
	if err != nil {
		return nil, err
	}
	config.codec = codec

	return &Encoder{
		EncoderConfig: config,
		structure:     pool.GetStructureBuffer(),
		coords:        encoding.NewValueRawEncoder(config.engine),
		runOperand:    noRun,
	}, nil
}

// Encode records src into a new blob.
func Encode(src stream.Source, opts ...EncoderOption) ([]byte, error) {
	enc, err := NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	if err := src.Process(enc); err != nil {
		_, _ = enc.Finish()
		return nil, err
	}

	return enc.Finish()
}

func (e *Encoder) checkOpen() error {
	if e.finished {
		return errs.ErrEncoderFinished
	}

	return nil
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case uint64(v) > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}

func (e *Encoder) appendOperand(v int) {
	e.structure.B = e.engine.AppendUint32(e.structure.B, clampUint32(v))
}

// closeRun patches the length of the open coordinate run.
func (e *Encoder) closeRun() {
	if e.runOperand == noRun {
		return
	}

	e.engine.PutUint32(e.structure.B[e.runOperand:e.runOperand+section.OperandSize], e.runLen)
	e.runOperand = noRun
	e.runLen = 0
}

func (e *Encoder) writeOp(op section.Opcode, operand int) error {
	if err := e.checkOpen(); err != nil {
		return err
	}

	switch {
	case op.IsBegin():
		e.depth++
	case op.IsEnd():
		if e.depth == 0 {
			return errors.Wrapf(errs.ErrUnbalancedStream, "%s without matching begin", op)
		}
		e.depth--
	}

	e.closeRun()
	_ = e.structure.WriteByte(byte(op))
	if op.HasOperand() {
		e.appendOperand(operand)
	}
	e.opCount++

	return nil
}

func (e *Encoder) writeCoord(x, y float64, z stream.Ordinate) error {
	if err := e.checkOpen(); err != nil {
		return err
	}

	if e.runOperand == noRun {
		_ = e.structure.WriteByte(byte(section.OpCoords))
		e.runOperand = e.structure.Len()
		e.appendOperand(0)
		e.opCount++
	}
	e.runLen++
	e.coordCount++

	e.coords.Write(x)
	e.coords.Write(y)
	if e.Dimension() >= section.MaxDimension {
		zv := math.NaN()
		if z.Valid {
			zv = z.Value
		}
		e.coords.Write(zv)
	}

	return nil
}

// Finish closes the encoder and returns the blob. Unclosed geometries return
// errs.ErrUnbalancedStream.
func (e *Encoder) Finish() ([]byte, error) {
	if err := e.checkOpen(); err != nil {
		return nil, err
	}
	e.finished = true

	defer func() {
		pool.PutStructureBuffer(e.structure)
		e.coords.Finish()
		e.structure, e.coords = nil, nil
	}()

	e.closeRun()
	if e.depth != 0 {
		return nil, errors.Wrapf(errs.ErrUnbalancedStream, "%d unclosed geometries", e.depth)
	}

	payload := make([]byte, 0, e.structure.Len()+e.coords.Size())
	payload = append(payload, e.structure.Bytes()...)
	payload = append(payload, e.coords.Bytes()...)

	header := *e.header
	header.OpCount = clampUint32(e.opCount)
	header.CoordCount = clampUint32(e.coordCount)
	header.StructureSize = clampUint32(e.structure.Len())
	header.Checksum = hash.Sum(payload)

	packed, err := e.codec.Compress(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compress blob payload")
	}

	data := make([]byte, section.HeaderSize+len(packed))
	copy(data, header.Bytes())
	copy(data[section.HeaderSize:], packed)

	e.logger.V(1).Info("blob finished",
		"ops", e.opCount,
		"coords", e.coordCount,
		"payload", len(payload),
		"size", len(data),
		"compression", e.Compression().String(),
		"ratio", compress.Ratio(len(payload), len(packed)),
	)

	return data, nil
}

// MultiDim reports whether the encoder stores z.
func (e *Encoder) MultiDim() bool {
	return e.Dimension() >= section.MaxDimension
}

func (e *Encoder) XY(x, y float64, _ int) error {
	return e.writeCoord(x, y, stream.None)
}

// Coordinate stores x, y and, in a three-dimensional blob, z. m, t and tm
// are not stored.
func (e *Encoder) Coordinate(x, y float64, z, _, _ stream.Ordinate, _ stream.Timestamp, _ int) error {
	return e.writeCoord(x, y, z)
}

func (e *Encoder) PointBegin(_ int) error {
	return e.writeOp(section.OpPointBegin, 0)
}

func (e *Encoder) PointEnd(_ int) error {
	return e.writeOp(section.OpPointEnd, 0)
}

func (e *Encoder) MultiPointBegin(size, _ int) error {
	return e.writeOp(section.OpMultiPointBegin, size)
}

func (e *Encoder) MultiPointEnd(_ int) error {
	return e.writeOp(section.OpMultiPointEnd, 0)
}

func (e *Encoder) LineStringBegin(tagged bool, size, _ int) error {
	return e.writeOp(section.OpLineStringBegin.Tag(tagged), size)
}

func (e *Encoder) LineStringEnd(tagged bool, _ int) error {
	return e.writeOp(section.OpLineStringEnd.Tag(tagged), 0)
}

func (e *Encoder) MultiLineStringBegin(size, _ int) error {
	return e.writeOp(section.OpMultiLineStringBegin, size)
}

func (e *Encoder) MultiLineStringEnd(_ int) error {
	return e.writeOp(section.OpMultiLineStringEnd, 0)
}

func (e *Encoder) PolygonBegin(tagged bool, size, _ int) error {
	return e.writeOp(section.OpPolygonBegin.Tag(tagged), size)
}

func (e *Encoder) PolygonEnd(tagged bool, _ int) error {
	return e.writeOp(section.OpPolygonEnd.Tag(tagged), 0)
}

func (e *Encoder) MultiPolygonBegin(size, _ int) error {
	return e.writeOp(section.OpMultiPolygonBegin, size)
}

func (e *Encoder) MultiPolygonEnd(_ int) error {
	return e.writeOp(section.OpMultiPolygonEnd, 0)
}

func (e *Encoder) GeometryCollectionBegin(size, _ int) error {
	return e.writeOp(section.OpGeometryCollectionBegin, size)
}

func (e *Encoder) GeometryCollectionEnd(_ int) error {
	return e.writeOp(section.OpGeometryCollectionEnd, 0)
}
