package blob

import (
	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	"github.com/arloliu/flatgeom/compress"
	"github.com/arloliu/flatgeom/encoding"
	"github.com/arloliu/flatgeom/endian"
	"github.com/arloliu/flatgeom/errs"
	"github.com/arloliu/flatgeom/internal/hash"
	"github.com/arloliu/flatgeom/internal/options"
	"github.com/arloliu/flatgeom/section"
)

// Decoder validates an encoded blob and reconstructs a Blob.
//
// Note: The Decoder is NOT thread-safe. Each decoder instance should be used
// by a single goroutine at a time.
type Decoder struct {
	data   []byte
	header section.Header
	engine endian.EndianEngine
	logger logr.Logger
}

// NewDecoder parses the header of data. The payload is not read until Decode.
func NewDecoder(data []byte, opts ...DecoderOption) (*Decoder, error) {
	cfg := &decoderConfig{logger: logr.Discard()}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	header, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	return &Decoder{
		data:   data,
		header: header,
		engine: header.Flag.GetEndianEngine(),
		logger: cfg.logger,
	}, nil
}

// Decode decodes data into a Blob.
func Decode(data []byte, opts ...DecoderOption) (*Blob, error) {
	d, err := NewDecoder(data, opts...)
	if err != nil {
		return nil, err
	}

	return d.Decode()
}

// Header returns the parsed header.
func (d *Decoder) Header() section.Header {
	return d.header
}

// Decode decompresses the payload, verifies its checksum and parses both
// columns. The returned Blob does not reference the input data.
func (d *Decoder) Decode() (*Blob, error) {
	codec, err := compress.GetCodec(d.header.Flag.Compression())
	if err != nil {
		return nil, err
	}

	// The header declares the exact payload size, so decompression never
	// needs to produce more.
	payload, err := codec.DecompressLimit(d.data[section.HeaderSize:], d.header.PayloadSize())
	if err != nil {
		return nil, errors.Wrapf(errs.ErrMalformedPayload, "decompress: %v", err)
	}

	if len(payload) != d.header.PayloadSize() {
		return nil, errors.Wrapf(errs.ErrMalformedPayload,
			"payload is %d bytes, header describes %d", len(payload), d.header.PayloadSize())
	}
	if hash.Sum(payload) != d.header.Checksum {
		return nil, errs.ErrChecksumMismatch
	}

	structure := payload[:d.header.StructureSize]
	ops, err := d.parseStructure(structure)
	if err != nil {
		return nil, err
	}

	b := &Blob{
		header: d.header,
		ops:    ops,
		values: d.parseCoords(payload[d.header.StructureSize:]),
	}

	d.logger.V(1).Info("blob decoded",
		"ops", len(b.ops),
		"coords", b.NumCoords(),
		"dimension", b.Dimension(),
		"compression", b.Compression().String(),
	)

	return b, nil
}

// parseStructure reads the structure column and checks it against the header
// counts. Begins and ends must balance.
func (d *Decoder) parseStructure(data []byte) ([]op, error) {
	ops := make([]op, 0, min(int(d.header.OpCount), len(data)))

	var (
		coords uint64
		depth  int
	)
	for pos := 0; pos < len(data); {
		code := section.Opcode(data[pos])
		if !code.Valid() {
			return nil, errors.Wrapf(errs.ErrMalformedPayload, "invalid opcode 0x%02x at %d", uint8(code), pos)
		}
		pos++

		var operand uint32
		if code.HasOperand() {
			if pos+section.OperandSize > len(data) {
				return nil, errors.Wrapf(errs.ErrMalformedPayload, "truncated operand of %s", code)
			}
			operand = d.engine.Uint32(data[pos : pos+section.OperandSize])
			pos += section.OperandSize
		}

		switch {
		case code == section.OpCoords:
			coords += uint64(operand)
		case code.IsBegin():
			depth++
		case code.IsEnd():
			depth--
			if depth < 0 {
				return nil, errors.Wrapf(errs.ErrMalformedPayload, "%s without matching begin", code)
			}
		}

		ops = append(ops, op{code: code, n: operand})
	}

	if depth != 0 {
		return nil, errors.Wrapf(errs.ErrMalformedPayload, "%d unclosed geometries", depth)
	}
	if len(ops) != int(d.header.OpCount) {
		return nil, errors.Wrapf(errs.ErrMalformedPayload, "found %d opcodes, header describes %d", len(ops), d.header.OpCount)
	}
	if coords != uint64(d.header.CoordCount) {
		return nil, errors.Wrapf(errs.ErrMalformedPayload, "runs hold %d coordinates, header describes %d", coords, d.header.CoordCount)
	}

	return ops, nil
}

func (d *Decoder) parseCoords(data []byte) []float64 {
	n := len(data) / section.ValueSize
	return encoding.NewValueRawDecoder(d.engine).AppendAll(make([]float64, 0, n), data, n)
}
