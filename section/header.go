package section

import (
	"github.com/arloliu/flatgeom/errs"
)

// Header is the fixed-size section at the start of a geometry blob.
//
// The first two bytes (Flag.Options) are always little-endian so the byte
// order of the remaining fields can be determined before reading them.
type Header struct {
	// Flag is the packed options, compression and dimension word.
	Flag Flag // byte offset 0-3
	// OpCount is the number of opcodes in the structure column.
	OpCount uint32 // byte offset 4-7
	// CoordCount is the number of coordinates in the coordinate column.
	CoordCount uint32 // byte offset 8-11
	// StructureSize is the uncompressed byte length of the structure column.
	StructureSize uint32 // byte offset 12-15
	// Checksum is the xxHash64 of the uncompressed payload.
	Checksum uint64 // byte offset 16-23
}

// NewHeader creates a header with a default flag. Counts and checksum are
// filled in when the encoder finishes.
func NewHeader() *Header {
	return &Header{Flag: NewFlag()}
}

// CoordColumnSize returns the uncompressed byte length of the coordinate column.
func (h *Header) CoordColumnSize() int {
	return int(h.CoordCount) * int(h.Flag.Dimension) * ValueSize
}

// PayloadSize returns the uncompressed byte length of the whole payload.
func (h *Header) PayloadSize() int {
	return int(h.StructureSize) + h.CoordColumnSize()
}

// Parse parses the header from exactly HeaderSize bytes and validates its flag.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Flag.Options = uint16(data[0]) | uint16(data[1])<<8
	h.Flag.CompressionType = data[2]
	h.Flag.Dimension = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()
	h.OpCount = engine.Uint32(data[4:8])
	h.CoordCount = engine.Uint32(data[8:12])
	h.StructureSize = engine.Uint32(data[12:16])
	h.Checksum = engine.Uint64(data[16:24])

	return nil
}

// Bytes serializes the header.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	engine := h.Flag.GetEndianEngine()

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.CompressionType
	b[3] = h.Flag.Dimension
	engine.PutUint32(b[4:8], h.OpCount)
	engine.PutUint32(b[8:12], h.CoordCount)
	engine.PutUint32(b[12:16], h.StructureSize)
	engine.PutUint64(b[16:24], h.Checksum)

	return b
}

// ParseHeader parses a Header from the start of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
