package section

import (
	"github.com/arloliu/flatgeom/endian"
	"github.com/arloliu/flatgeom/errs"
	"github.com/arloliu/flatgeom/format"
)

// Flag is the packed first word of the header.
type Flag struct {
	// Options packs the format identity and byte order.
	// Bit 1 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 0, 2 and 3 are reserved and must be 0.
	// Bits 4-15 hold the magic number, 0xEC10 for version 1.
	Options uint16

	// CompressionType is the codec applied to the payload.
	CompressionType uint8
	// Dimension is the number of ordinates stored per coordinate.
	Dimension uint8
}

// NewFlag returns a little-endian, Zstd-compressed, two-dimensional flag.
func NewFlag() Flag {
	return Flag{
		Options:         MagicGeometryV1,
		CompressionType: uint8(format.CompressionZstd),
		Dimension:       MinDimension,
	}
}

// IsLittleEndian reports whether multi-byte values are little-endian.
func (f Flag) IsLittleEndian() bool {
	return f.Options&EndiannessMask == 0
}

// IsBigEndian reports whether multi-byte values are big-endian.
func (f Flag) IsBigEndian() bool {
	return f.Options&EndiannessMask != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// MagicNumber returns bits 4-15 of Options.
func (f Flag) MagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Compression returns the payload codec.
func (f Flag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload codec.
func (f *Flag) SetCompression(c format.CompressionType) {
	f.CompressionType = uint8(c)
}

// Validate checks the magic number, reserved bits, codec and dimension.
func (f Flag) Validate() error {
	if f.MagicNumber() != MagicGeometryV1 {
		return errs.ErrInvalidMagicNumber
	}
	if f.Options&ReservedBitsMask != 0 {
		return errs.ErrInvalidHeaderFlags
	}
	if !f.Compression().IsValid() {
		return errs.ErrInvalidHeaderFlags
	}
	if f.Dimension < MinDimension || f.Dimension > MaxDimension {
		return errs.ErrInvalidDimension
	}

	return nil
}

// GetEndianEngine returns the engine matching the endianness bit.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
