package blob

import (
	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	"github.com/arloliu/flatgeom/compress"
	"github.com/arloliu/flatgeom/endian"
	"github.com/arloliu/flatgeom/errs"
	"github.com/arloliu/flatgeom/format"
	"github.com/arloliu/flatgeom/internal/options"
	"github.com/arloliu/flatgeom/section"
)

// EncoderConfig holds the header template and collaborators of an Encoder.
type EncoderConfig struct {
	header *section.Header
	engine endian.EndianEngine
	codec  compress.Codec
	logger logr.Logger
}

func newEncoderConfig() *EncoderConfig {
	header := section.NewHeader()

	return &EncoderConfig{
		header: header,
		engine: header.Flag.GetEndianEngine(),
		logger: logr.Discard(),
	}
}

func (c *EncoderConfig) setEndianness(bigEndian bool) {
	if bigEndian {
		c.header.Flag.WithBigEndian()
	} else {
		c.header.Flag.WithLittleEndian()
	}
	c.engine = c.header.Flag.GetEndianEngine()
}

func (c *EncoderConfig) setCompression(comp format.CompressionType) error {
	if !comp.IsValid() {
		return errors.Errorf("invalid blob compression: %s", comp)
	}
	c.header.Flag.SetCompression(comp)

	return nil
}

func (c *EncoderConfig) setDimension(dim int) error {
	if dim < section.MinDimension || dim > section.MaxDimension {
		return errors.Wrapf(errs.ErrInvalidDimension, "dimension %d", dim)
	}
	c.header.Flag.Dimension = uint8(dim) //nolint: gosec

	return nil
}

// Dimension returns the number of ordinates stored per coordinate.
func (c *EncoderConfig) Dimension() int {
	return int(c.header.Flag.Dimension)
}

// Compression returns the configured payload codec type.
func (c *EncoderConfig) Compression() format.CompressionType {
	return c.header.Flag.Compression()
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithLittleEndian stores multi-byte values little-endian. This is the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setEndianness(false)
	})
}

// WithBigEndian stores multi-byte values big-endian.
func WithBigEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setEndianness(true)
	})
}

// WithCompression selects the payload codec. The default is Zstd.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setCompression(comp)
	})
}

// WithDimension sets the number of ordinates stored per coordinate, 2 or 3.
// The default is 2.
func WithDimension(dim int) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setDimension(dim)
	})
}

// WithLogger sets the logger receiving encoder diagnostics.
func WithLogger(logger logr.Logger) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.logger = logger
	})
}

type decoderConfig struct {
	logger logr.Logger
}

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*decoderConfig]

// WithDecoderLogger sets the logger receiving decoder diagnostics.
func WithDecoderLogger(logger logr.Logger) DecoderOption {
	return options.NoError(func(c *decoderConfig) {
		c.logger = logger
	})
}
