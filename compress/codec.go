package compress

import (
	"github.com/pkg/errors"

	"github.com/arloliu/flatgeom/format"
)

// Compressor compresses a complete blob payload.
//
// The returned slice is owned by the caller. The input is never modified,
// but a codec may return it unchanged (see NoOpCompressor).
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// Corrupted input or input produced by another algorithm returns an error.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// LimitedDecompressor restores a payload whose uncompressed size is known in
// advance. Output larger than limit returns ErrOutputLimit without
// allocating past the limit.
type LimitedDecompressor interface {
	DecompressLimit(data []byte, limit int) ([]byte, error)
}

// Codec combines both directions of one algorithm.
//
// Built-in codecs are stateless values and safe for concurrent use; pooled
// encoder state lives in package-level pools.
type Codec interface {
	Compressor
	Decompressor
	LimitedDecompressor
}

// MaxDecodedSize bounds any single decompression.
const MaxDecodedSize = 128 * 1024 * 1024

// ErrOutputLimit is returned when decompressed data would exceed its limit.
var ErrOutputLimit = errors.New("decompressed size exceeds limit")

func checkLimit(n, limit int) error {
	if n > limit || n > MaxDecodedSize {
		return errors.Wrapf(ErrOutputLimit, "%d bytes, limit %d", n, min(limit, MaxDecodedSize))
	}

	return nil
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, errors.Errorf("unsupported compression type: %s", compressionType)
}

// Ratio returns compressed/original, or 0 for an empty original.
func Ratio(original, compressed int) float64 {
	if original == 0 {
		return 0
	}

	return float64(compressed) / float64(original)
}
