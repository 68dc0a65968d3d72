package compress

import (
	"sync"

	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"
)

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor compresses payloads as LZ4 blocks.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates an LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data into one LZ4 block using a pooled compressor.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, errors.Wrap(err, "lz4 compression failed")
	}

	return dst[:n], nil
}

// DecompressLimit decodes one LZ4 block into a buffer of limit bytes.
func (c LZ4Compressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if err := checkLimit(limit, MaxDecodedSize); err != nil {
		return nil, err
	}

	buf := make([]byte, limit)
	n, err := lz4.UncompressBlock(data, buf)
	if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
		return nil, errors.Wrapf(ErrOutputLimit, "lz4 block exceeds %d bytes", limit)
	}
	if err != nil {
		return nil, errors.Wrap(err, "lz4 decompression failed")
	}

	return buf[:n], nil
}

// Decompress decodes one LZ4 block. The output buffer starts at four times
// the input size and doubles on ErrInvalidSourceShortBuffer, up to
// MaxDecodedSize.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	for size := len(data) * 4; size <= MaxDecodedSize; size *= 2 {
		buf := make([]byte, size)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, errors.Wrap(err, "lz4 decompression failed")
		}
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
