//go:build gozstd && cgo

package compress

import (
	"github.com/pkg/errors"
	"github.com/valyala/gozstd"
)

// zstdLevel matches the default level of the pure Go encoder.
const zstdLevel = 3

// Compress compresses data with the cgo zstd bindings.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, zstdLevel), nil
}

// Decompress decompresses data with the cgo zstd bindings.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, errors.Wrap(err, "zstd decompression failed")
	}

	return out, nil
}

// DecompressLimit decompresses data into a buffer of limit bytes capacity.
func (c ZstdCompressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if err := checkZstdFrame(data, limit); err != nil {
		return nil, err
	}

	out, err := gozstd.Decompress(make([]byte, 0, limit), data)
	if err != nil {
		return nil, errors.Wrap(err, "zstd decompression failed")
	}
	if err := checkLimit(len(out), limit); err != nil {
		return nil, err
	}

	return out, nil
}
