package compress

import (
	"github.com/klauspost/compress/s2"
	"github.com/pkg/errors"
)

// S2Compressor compresses payloads with S2.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates an S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data as a single S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// DecompressLimit decodes a single S2 block after checking the decoded length
// stored in its preamble.
func (c S2Compressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, errors.Wrap(err, "s2 decompression failed")
	}
	if err := checkLimit(n, limit); err != nil {
		return nil, err
	}

	out, err := s2.Decode(make([]byte, n), data)
	if err != nil {
		return nil, errors.Wrap(err, "s2 decompression failed")
	}

	return out, nil
}

// Decompress decodes a single S2 block.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := s2.Decode(nil, data)
	if err != nil {
		return nil, errors.Wrap(err, "s2 decompression failed")
	}

	return out, nil
}
