package compress

import (
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// ZstdCompressor compresses payloads with Zstandard.
//
// The implementation is selected at build time: klauspost/compress/zstd by
// default, valyala/gozstd with the gozstd build tag.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec with the default level.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// checkZstdFrame rejects a frame whose declared content size exceeds limit.
// Frames without a declared size are bounded by the decoder instead.
func checkZstdFrame(data []byte, limit int) error {
	var h zstd.Header
	if err := h.Decode(data); err != nil {
		return errors.Wrap(err, "zstd decompression failed")
	}
	if h.HasFCS && h.FrameContentSize > uint64(MaxDecodedSize) {
		return errors.Wrapf(ErrOutputLimit, "zstd frame declares %d bytes", h.FrameContentSize)
	}
	if h.HasFCS {
		return checkLimit(int(h.FrameContentSize), limit)
	}

	return nil
}
