package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Sum computes the xxHash64 of data.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Hasher accumulates fixed-width values into an xxHash64 digest.
//
// Values are written in little-endian order so the digest does not depend on
// the host byte order.
type Hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

// NewHasher returns an empty Hasher.
func NewHasher() *Hasher {
	return &Hasher{d: xxhash.New()}
}

// WriteUint64 adds v to the digest.
func (h *Hasher) WriteUint64(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	_, _ = h.d.Write(h.buf[:])
}

// WriteFloat64 adds the IEEE 754 bits of v to the digest.
func (h *Hasher) WriteFloat64(v float64) {
	h.WriteUint64(math.Float64bits(v))
}

// WriteByte adds a single byte to the digest.
func (h *Hasher) WriteByte(b byte) error {
	h.buf[0] = b
	_, err := h.d.Write(h.buf[:1])

	return err
}

// Sum64 returns the current digest.
func (h *Hasher) Sum64() uint64 {
	return h.d.Sum64()
}
