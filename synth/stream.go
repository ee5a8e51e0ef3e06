// SPDX-License-Identifier: MIT

package synth

import (
	"crypto/sha256"
	"encoding/binary"
)

// stream is a deterministic byte source: block i is SHA-256(key ‖ be64(i)).
// Not safe for concurrent use; every call site owns its stream.
type stream struct {
	key     [sha256.Size]byte
	counter uint64
	block   [sha256.Size]byte
	pos     int
}

// newStream keys a stream by a domain label and the caller's seed, so the
// sequence stream and the table streams of one seed never overlap.
func newStream(label, seed string) *stream {
	h := sha256.New()
	h.Write([]byte(label))
	h.Write([]byte{0})
	h.Write([]byte(seed))

	s := &stream{pos: sha256.Size}
	copy(s.key[:], h.Sum(nil))

	return s
}

func (s *stream) refill() {
	var buf [sha256.Size + 8]byte
	copy(buf[:], s.key[:])
	binary.BigEndian.PutUint64(buf[sha256.Size:], s.counter)
	s.block = sha256.Sum256(buf[:])
	s.counter++
	s.pos = 0
}

// uint64 returns the next 8 bytes of the stream as a big-endian integer.
func (s *stream) uint64() uint64 {
	if s.pos+8 > sha256.Size {
		s.refill()
	}
	v := binary.BigEndian.Uint64(s.block[s.pos:])
	s.pos += 8

	return v
}

// intn returns a uniform integer in [0, n) by rejection sampling. n > 0.
func (s *stream) intn(n int) int {
	bound := uint64(n)
	// Largest multiple of bound that fits; draws at or above it are rejected.
	limit := ^uint64(0) - (^uint64(0)%bound+1)%bound
	for {
		if v := s.uint64(); v <= limit {
			return int(v % bound)
		}
	}
}

// float64 returns a uniform value in [0, 1) with 53 bits of precision.
func (s *stream) float64() float64 {
	return float64(s.uint64()>>11) / (1 << 53)
}
