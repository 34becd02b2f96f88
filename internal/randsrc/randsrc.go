// Package randsrc generates deterministic pseudorandom byte streams for
// property-based tests, so a failing test reports a seed that reproduces
// the exact same inputs on a later run instead of a fresh random failure.
package randsrc

import (
	"encoding/binary"

	sha256simd "github.com/minio/sha256-simd"
)

// Source is a counter-mode deterministic byte stream: block n is
// SHA256(seed || n), drained 32 bytes at a time. Grounded on hash.go's use
// of github.com/minio/sha256-simd for every hashing need in the teacher
// package; this reuses the same library for test-vector generation rather
// than reaching for crypto/rand or math/rand.
type Source struct {
	seed    [32]byte
	counter uint64
	buf     [32]byte
	pos     int
}

// New returns a Source seeded from seed. Two Sources built from the same
// seed produce identical streams.
func New(seed [32]byte) *Source {
	return &Source{seed: seed, pos: 32}
}

func (s *Source) refill() {
	var block [40]byte
	copy(block[:32], s.seed[:])
	binary.BigEndian.PutUint64(block[32:], s.counter)
	s.counter++
	s.buf = sha256simd.Sum256(block[:])
	s.pos = 0
}

// Read fills p with deterministic pseudorandom bytes. Always returns
// len(p), nil; it exists to satisfy io.Reader for callers that want it.
func (s *Source) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if s.pos == 32 {
			s.refill()
		}
		c := copy(p[n:], s.buf[s.pos:])
		s.pos += c
		n += c
	}
	return n, nil
}

// Uint64 returns the next 8 pseudorandom bytes as a big-endian uint64.
func (s *Source) Uint64() uint64 {
	var b [8]byte
	s.Read(b[:])
	return binary.BigEndian.Uint64(b[:])
}

// Uint128 returns the next 16 pseudorandom bytes as low/high uint64 halves.
func (s *Source) Uint128() (lo, hi uint64) {
	return s.Uint64(), s.Uint64()
}
