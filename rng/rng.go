// Package rng provides the byte-wide entropy source the bus mounts at a
// fixed address ($00FE), the same convention the classic 6502 "Snake" demo
// program reads its random bytes from.
package rng

import "math/rand"

// RNG is a read-only IO device: every read returns a fresh random byte.
// Writes are no-ops, matching the original's IO trait implementation
// (random::<u8>() on read, ignored write).
type RNG struct {
	src *rand.Rand
}

// New returns an RNG seeded from a caller-supplied seed, so tests can make
// its sequence deterministic. Production callers seed from a time source.
func New(seed int64) *RNG {
	return &RNG{src: rand.New(rand.NewSource(seed))}
}

// Read ignores addr (the bus only ever routes the single $00FE address here)
// and returns the next pseudo-random byte.
func (r *RNG) Read(addr uint16) byte {
	return byte(r.src.Intn(256))
}

// Write is a no-op; the RNG has no writable state.
func (r *RNG) Write(addr uint16, v byte) {}
