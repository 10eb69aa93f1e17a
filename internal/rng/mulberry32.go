// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package rng

import (
	"crypto/rand"
	"encoding/binary"
)

// Source is the solver's random draw interface: a single Float64 in
// [0, 1) per call, with internal state advanced on every draw.
type Source interface {
	Float64() float64
}

// Mulberry32 is a 32-bit PRNG, chosen for the solver because it is cheap,
// has no external dependency, and — critically — is trivial to reimplement
// bit-for-bit in another language for cross-checking a stored trace.
type Mulberry32 struct {
	state uint32
}

// NewMulberry32 seeds a new stream. Two streams built from the same seed
// produce the same sequence of draws forever.
func NewMulberry32(seed uint32) *Mulberry32 {
	return &Mulberry32{state: seed}
}

// NewNonDeterministic seeds a stream from the operating system's CSPRNG.
// It exists for unseeded runs; its sequence is not reproducible.
func NewNonDeterministic() *Mulberry32 {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand failing is a fatal environment problem, not one the
		// solver can recover from; fall back to a fixed non-zero state so
		// construction never panics.
		return &Mulberry32{state: 0x9e3779b9}
	}
	return &Mulberry32{state: binary.LittleEndian.Uint32(buf[:])}
}

// Float64 returns the next draw in [0, 1).
func (m *Mulberry32) Float64() float64 {
	m.state += 0x6D2B79F5
	t := m.state
	t ^= t >> 15
	t *= 1 | m.state
	t += (t ^ (t >> 7)) * (61 | t)
	t ^= t >> 14
	return float64(t) / 4294967296.0
}
