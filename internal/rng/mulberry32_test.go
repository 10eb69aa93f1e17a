// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package rng_test

import (
	"testing"

	"github.com/oddrow/hexwfc/internal/rng"
)

func TestMulberry32Deterministic(t *testing.T) {
	a := rng.NewMulberry32(1)
	b := rng.NewMulberry32(1)
	for i := 0; i < 100; i++ {
		x, y := a.Float64(), b.Float64()
		if x != y {
			t.Fatalf("draw %d diverged: %v != %v", i, x, y)
		}
	}
}

func TestMulberry32DifferentSeedsDiverge(t *testing.T) {
	a := rng.NewMulberry32(1)
	b := rng.NewMulberry32(2)
	same := true
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("seeds 1 and 2 produced identical sequences")
	}
}

func TestMulberry32Range(t *testing.T) {
	m := rng.NewMulberry32(42)
	for i := 0; i < 10000; i++ {
		v := m.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("draw %d out of range: %v", i, v)
		}
	}
}

func TestMulberry32KnownSequence(t *testing.T) {
	// Regression pin: reseeding must reproduce the first draw exactly. If
	// this ever changes, the mixing arithmetic drifted.
	m := rng.NewMulberry32(1)
	first := m.Float64()
	if first <= 0 || first >= 1 {
		t.Fatalf("first draw out of range: %v", first)
	}
	if want := 836030678.0 / 4294967296.0; first != want {
		t.Fatalf("first draw for seed 1 = %v, want %v", first, want)
	}
	m2 := rng.NewMulberry32(1)
	if got := m2.Float64(); got != first {
		t.Fatalf("reseeding with 1 did not reproduce first draw: %v != %v", got, first)
	}
}

func TestNewNonDeterministicProducesValidDraws(t *testing.T) {
	m := rng.NewNonDeterministic()
	for i := 0; i < 100; i++ {
		v := m.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("draw %d out of range: %v", i, v)
		}
	}
}
