// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package rng provides the solver's deterministic pseudo-random source.
// Every decision the solver makes that depends on randomness — which cell
// breaks an entropy tie, which candidate state a weighted collapse picks —
// draws from this single stream, so that a fixed seed reproduces a fixed
// run bit-for-bit.
package rng
