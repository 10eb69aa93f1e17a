// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package bitset implements a small fixed-universe bitset used for cell
// possibility sets. The universe is the dense state id space produced by
// package adjacency; a bitset over that universe beats a hashed set here
// since union/containment/difference dominate the solver's propagation hot
// path.
package bitset
