// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package hexgrid implements the odd-row offset hex geometry: neighbour
// offsets keyed by row parity, the per-cell return-direction lookup, edge
// rotation, and the axial-coordinate radius test used to clip a rectangular
// grid to a hex-shaped playable area.
//
// The neighbour model is "odd-r": the offset to a neighbour depends on the
// row parity of the starting cell, so the vector table is keyed by parity
// and the return direction is derived per cell rather than assumed to be
// the geometric opposite.
package hexgrid
