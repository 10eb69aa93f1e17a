// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package direction defines the six hex directions and the pure helpers
// (rotation, opposite) used throughout the grid and adjacency packages.
package direction
