// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package terrain defines the closed set of edge terrain tags a tile's
// edges may carry, and the rules for when two facing edges are compatible.
package terrain
