// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package wfc

import "github.com/oddrow/hexwfc/internal/tiles"

// Options configures a Solver. Zero value is not directly usable; build one
// with DefaultOptions and override fields.
type Options struct {
	// Weights overrides the library's base weight per type during weighted
	// collapse. A type absent here falls back to the library's weight.
	Weights map[tiles.TileType]float64
	// Seed selects the deterministic RNG stream. Nil means non-deterministic.
	Seed *uint32
	// MaxRestarts bounds mid-solve contradiction restarts.
	MaxRestarts int
	// TileTypes restricts collapse to a subset of the adjacency index's
	// universe. Nil/empty means every type the index was built with.
	TileTypes []tiles.TileType
	// MaxLevel bounds instantiated levels; must not exceed the index's own
	// MaxLevel. Nil means the index's own MaxLevel.
	MaxLevel *int
	// GrassSpansLevels relaxes level matching across grass edges: a grass
	// edge is compatible with any other grass edge regardless of level.
	GrassSpansLevels bool
	// Log receives solver diagnostics; defaults to a no-op.
	Log func(message, tag string)
}

// DefaultOptions returns the documented defaults: no weight overrides,
// non-deterministic seed, 10 restarts, every tile type, the index's own
// max level, strict (non-spanning) grass levels.
func DefaultOptions() Options {
	return Options{
		MaxRestarts: 10,
	}
}

func (o Options) logf(message, tag string) {
	if o.Log != nil {
		o.Log(message, tag)
	}
}
