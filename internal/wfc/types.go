// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package wfc

import (
	"github.com/oddrow/hexwfc/internal/direction"
	"github.com/oddrow/hexwfc/internal/terrain"
	"github.com/oddrow/hexwfc/internal/tiles"
)

// Seed is a caller-supplied pre-placed cell.
type Seed struct {
	X, Z     int
	Type     tiles.TileType
	Rotation int
	Level    int
}

// Placement is one resolved grid cell.
type Placement struct {
	GridX, GridZ int
	Type         tiles.TileType
	Rotation     int
	Level        int
}

// CollapseEvent is one entry in the ordered collapse trace: every placement
// as it happened, including seeds, in the order collapse occurred.
type CollapseEvent struct {
	X, Z     int
	Type     tiles.TileType
	Rotation int
	Level    int
}

// EdgeExposure is one distinct (terrain, edge_level) pair the source cell's
// surviving states offered across the failing edge.
type EdgeExposure struct {
	Terrain terrain.EdgeTerrain_e
	Level   int
}

// Contradiction describes the cell and cause of a failed propagation.
type Contradiction struct {
	// FailedX, FailedZ is the cell whose possibility set emptied.
	FailedX, FailedZ int
	// SourceX, SourceZ is the cell whose collapse/propagation triggered it.
	SourceX, SourceZ int
	Direction        direction.Direction_e
	// SourceState is the source cell's chosen state, when it had collapsed
	// before the failure. Nil if the source was still superposed.
	SourceState *tiles.State
	// AllowedEdges summarises the distinct (terrain, edge_level) pairs the
	// source exposed toward the failed cell; none of them admitted any of
	// the failed cell's remaining states.
	AllowedEdges []EdgeExposure
	// Seeded is true when the contradiction arose while applying seeds,
	// meaning the solver will not restart.
	Seeded bool
}

// Result is the outcome of a solve attempt.
type Result struct {
	Placements        []Placement
	CollapseOrder     []CollapseEvent
	RestartCount      int
	LastContradiction *Contradiction
}

// Success reports whether the solve produced placements.
func (r *Result) Success() bool {
	return r != nil && r.Placements != nil
}
