// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package tiles

import (
	"github.com/oddrow/hexwfc/internal/direction"
	"github.com/oddrow/hexwfc/internal/terrain"
)

// Tile type ids for the built-in example libraries (GRASS/ROAD_A/
// GRASS_SLOPE). They are exported so tests and the CLI's demo library can
// refer to them by name.
const (
	Grass TileType = iota + 1
	RoadA
	GrassSlope
)

func allGrass() [direction.NumDirections]terrain.EdgeTerrain_e {
	var e [direction.NumDirections]terrain.EdgeTerrain_e
	for _, d := range direction.All {
		e[d] = terrain.Grass
	}
	return e
}

// ExampleLibraryL0 builds the flat demo library: GRASS (weight 100,
// all-grass edges) and ROAD_A (weight 10, E/W road, others grass).
func ExampleLibraryL0() (*Library, error) {
	grassEdges := allGrass()

	roadEdges := allGrass()
	roadEdges[direction.E] = terrain.Road
	roadEdges[direction.W] = terrain.Road

	return NewLibrary(
		&Prototype{Type: Grass, Name: "GRASS", Edges: grassEdges, Weight: 100},
		&Prototype{Type: RoadA, Name: "ROAD_A", Edges: roadEdges, Weight: 10},
	)
}

// ExampleLibraryL1 builds the leveled demo library: L0 plus GRASS_SLOPE,
// an all-grass tile whose NE/E/SE edges sit one level higher than its base.
func ExampleLibraryL1() (*Library, error) {
	slopeEdges := allGrass()
	var highEdges [direction.NumDirections]bool
	highEdges[direction.NE] = true
	highEdges[direction.E] = true
	highEdges[direction.SE] = true

	return NewLibrary(
		&Prototype{Type: Grass, Name: "GRASS", Edges: allGrass(), Weight: 100},
		&Prototype{Type: RoadA, Name: "ROAD_A", Edges: func() [direction.NumDirections]terrain.EdgeTerrain_e {
			e := allGrass()
			e[direction.E] = terrain.Road
			e[direction.W] = terrain.Road
			return e
		}(), Weight: 10},
		&Prototype{Type: GrassSlope, Name: "GRASS_SLOPE", Edges: slopeEdges, Weight: 20, HighEdges: highEdges, LevelIncrement: 1},
	)
}
