// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package tiles_test

import (
	"testing"

	"github.com/oddrow/hexwfc/internal/direction"
	"github.com/oddrow/hexwfc/internal/terrain"
	"github.com/oddrow/hexwfc/internal/tiles"
)

func TestExampleLibraryL0(t *testing.T) {
	lib, err := tiles.ExampleLibraryL0()
	if err != nil {
		t.Fatalf("ExampleLibraryL0: %v", err)
	}
	grass, ok := lib.Get(tiles.Grass)
	if !ok {
		t.Fatalf("GRASS not registered")
	}
	for _, d := range direction.All {
		if grass.Edges[d] != terrain.Grass {
			t.Errorf("GRASS edge %s = %s, want grass", d, grass.Edges[d])
		}
	}
	road, ok := lib.Get(tiles.RoadA)
	if !ok {
		t.Fatalf("ROAD_A not registered")
	}
	if road.Edges[direction.E] != terrain.Road || road.Edges[direction.W] != terrain.Road {
		t.Errorf("ROAD_A E/W should be road, got E=%s W=%s", road.Edges[direction.E], road.Edges[direction.W])
	}
	for _, d := range []direction.Direction_e{direction.NE, direction.SE, direction.SW, direction.NW} {
		if road.Edges[d] != terrain.Grass {
			t.Errorf("ROAD_A edge %s = %s, want grass", d, road.Edges[d])
		}
	}
}

func TestValidLevelsFlatVsSlope(t *testing.T) {
	flat := &tiles.Prototype{Type: 1, Weight: 1}
	if got := flat.ValidLevels(2); len(got) != 3 {
		t.Fatalf("flat.ValidLevels(2) = %v, want 3 entries", got)
	}

	slope := &tiles.Prototype{Type: 2, Weight: 1, LevelIncrement: 1}
	got := slope.ValidLevels(2)
	want := []int{0, 1}
	if len(got) != len(want) {
		t.Fatalf("slope.ValidLevels(2) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("slope.ValidLevels(2) = %v, want %v", got, want)
		}
	}

	steepSlope := &tiles.Prototype{Type: 3, Weight: 1, LevelIncrement: 2}
	if got := steepSlope.ValidLevels(1); got != nil {
		t.Fatalf("steepSlope.ValidLevels(1) = %v, want nil (no legal level)", got)
	}
}

func TestRotatedEdges(t *testing.T) {
	var edges [direction.NumDirections]terrain.EdgeTerrain_e
	edges[direction.NE] = terrain.River
	p := &tiles.Prototype{Type: 1, Weight: 1, Edges: edges}

	// rotating by 2: direction d should carry what was at (d-2) mod 6.
	rotated := p.RotatedEdges(2)
	wantDir := direction.NE.Rotate(2) // SE
	if rotated[wantDir] != terrain.River {
		t.Errorf("RotatedEdges(2)[%s] = %s, want %s", wantDir, rotated[wantDir], terrain.River)
	}
}

func TestStateEdgeHonoursHighEdges(t *testing.T) {
	lib, err := tiles.ExampleLibraryL1()
	if err != nil {
		t.Fatalf("ExampleLibraryL1: %v", err)
	}
	s := tiles.State{Type: tiles.GrassSlope, Rotation: 0, Level: 1}
	tag, level, err := s.Edge(lib, direction.NE)
	if err != nil {
		t.Fatalf("Edge: %v", err)
	}
	if tag != terrain.Grass || level != 2 {
		t.Errorf("slope NE edge = (%s, %d), want (grass, 2)", tag, level)
	}
	tag, level, err = s.Edge(lib, direction.SW)
	if err != nil {
		t.Fatalf("Edge: %v", err)
	}
	if tag != terrain.Grass || level != 1 {
		t.Errorf("slope SW edge = (%s, %d), want (grass, 1)", tag, level)
	}
}

func TestEnumerateStates(t *testing.T) {
	lib, err := tiles.ExampleLibraryL0()
	if err != nil {
		t.Fatalf("ExampleLibraryL0: %v", err)
	}
	states, err := tiles.EnumerateStates(lib, lib.Types(), 0)
	if err != nil {
		t.Fatalf("EnumerateStates: %v", err)
	}
	// 2 types * 6 rotations * 1 level (maxLevel=0, both flat) = 12
	if len(states) != 12 {
		t.Fatalf("EnumerateStates = %d states, want 12", len(states))
	}
}
