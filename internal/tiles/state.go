// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package tiles

import (
	"fmt"

	"github.com/oddrow/hexwfc/internal/direction"
	"github.com/oddrow/hexwfc/internal/terrain"
)

// State is the (type, rotation, level) triple a cell may collapse to.
type State struct {
	Type     TileType
	Rotation int
	Level    int
}

func (s State) String() string {
	return fmt.Sprintf("State{type:%d rot:%d level:%d}", s.Type, s.Rotation, s.Level)
}

// Edge returns the (terrain, edgeLevel) this state exposes in direction d.
func (s State) Edge(lib *Library, d direction.Direction_e) (terrain.EdgeTerrain_e, int, error) {
	p, ok := lib.Get(s.Type)
	if !ok {
		return terrain.None, 0, fmt.Errorf("tiles: state refers to unknown type %d", s.Type)
	}
	edges := p.RotatedEdges(s.Rotation)
	high := p.RotatedHighEdges(s.Rotation)
	level := s.Level
	if high[d] {
		level += p.LevelIncrement
	}
	return edges[d], level, nil
}

// EnumerateStates returns every valid state for the given types at the
// given max level: every rotation of every flat tile at every level
// 0..maxLevel, and every rotation of every slope tile at its valid base
// levels (see Prototype.ValidLevels).
func EnumerateStates(lib *Library, types []TileType, maxLevel int) ([]State, error) {
	var states []State
	for _, t := range types {
		p, ok := lib.Get(t)
		if !ok {
			return nil, fmt.Errorf("tiles: unknown type %d in tile set", t)
		}
		levels := p.ValidLevels(maxLevel)
		for r := 0; r < direction.NumDirections; r++ {
			for _, level := range levels {
				states = append(states, State{Type: t, Rotation: r, Level: level})
			}
		}
	}
	return states, nil
}
