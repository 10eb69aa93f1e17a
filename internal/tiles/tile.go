// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package tiles

import (
	"fmt"
	"sort"

	"github.com/oddrow/hexwfc/cerrs"
	"github.com/oddrow/hexwfc/internal/direction"
	"github.com/oddrow/hexwfc/internal/hexgrid"
	"github.com/oddrow/hexwfc/internal/terrain"
)

// TileType identifies a prototype in a Library.
type TileType int

// Prototype is a tile definition at rotation 0.
type Prototype struct {
	Type TileType
	Name string

	// Edges gives the terrain tag exposed in each direction at rotation 0.
	Edges [direction.NumDirections]terrain.EdgeTerrain_e

	// Weight is the base selection weight; must be >= 1.
	Weight float64

	// HighEdges names the directions, at rotation 0, whose outgoing edge
	// sits at base_level + LevelIncrement instead of base_level. Empty for
	// flat tiles.
	HighEdges [direction.NumDirections]bool

	// LevelIncrement is the elevation step of a slope/cliff tile's high
	// edges. Zero (the default) means the tile is flat.
	LevelIncrement int
}

// IsSlope reports whether p has a positive LevelIncrement. HighEdges is
// not consulted.
func (p *Prototype) IsSlope() bool {
	return p.LevelIncrement > 0
}

// RotatedEdges returns p's edge map rotated r positions clockwise.
func (p *Prototype) RotatedEdges(r int) [direction.NumDirections]terrain.EdgeTerrain_e {
	return hexgrid.RotateEdges(p.Edges, r)
}

// RotatedHighEdges returns p's high-edge set rotated r positions clockwise.
func (p *Prototype) RotatedHighEdges(r int) [direction.NumDirections]bool {
	return hexgrid.RotateHighEdges(p.HighEdges, r)
}

// ValidLevels returns the base levels at which p may be instantiated given
// a solver's max level. Flat tiles are valid at every level 0..maxLevel;
// slope tiles are valid at 0..maxLevel-LevelIncrement inclusive, so a high
// edge's level is itself always a legal level.
func (p *Prototype) ValidLevels(maxLevel int) []int {
	ceiling := maxLevel - p.LevelIncrement
	if ceiling < 0 {
		return nil
	}
	levels := make([]int, 0, ceiling+1)
	for l := 0; l <= ceiling; l++ {
		levels = append(levels, l)
	}
	return levels
}

// Library is an immutable, keyed collection of tile prototypes.
type Library struct {
	prototypes map[TileType]*Prototype
	order      []TileType
}

// NewLibrary builds a Library from a set of prototypes. It is an error to
// register two prototypes with the same Type, or a prototype with a weight
// below 1.
func NewLibrary(prototypes ...*Prototype) (*Library, error) {
	l := &Library{prototypes: make(map[TileType]*Prototype, len(prototypes))}
	for _, p := range prototypes {
		if p.Weight < 1 {
			return nil, fmt.Errorf("tiles: type %d: weight %.2f is below the minimum of 1", p.Type, p.Weight)
		}
		if _, exists := l.prototypes[p.Type]; exists {
			return nil, fmt.Errorf("tiles: duplicate type %d", p.Type)
		}
		l.prototypes[p.Type] = p
		l.order = append(l.order, p.Type)
	}
	sort.Slice(l.order, func(i, j int) bool { return l.order[i] < l.order[j] })
	return l, nil
}

// Get returns the prototype for t, if registered.
func (l *Library) Get(t TileType) (*Prototype, bool) {
	p, ok := l.prototypes[t]
	return p, ok
}

// MustGet returns the prototype for t and panics if it is not registered.
// Reserved for call sites that have already validated t against the library.
func (l *Library) MustGet(t TileType) *Prototype {
	p, ok := l.prototypes[t]
	if !ok {
		panic(fmt.Sprintf("tiles: unknown type %d", t))
	}
	return p
}

// Types returns every registered type, in a stable ascending order.
func (l *Library) Types() []TileType {
	out := make([]TileType, len(l.order))
	copy(out, l.order)
	return out
}

// Weight returns the base weight for t, or an error if t is not registered.
func (l *Library) Weight(t TileType) (float64, error) {
	p, ok := l.prototypes[t]
	if !ok {
		return 0, cerrs.ErrUnknownTileType
	}
	return p.Weight, nil
}

// TypeByName returns the type id registered under the given prototype name.
// Library construction does not enforce unique names; ties resolve to the
// prototype with the lowest type id.
func (l *Library) TypeByName(name string) (TileType, bool) {
	for _, t := range l.order {
		if l.prototypes[t].Name == name {
			return t, true
		}
	}
	return 0, false
}
