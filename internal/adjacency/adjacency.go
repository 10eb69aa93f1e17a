// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package adjacency

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/oddrow/hexwfc/cerrs"
	"github.com/oddrow/hexwfc/internal/bitset"
	"github.com/oddrow/hexwfc/internal/direction"
	"github.com/oddrow/hexwfc/internal/terrain"
	"github.com/oddrow/hexwfc/internal/tiles"
)

// edgeEntry is the (terrain, edge_level) pair a state exposes in one
// direction.
type edgeEntry struct {
	Terrain terrain.EdgeTerrain_e
	Level   int
}

// edgeKey is the lookup key for the by_edge bucket: terrain, the direction
// we're asking about (i.e. the return direction on the neighbour side), and
// the edge_level.
type edgeKey struct {
	Terrain terrain.EdgeTerrain_e
	Dir     direction.Direction_e
	Level   int
}

// Index is the immutable, shared-across-runs adjacency index. It is safe to
// read concurrently from any number of solver instances.
type Index struct {
	lib      *tiles.Library
	maxLevel int

	states     []tiles.State
	stateIndex map[tiles.State]int
	stateEdges [][direction.NumDirections]edgeEntry

	byEdge map[edgeKey]*bitset.Set

	// cache memoises Candidates lookups behind the three-key descent above.
	// It is sized to hold every distinct key the index can produce, so in
	// steady state it never evicts mid-solve.
	cache *lru.Cache[edgeKey, *bitset.Set]
}

// Build enumerates every state for the given tile types at the given
// max level, computes each state's rotated edge vector, and populates the
// by_edge buckets used by Candidates.
func Build(lib *tiles.Library, types []tiles.TileType, maxLevel int) (*Index, error) {
	states, err := tiles.EnumerateStates(lib, types, maxLevel)
	if err != nil {
		return nil, err
	}
	if len(states) == 0 {
		return nil, cerrs.ErrEmptyTileSet
	}

	idx := &Index{
		lib:        lib,
		maxLevel:   maxLevel,
		states:     states,
		stateIndex: make(map[tiles.State]int, len(states)),
		stateEdges: make([][direction.NumDirections]edgeEntry, len(states)),
	}

	buckets := make(map[edgeKey][]int)
	for i, s := range states {
		idx.stateIndex[s] = i
		for _, d := range direction.All {
			t, lvl, err := s.Edge(lib, d)
			if err != nil {
				return nil, err
			}
			idx.stateEdges[i][d] = edgeEntry{Terrain: t, Level: lvl}
			key := edgeKey{Terrain: t, Dir: d, Level: lvl}
			buckets[key] = append(buckets[key], i)
		}
	}

	idx.byEdge = make(map[edgeKey]*bitset.Set, len(buckets))
	for key, ids := range buckets {
		set := bitset.New(len(states))
		for _, id := range ids {
			set.Add(id)
		}
		idx.byEdge[key] = set
	}

	cacheSize := len(buckets)
	if cacheSize < 1 {
		cacheSize = 1
	}
	cache, err := lru.New[edgeKey, *bitset.Set](cacheSize)
	if err != nil {
		return nil, err
	}
	idx.cache = cache

	return idx, nil
}

// Candidates returns the states that may sit at a neighbour touching this
// cell in direction d, given that this cell's facing edge exposes
// (terrain, level). A missing key returns the empty set, never an error:
// an index entry that's missing for a terrain/level a live state claims to
// expose is a build-time bug that surfaces as an inevitable contradiction
// during propagation, not a panic.
func (idx *Index) Candidates(t terrain.EdgeTerrain_e, d direction.Direction_e, level int) *bitset.Set {
	key := edgeKey{Terrain: t, Dir: d, Level: level}
	if set, ok := idx.cache.Get(key); ok {
		return set
	}
	set, ok := idx.byEdge[key]
	if !ok {
		set = bitset.New(len(idx.states))
	}
	idx.cache.Add(key, set)
	return set
}

// CandidatesAnyLevel unions Candidates(t, d, level) across every legal
// level. Used by the solver's propagate step when grass_spans_levels is
// enabled and t is terrain.Grass.
func (idx *Index) CandidatesAnyLevel(t terrain.EdgeTerrain_e, d direction.Direction_e) *bitset.Set {
	union := bitset.New(len(idx.states))
	for level := 0; level <= idx.maxLevel; level++ {
		union.UnionInPlace(idx.Candidates(t, d, level))
	}
	return union
}

// StateEdge returns the (terrain, edge_level) state id exposes in direction
// d.
func (idx *Index) StateEdge(id int, d direction.Direction_e) (terrain.EdgeTerrain_e, int) {
	e := idx.stateEdges[id][d]
	return e.Terrain, e.Level
}

// State returns the state identified by a dense id.
func (idx *Index) State(id int) tiles.State {
	return idx.states[id]
}

// StateID returns the dense id for a (type, rotation, level) triple, if it
// is part of this index's universe.
func (idx *Index) StateID(s tiles.State) (int, bool) {
	id, ok := idx.stateIndex[s]
	return id, ok
}

// NumStates returns the size of this index's state universe.
func (idx *Index) NumStates() int {
	return len(idx.states)
}

// MaxLevel returns the level ceiling this index was built for.
func (idx *Index) MaxLevel() int {
	return idx.maxLevel
}

// Library returns the tile library this index was built from.
func (idx *Index) Library() *tiles.Library {
	return idx.lib
}
