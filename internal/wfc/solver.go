// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package wfc

import (
	"fmt"

	"github.com/oddrow/hexwfc/cerrs"
	"github.com/oddrow/hexwfc/internal/adjacency"
	"github.com/oddrow/hexwfc/internal/bitset"
	"github.com/oddrow/hexwfc/internal/rng"
	"github.com/oddrow/hexwfc/internal/tiles"
)

const jitterScale = 1e-3

// Solver owns one solve attempt's exclusive state: the grid, the neighbour
// table, the propagation stack, the RNG, the restart counter, and the
// collapse trace. The adjacency index it reads from is immutable and may be
// shared with other Solver instances.
type Solver struct {
	index  *adjacency.Index
	width  int
	height int
	opts   Options

	rngSrc rng.Source

	allowed *bitset.Set
	weight  []float64

	g                 *grid
	stack             []stackEntry
	trace             []CollapseEvent
	restartCount      int
	lastContradiction *Contradiction
}

type stackEntry struct{ x, z int }

// New constructs a Solver. It validates options and precomputes the
// restricted state universe and per-state weights, but does not allocate
// the grid; that happens inside solve's call to init().
func New(width, height int, index *adjacency.Index, opts Options) (*Solver, error) {
	if width <= 0 || height <= 0 {
		return nil, cerrs.ErrInvalidGridDimensions
	}
	maxLevel := index.MaxLevel()
	if opts.MaxLevel != nil {
		maxLevel = *opts.MaxLevel
	}

	types := opts.TileTypes
	typeSet := make(map[tiles.TileType]bool)
	if len(types) == 0 {
		for _, t := range index.Library().Types() {
			typeSet[t] = true
		}
	} else {
		for _, t := range types {
			typeSet[t] = true
		}
	}

	allowed := bitset.New(index.NumStates())
	weight := make([]float64, index.NumStates())
	for id := 0; id < index.NumStates(); id++ {
		s := index.State(id)
		if !typeSet[s.Type] || s.Level > maxLevel {
			continue
		}
		allowed.Add(id)
		w := opts.Weights[s.Type]
		if w <= 0 {
			if libW, err := index.Library().Weight(s.Type); err == nil {
				w = libW
			} else {
				w = 1
			}
		}
		weight[id] = w
	}
	if allowed.IsEmpty() {
		return nil, cerrs.ErrEmptyTileSet
	}

	var src rng.Source
	if opts.Seed != nil {
		src = rng.NewMulberry32(*opts.Seed)
	} else {
		src = rng.NewNonDeterministic()
	}

	return &Solver{
		index:   index,
		width:   width,
		height:  height,
		opts:    opts,
		rngSrc:  src,
		allowed: allowed,
		weight:  weight,
	}, nil
}

// init (re)allocates the grid and neighbour table and clears the trace and
// propagation stack. Called at the start of Solve and on every restart.
func (s *Solver) init() {
	s.trace = nil
	s.stack = nil
	s.g = newGrid(s.width, s.height, s.allowed, func() float64 {
		return s.rngSrc.Float64() * jitterScale
	})
}

// Solve runs the full solve loop, applying seeds, propagating, and
// repeatedly selecting and collapsing the lowest-entropy cell until every
// cell is collapsed or the restart budget is exhausted.
func (s *Solver) Solve(seeds []Seed) *Result {
	s.restartCount = 0
	s.lastContradiction = nil

attempt:
	for {
		s.init()

		// Seeds are applied one at a time, propagating after each, so that a
		// later seed incompatible with an earlier one is caught here as a
		// seeding contradiction rather than slipping past the collapsed-
		// neighbour skip in propagate.
		for _, sd := range seeds {
			if !s.g.inBounds(sd.X, sd.Z) {
				// tolerated caller error: skip the seed, never fail the solve
				s.opts.logf(fmt.Sprintf("%s: (%d,%d)", cerrs.ErrInvalidSeedCoordinate, sd.X, sd.Z), "seed")
				continue
			}
			c := s.g.at(sd.X, sd.Z)
			if c.collapsed {
				continue
			}
			id, ok := s.index.StateID(tiles.State{Type: sd.Type, Rotation: sd.Rotation, Level: sd.Level})
			if !ok || !c.possibilities.Contains(id) {
				s.lastContradiction = &Contradiction{FailedX: sd.X, FailedZ: sd.Z, SourceX: sd.X, SourceZ: sd.Z, Seeded: true}
				return &Result{CollapseOrder: s.trace, RestartCount: s.restartCount, LastContradiction: s.lastContradiction}
			}
			c.collapseTo(id)
			s.pushTrace(sd.X, sd.Z, id)
			s.push(sd.X, sd.Z)

			if ok := s.propagate(); !ok {
				s.lastContradiction.Seeded = true
				return &Result{CollapseOrder: s.trace, RestartCount: s.restartCount, LastContradiction: s.lastContradiction}
			}
		}

		for {
			x, z, found := s.selectLowestEntropy()
			if !found {
				return &Result{
					Placements:    s.extract(),
					CollapseOrder: s.trace,
					RestartCount:  s.restartCount,
				}
			}
			id := s.weightedCollapse(x, z)
			s.pushTrace(x, z, id)
			s.push(x, z)

			if ok := s.propagate(); !ok {
				if s.restartCount >= s.opts.MaxRestarts {
					return &Result{CollapseOrder: s.trace, RestartCount: s.restartCount, LastContradiction: s.lastContradiction}
				}
				s.restartCount++
				continue attempt
			}
		}
	}
}

func (s *Solver) pushTrace(x, z, stateID int) {
	st := s.index.State(stateID)
	s.trace = append(s.trace, CollapseEvent{X: x, Z: z, Type: st.Type, Rotation: st.Rotation, Level: st.Level})
}

func (s *Solver) push(x, z int) {
	s.stack = append(s.stack, stackEntry{x: x, z: z})
}

// selectLowestEntropy returns the uncollapsed, non-empty cell with the
// lowest entropy() in the grid, or found=false if every cell has collapsed.
func (s *Solver) selectLowestEntropy() (x, z int, found bool) {
	best := -1.0
	bestX, bestZ := -1, -1
	any := false
	for zz := 0; zz < s.height; zz++ {
		for xx := 0; xx < s.width; xx++ {
			c := s.g.at(xx, zz)
			if c.collapsed || c.possibilities.IsEmpty() {
				continue
			}
			e := c.entropy()
			if !any || e < best {
				best = e
				bestX, bestZ = xx, zz
				any = true
			}
		}
	}
	if !any {
		return 0, 0, false
	}
	return bestX, bestZ, true
}

// weightedCollapse picks a state from the cell's possibility set by
// weighted random draw and collapses the cell to it.
func (s *Solver) weightedCollapse(x, z int) int {
	c := s.g.at(x, z)
	var total float64
	c.possibilities.Each(func(id int) { total += s.weight[id] })

	roll := s.rngSrc.Float64() * total
	chosen := -1
	var running float64
	c.possibilities.Each(func(id int) {
		if chosen != -1 {
			return
		}
		running += s.weight[id]
		if running > roll {
			chosen = id
		}
	})
	if chosen == -1 {
		// floating point edge case: roll landed exactly on total. Fall back
		// to the last candidate in iteration order.
		c.possibilities.Each(func(id int) { chosen = id })
	}
	c.collapseTo(chosen)
	return chosen
}

// extract emits one placement per cell in row-major order.
func (s *Solver) extract() []Placement {
	placements := make([]Placement, 0, s.width*s.height)
	for z := 0; z < s.height; z++ {
		for x := 0; x < s.width; x++ {
			c := s.g.at(x, z)
			st := s.index.State(c.chosen)
			placements = append(placements, Placement{GridX: x, GridZ: z, Type: st.Type, Rotation: st.Rotation, Level: st.Level})
		}
	}
	return placements
}
