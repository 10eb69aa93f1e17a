// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package wfc_test

import (
	"testing"

	"github.com/oddrow/hexwfc/internal/adjacency"
	"github.com/oddrow/hexwfc/internal/direction"
	"github.com/oddrow/hexwfc/internal/hexgrid"
	"github.com/oddrow/hexwfc/internal/terrain"
	"github.com/oddrow/hexwfc/internal/tiles"
	"github.com/oddrow/hexwfc/internal/wfc"
)

func seedVal(v uint32) *uint32 { return &v }

func buildL0(t *testing.T) *adjacency.Index {
	t.Helper()
	lib, err := tiles.ExampleLibraryL0()
	if err != nil {
		t.Fatalf("ExampleLibraryL0: %v", err)
	}
	idx, err := adjacency.Build(lib, lib.Types(), 0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return idx
}

func buildL1(t *testing.T) *adjacency.Index {
	t.Helper()
	lib, err := tiles.ExampleLibraryL1()
	if err != nil {
		t.Fatalf("ExampleLibraryL1: %v", err)
	}
	idx, err := adjacency.Build(lib, lib.Types(), 1)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return idx
}

// S1 — all grass, trivial.
func TestSolveAllGrassTrivial(t *testing.T) {
	idx := buildL0(t)
	opts := wfc.DefaultOptions()
	opts.Seed = seedVal(1)
	opts.MaxRestarts = 0
	s, err := wfc.New(3, 3, idx, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	res := s.Solve(nil)
	if !res.Success() {
		t.Fatalf("Solve: expected success, got failure: %+v", res.LastContradiction)
	}
	if len(res.Placements) != 9 {
		t.Fatalf("len(Placements) = %d, want 9", len(res.Placements))
	}
	for _, p := range res.Placements {
		if p.Type != tiles.Grass {
			t.Errorf("placement %+v: want type GRASS", p)
		}
		if p.Rotation < 0 || p.Rotation > 5 {
			t.Errorf("placement %+v: rotation out of range", p)
		}
	}
	if len(res.CollapseOrder) != 9 {
		t.Fatalf("len(CollapseOrder) = %d, want 9", len(res.CollapseOrder))
	}
}

// S2 — road continuity from a seed.
func TestSolveRoadContinuityFromSeed(t *testing.T) {
	idx := buildL0(t)
	opts := wfc.DefaultOptions()
	opts.Seed = seedVal(42)
	s, err := wfc.New(5, 1, idx, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	seeds := []wfc.Seed{{X: 0, Z: 0, Type: tiles.RoadA, Rotation: 0, Level: 0}}
	res := s.Solve(seeds)
	if !res.Success() {
		t.Fatalf("Solve: expected success, got failure: %+v", res.LastContradiction)
	}
	byPos := make(map[[2]int]wfc.Placement, len(res.Placements))
	for _, p := range res.Placements {
		byPos[[2]int{p.GridX, p.GridZ}] = p
	}
	for x := 0; x < 5; x++ {
		p, ok := byPos[[2]int{x, 0}]
		if !ok {
			t.Fatalf("missing placement at x=%d", x)
		}
		if p.Type != tiles.RoadA || p.Rotation != 0 {
			t.Errorf("placement at x=%d = %+v, want ROAD_A rotation 0", x, p)
		}
	}
}

// S3 — seed contradiction.
func TestSolveSeedContradiction(t *testing.T) {
	idx := buildL0(t)
	opts := wfc.DefaultOptions()
	s, err := wfc.New(2, 1, idx, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	seeds := []wfc.Seed{
		{X: 0, Z: 0, Type: tiles.RoadA, Rotation: 0, Level: 0},
		{X: 1, Z: 0, Type: tiles.Grass, Rotation: 0, Level: 0},
	}
	res := s.Solve(seeds)
	if res.Success() {
		t.Fatalf("Solve: expected failure, got success")
	}
	if res.LastContradiction == nil {
		t.Fatalf("LastContradiction is nil")
	}
	if res.LastContradiction.FailedX != 1 {
		t.Errorf("LastContradiction.FailedX = %d, want 1", res.LastContradiction.FailedX)
	}
	if res.RestartCount != 0 {
		t.Errorf("RestartCount = %d, want 0", res.RestartCount)
	}
}

// S5 — determinism: two runs of S2 with the same seed agree byte-for-byte.
func TestSolveDeterminism(t *testing.T) {
	run := func() *wfc.Result {
		idx := buildL0(t)
		opts := wfc.DefaultOptions()
		opts.Seed = seedVal(42)
		s, err := wfc.New(5, 1, idx, opts)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		seeds := []wfc.Seed{{X: 0, Z: 0, Type: tiles.RoadA, Rotation: 0, Level: 0}}
		return s.Solve(seeds)
	}
	a, b := run(), run()
	if !a.Success() || !b.Success() {
		t.Fatalf("expected both runs to succeed")
	}
	if len(a.Placements) != len(b.Placements) {
		t.Fatalf("placement count differs")
	}
	for i := range a.Placements {
		if a.Placements[i] != b.Placements[i] {
			t.Fatalf("placement %d differs: %+v != %+v", i, a.Placements[i], b.Placements[i])
		}
	}
	if len(a.CollapseOrder) != len(b.CollapseOrder) {
		t.Fatalf("collapse order length differs")
	}
	for i := range a.CollapseOrder {
		if a.CollapseOrder[i] != b.CollapseOrder[i] {
			t.Fatalf("collapse event %d differs: %+v != %+v", i, a.CollapseOrder[i], b.CollapseOrder[i])
		}
	}
	if a.RestartCount != b.RestartCount {
		t.Fatalf("restart count differs: %d != %d", a.RestartCount, b.RestartCount)
	}
}

// S6 — leveled library: an eastern neighbour of a level-1 GRASS seed is
// never plain GRASS at level 0.
func TestSolveLeveledLibrary(t *testing.T) {
	idx := buildL1(t)
	opts := wfc.DefaultOptions()
	opts.Seed = seedVal(7)
	s, err := wfc.New(2, 1, idx, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	seeds := []wfc.Seed{{X: 0, Z: 0, Type: tiles.Grass, Rotation: 0, Level: 1}}
	res := s.Solve(seeds)
	if !res.Success() {
		t.Fatalf("Solve: expected success, got failure: %+v", res.LastContradiction)
	}
	var east *wfc.Placement
	for i, p := range res.Placements {
		if p.GridX == 1 && p.GridZ == 0 {
			east = &res.Placements[i]
		}
	}
	if east == nil {
		t.Fatalf("no placement at (1,0)")
	}
	if east.Type == tiles.Grass && east.Level == 0 {
		t.Errorf("eastern neighbour is GRASS at level 0, which violates the level-1 seed's edge")
	}
}

func TestSolveEmptyTileSetRejected(t *testing.T) {
	idx := buildL0(t)
	opts := wfc.DefaultOptions()
	opts.TileTypes = []tiles.TileType{9999}
	if _, err := wfc.New(3, 3, idx, opts); err == nil {
		t.Fatalf("New with an unknown tile type: want error, got nil")
	}
}

func TestSolveInvalidDimensionsRejected(t *testing.T) {
	idx := buildL0(t)
	if _, err := wfc.New(0, 3, idx, wfc.DefaultOptions()); err == nil {
		t.Fatalf("New with width=0: want error, got nil")
	}
}

// Property 1 — edge soundness: every pair of in-grid neighbouring
// placements agrees on (terrain, edge_level) across their shared edge.
func TestEdgeSoundness(t *testing.T) {
	lib, err := tiles.ExampleLibraryL1()
	if err != nil {
		t.Fatalf("ExampleLibraryL1: %v", err)
	}
	idx, err := adjacency.Build(lib, lib.Types(), 1)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for _, seed := range []uint32{1, 2, 3, 4, 5} {
		opts := wfc.DefaultOptions()
		opts.Seed = seedVal(seed)
		s, err := wfc.New(6, 6, idx, opts)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		res := s.Solve(nil)
		if !res.Success() {
			t.Fatalf("seed %d: Solve failed: %+v", seed, res.LastContradiction)
		}

		byPos := make(map[[2]int]wfc.Placement, len(res.Placements))
		for _, p := range res.Placements {
			byPos[[2]int{p.GridX, p.GridZ}] = p
		}

		for _, p := range res.Placements {
			st := tiles.State{Type: p.Type, Rotation: p.Rotation, Level: p.Level}
			for _, d := range direction.All {
				dx, dz := hexgrid.NeighbourOffset(p.GridX, p.GridZ, d)
				nx, nz := p.GridX+dx, p.GridZ+dz
				np, ok := byPos[[2]int{nx, nz}]
				if !ok {
					continue
				}
				aTerrain, aLevel, err := st.Edge(lib, d)
				if err != nil {
					t.Fatalf("Edge: %v", err)
				}
				rd := hexgrid.ReturnDirection(p.GridX, p.GridZ, d)
				nst := tiles.State{Type: np.Type, Rotation: np.Rotation, Level: np.Level}
				bTerrain, bLevel, err := nst.Edge(lib, rd)
				if err != nil {
					t.Fatalf("Edge: %v", err)
				}
				if aTerrain != bTerrain || aLevel != bLevel {
					t.Errorf("seed %d: edge mismatch between (%d,%d) and (%d,%d): (%s,%d) vs (%s,%d)",
						seed, p.GridX, p.GridZ, nx, nz, aTerrain, aLevel, bTerrain, bLevel)
				}
			}
		}
	}
}

// buildSawtooth builds an index over a single slope tile whose high edges
// alternate around the hex (E, SW, NW). A parity argument over any three
// mutually adjacent cells shows no consistent tiling exists, so every
// seedless run contradicts, making it the restart-cap fixture.
func buildSawtooth(t *testing.T) *adjacency.Index {
	t.Helper()
	var edges [direction.NumDirections]terrain.EdgeTerrain_e
	for _, d := range direction.All {
		edges[d] = terrain.Grass
	}
	var high [direction.NumDirections]bool
	high[direction.E] = true
	high[direction.SW] = true
	high[direction.NW] = true
	lib, err := tiles.NewLibrary(&tiles.Prototype{
		Type: 1, Name: "SAWTOOTH", Edges: edges, Weight: 1,
		HighEdges: high, LevelIncrement: 1,
	})
	if err != nil {
		t.Fatalf("NewLibrary: %v", err)
	}
	idx, err := adjacency.Build(lib, lib.Types(), 2)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return idx
}

// S4 — restart cap: every run over the sawtooth library contradicts, so
// with max_restarts=0 the first contradiction ends the solve.
func TestSolveRestartCap(t *testing.T) {
	idx := buildSawtooth(t)
	opts := wfc.DefaultOptions()
	opts.Seed = seedVal(1)
	opts.MaxRestarts = 0
	s, err := wfc.New(6, 6, idx, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	res := s.Solve(nil)
	if res.Success() {
		t.Fatalf("Solve: expected failure on an unsatisfiable library")
	}
	if res.RestartCount != 0 {
		t.Errorf("RestartCount = %d, want 0", res.RestartCount)
	}
	if res.LastContradiction == nil {
		t.Fatalf("LastContradiction is nil")
	}
	if res.LastContradiction.Seeded {
		t.Errorf("contradiction marked seeded on a seedless run")
	}
	if len(res.CollapseOrder) == 0 {
		t.Errorf("failure result should still expose the collapse order")
	}
}

// Property 6 — restart bound: the solver consumes exactly max_restarts
// restarts before giving up on an unsatisfiable library.
func TestSolveRestartBound(t *testing.T) {
	idx := buildSawtooth(t)
	opts := wfc.DefaultOptions()
	opts.Seed = seedVal(1)
	opts.MaxRestarts = 3
	s, err := wfc.New(6, 6, idx, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	res := s.Solve(nil)
	if res.Success() {
		t.Fatalf("Solve: expected failure on an unsatisfiable library")
	}
	if res.RestartCount != 3 {
		t.Errorf("RestartCount = %d, want 3", res.RestartCount)
	}
}

// Property 5 — weight bias: on an unconstrained single cell, ROAD_A should
// be chosen in proportion to its share of the total state weight
// (6 road states at weight 10 against 6 grass states at weight 100).
func TestWeightBias(t *testing.T) {
	idx := buildL0(t)
	const runs = 2000
	roads := 0
	for i := 0; i < runs; i++ {
		opts := wfc.DefaultOptions()
		opts.Seed = seedVal(uint32(i))
		s, err := wfc.New(1, 1, idx, opts)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		res := s.Solve(nil)
		if !res.Success() {
			t.Fatalf("run %d: Solve failed", i)
		}
		if res.Placements[0].Type == tiles.RoadA {
			roads++
		}
	}
	// expected frequency 60/660 = 1/11; allow a generous band around it.
	freq := float64(roads) / float64(runs)
	if freq < 0.055 || freq > 0.13 {
		t.Errorf("ROAD_A frequency = %.4f, want about %.4f", freq, 1.0/11.0)
	}
}

// The grass_spans_levels option: two flat grass seeds at different levels on
// adjacent cells contradict under strict matching and solve when the option
// relaxes grass edges.
func TestGrassSpansLevels(t *testing.T) {
	seeds := []wfc.Seed{
		{X: 0, Z: 0, Type: tiles.Grass, Rotation: 0, Level: 0},
		{X: 1, Z: 0, Type: tiles.Grass, Rotation: 0, Level: 1},
	}

	t.Run("strict", func(t *testing.T) {
		idx := buildL1(t)
		opts := wfc.DefaultOptions()
		opts.Seed = seedVal(3)
		s, err := wfc.New(2, 1, idx, opts)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		res := s.Solve(seeds)
		if res.Success() {
			t.Fatalf("Solve: expected a seeding contradiction under strict level matching")
		}
		if res.LastContradiction == nil || !res.LastContradiction.Seeded {
			t.Errorf("contradiction should be marked seeded: %+v", res.LastContradiction)
		}
	})

	t.Run("spanning", func(t *testing.T) {
		idx := buildL1(t)
		opts := wfc.DefaultOptions()
		opts.Seed = seedVal(3)
		opts.GrassSpansLevels = true
		s, err := wfc.New(2, 1, idx, opts)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		res := s.Solve(seeds)
		if !res.Success() {
			t.Fatalf("Solve: expected success with grass spanning levels, got %+v", res.LastContradiction)
		}
		for i, want := range seeds {
			p := res.Placements[i]
			if p.Type != want.Type || p.Rotation != want.Rotation || p.Level != want.Level {
				t.Errorf("placement %d = %+v, want the seed %+v honoured", i, p, want)
			}
		}
	})
}

// Out-of-bounds seeds are skipped, logged, and never fail the solve.
func TestSolveOutOfBoundsSeedSkipped(t *testing.T) {
	idx := buildL0(t)
	var logged []string
	opts := wfc.DefaultOptions()
	opts.Seed = seedVal(1)
	opts.TileTypes = []tiles.TileType{tiles.Grass}
	opts.Log = func(message, tag string) { logged = append(logged, tag+": "+message) }
	s, err := wfc.New(2, 2, idx, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	res := s.Solve([]wfc.Seed{{X: 99, Z: 99, Type: tiles.Grass, Rotation: 0, Level: 0}})
	if !res.Success() {
		t.Fatalf("Solve: expected success, got %+v", res.LastContradiction)
	}
	if len(res.CollapseOrder) != 4 {
		t.Errorf("len(CollapseOrder) = %d, want 4 (the skipped seed must not appear)", len(res.CollapseOrder))
	}
	if len(logged) != 1 {
		t.Errorf("want exactly one log line for the skipped seed, got %v", logged)
	}
}
