// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package adjacency_test

import (
	"testing"

	"github.com/oddrow/hexwfc/internal/adjacency"
	"github.com/oddrow/hexwfc/internal/direction"
	"github.com/oddrow/hexwfc/internal/terrain"
	"github.com/oddrow/hexwfc/internal/tiles"
)

func TestBuildRejectsEmptyTileSet(t *testing.T) {
	lib, err := tiles.ExampleLibraryL0()
	if err != nil {
		t.Fatalf("ExampleLibraryL0: %v", err)
	}
	if _, err := adjacency.Build(lib, nil, 0); err == nil {
		t.Fatalf("Build with no types: want error, got nil")
	}
}

// TestConsistency checks the adjacency index's defining property: for every
// state s and direction d, s is recoverable from the Candidates bucket keyed
// by s's own edge(d).
func TestConsistency(t *testing.T) {
	lib, err := tiles.ExampleLibraryL1()
	if err != nil {
		t.Fatalf("ExampleLibraryL1: %v", err)
	}
	idx, err := adjacency.Build(lib, lib.Types(), 1)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for id := 0; id < idx.NumStates(); id++ {
		for _, d := range direction.All {
			tag, level := idx.StateEdge(id, d)
			bucket := idx.Candidates(tag, d, level)
			if !bucket.Contains(id) {
				s := idx.State(id)
				t.Errorf("state %s not present in Candidates(%s, %s, %d) bucket it should belong to", s, tag, d, level)
			}
		}
	}
}

func TestCandidatesMissingKeyIsEmpty(t *testing.T) {
	lib, err := tiles.ExampleLibraryL0()
	if err != nil {
		t.Fatalf("ExampleLibraryL0: %v", err)
	}
	idx, err := adjacency.Build(lib, lib.Types(), 0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	set := idx.Candidates(terrain.River, direction.NE, 99)
	if !set.IsEmpty() {
		t.Errorf("Candidates for an impossible key: want empty set, got %d members", set.Count())
	}
}

func TestCandidatesAnyLevelUnionsAllLevels(t *testing.T) {
	lib, err := tiles.ExampleLibraryL1()
	if err != nil {
		t.Fatalf("ExampleLibraryL1: %v", err)
	}
	idx, err := adjacency.Build(lib, lib.Types(), 1)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	any := idx.CandidatesAnyLevel(terrain.Grass, direction.E)
	atZero := idx.Candidates(terrain.Grass, direction.E, 0)
	atOne := idx.Candidates(terrain.Grass, direction.E, 1)
	if !atZero.SubsetOf(any) || !atOne.SubsetOf(any) {
		t.Errorf("CandidatesAnyLevel should be a superset of every per-level bucket")
	}
}
