// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package wfc

import (
	"sort"

	"github.com/oddrow/hexwfc/internal/bitset"
	"github.com/oddrow/hexwfc/internal/terrain"
)

type edgeSeen struct {
	terrain terrain.EdgeTerrain_e
	level   int
}

// propagate drains the propagation stack, narrowing each popped cell's
// neighbours to the states its own possibility set still allows. Returns
// false and records lastContradiction the instant any cell's possibility
// set empties.
func (s *Solver) propagate() bool {
	for len(s.stack) > 0 {
		top := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		x, z := top.x, top.z

		c := s.g.at(x, z)
		for _, nd := range s.g.neighbours[s.g.index(x, z)] {
			nc := s.g.at(nd.nx, nd.nz)
			if nc.collapsed {
				continue
			}

			allowed := bitset.New(s.index.NumStates())
			seen := make(map[edgeSeen]bool)
			c.possibilities.Each(func(id int) {
				t, lvl := s.index.StateEdge(id, nd.dir)
				key := edgeSeen{terrain: t, level: lvl}
				if seen[key] {
					return
				}
				seen[key] = true
				if s.opts.GrassSpansLevels && t == terrain.Grass {
					allowed.UnionInPlace(s.index.CandidatesAnyLevel(t, nd.returnDir))
				} else {
					allowed.UnionInPlace(s.index.Candidates(t, nd.returnDir, lvl))
				}
			})

			if nc.possibilities.SubsetOf(allowed) {
				continue
			}

			nc.possibilities.IntersectInPlace(allowed)
			if nc.possibilities.IsEmpty() {
				contradiction := &Contradiction{
					FailedX: nd.nx, FailedZ: nd.nz,
					SourceX: x, SourceZ: z,
					Direction: nd.dir,
				}
				if c.collapsed {
					st := s.index.State(c.chosen)
					contradiction.SourceState = &st
				}
				for key := range seen {
					contradiction.AllowedEdges = append(contradiction.AllowedEdges,
						EdgeExposure{Terrain: key.terrain, Level: key.level})
				}
				sort.Slice(contradiction.AllowedEdges, func(i, j int) bool {
					a, b := contradiction.AllowedEdges[i], contradiction.AllowedEdges[j]
					if a.Terrain != b.Terrain {
						return a.Terrain < b.Terrain
					}
					return a.Level < b.Level
				})
				s.lastContradiction = contradiction
				return false
			}
			s.push(nd.nx, nd.nz)
		}
	}
	return true
}
