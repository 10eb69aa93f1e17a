// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package wfc

import (
	"github.com/oddrow/hexwfc/internal/bitset"
	"github.com/oddrow/hexwfc/internal/direction"
	"github.com/oddrow/hexwfc/internal/hexgrid"
)

// neighbourDesc is a precomputed neighbour relationship for one cell: the
// direction toward the neighbour, the return direction from the neighbour
// back to this cell, and the neighbour's grid coordinates.
type neighbourDesc struct {
	dir       direction.Direction_e
	returnDir direction.Direction_e
	nx, nz    int
}

// grid is the solver's per-attempt state: one cell per position plus a
// precomputed neighbour table. It is rebuilt on every init() call (including
// restarts); nothing here survives a restart.
type grid struct {
	width, height int
	cells         []cell
	neighbours    [][]neighbourDesc
}

func newGrid(width, height int, initial *bitset.Set, jitter func() float64) *grid {
	g := &grid{
		width:      width,
		height:     height,
		cells:      make([]cell, width*height),
		neighbours: make([][]neighbourDesc, width*height),
	}
	for z := 0; z < height; z++ {
		for x := 0; x < width; x++ {
			i := g.index(x, z)
			g.cells[i] = cell{possibilities: initial.Clone(), jitter: jitter()}
			g.neighbours[i] = computeNeighbours(x, z, width, height)
		}
	}
	return g
}

func computeNeighbours(x, z, width, height int) []neighbourDesc {
	var descs []neighbourDesc
	for _, d := range direction.All {
		dx, dz := hexgrid.NeighbourOffset(x, z, d)
		nx, nz := x+dx, z+dz
		if nx < 0 || nx >= width || nz < 0 || nz >= height {
			continue
		}
		descs = append(descs, neighbourDesc{
			dir:       d,
			returnDir: hexgrid.ReturnDirection(x, z, d),
			nx:        nx,
			nz:        nz,
		})
	}
	return descs
}

func (g *grid) index(x, z int) int {
	return z*g.width + x
}

func (g *grid) inBounds(x, z int) bool {
	return x >= 0 && x < g.width && z >= 0 && z < g.height
}

func (g *grid) at(x, z int) *cell {
	return &g.cells[g.index(x, z)]
}
