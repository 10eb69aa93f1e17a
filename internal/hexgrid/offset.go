// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package hexgrid

import (
	"github.com/oddrow/hexwfc/internal/direction"
	"github.com/oddrow/hexwfc/internal/terrain"
)

// Cell identifies a position on the grid in odd-row offset coordinates.
// X increases to the right, Z increases downward.
type Cell struct {
	X, Z int
}

// vector is a (dx, dz) neighbour offset.
type vector [2]int

// EvenRowVectors gives the neighbour offset for each direction when the
// starting cell's row (Z) is even.
var EvenRowVectors = map[direction.Direction_e]vector{
	direction.NE: {+0, -1},
	direction.E:  {+1, +0},
	direction.SE: {+0, +1},
	direction.SW: {-1, +1},
	direction.W:  {-1, +0},
	direction.NW: {-1, -1},
}

// OddRowVectors gives the neighbour offset for each direction when the
// starting cell's row (Z) is odd.
var OddRowVectors = map[direction.Direction_e]vector{
	direction.NE: {+1, -1},
	direction.E:  {+1, +0},
	direction.SE: {+1, +1},
	direction.SW: {+0, +1},
	direction.W:  {-1, +0},
	direction.NW: {+0, -1},
}

// NeighbourOffset returns the (dx, dz) displacement to the neighbour of
// (x, z) in direction d, chosen from the fixed 2x6 table by row parity.
func NeighbourOffset(x, z int, d direction.Direction_e) (dx, dz int) {
	var v vector
	if z&1 == 0 {
		v = EvenRowVectors[d]
	} else {
		v = OddRowVectors[d]
	}
	return v[0], v[1]
}

// Add returns the neighbour of c in direction d.
func (c Cell) Add(d direction.Direction_e) Cell {
	dx, dz := NeighbourOffset(c.X, c.Z, d)
	return Cell{X: c.X + dx, Z: c.Z + dz}
}

// ReturnDirection computes the direction d' such that stepping from (x, z)
// by d, then from the neighbour by d', lands back on (x, z).
//
// It is computed by simulation rather than assumed to be the geometric
// opposite: the neighbour's own vector table is keyed by its own row
// parity, not the source cell's. With the two tables above the result
// equals d.Opposite() for every cell and direction.
func ReturnDirection(x, z int, d direction.Direction_e) direction.Direction_e {
	dx, dz := NeighbourOffset(x, z, d)
	nx, nz := x+dx, z+dz
	for _, dp := range direction.All {
		ndx, ndz := NeighbourOffset(nx, nz, dp)
		if ndx == -dx && ndz == -dz {
			return dp
		}
	}
	panic("hexgrid: no return direction found; offset table is malformed")
}

// RotateEdges rotates an edge map r positions clockwise: for each i in
// 0..5, edges'[dir[(i+r) mod 6]] = edges[dir[i]].
func RotateEdges(edges [direction.NumDirections]terrain.EdgeTerrain_e, r int) [direction.NumDirections]terrain.EdgeTerrain_e {
	var out [direction.NumDirections]terrain.EdgeTerrain_e
	for i := 0; i < direction.NumDirections; i++ {
		j := (i + r) % direction.NumDirections
		if j < 0 {
			j += direction.NumDirections
		}
		out[j] = edges[i]
	}
	return out
}

// RotateHighEdges rotates a high-edge membership set the same way as
// RotateEdges.
func RotateHighEdges(highEdges [direction.NumDirections]bool, r int) [direction.NumDirections]bool {
	var out [direction.NumDirections]bool
	for i := 0; i < direction.NumDirections; i++ {
		j := (i + r) % direction.NumDirections
		if j < 0 {
			j += direction.NumDirections
		}
		out[j] = highEdges[i]
	}
	return out
}
