// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package wfc

import (
	"math"

	"github.com/oddrow/hexwfc/internal/bitset"
)

// cell is a single grid position's WFC state: its possibility set, whether
// it has collapsed, and (once collapsed) the chosen state id.
type cell struct {
	possibilities *bitset.Set
	collapsed     bool
	chosen        int
	// jitter is drawn once per cell at init() time so that entropy() is a
	// pure function of the possibility count during propagation; redrawing
	// it on every call would make repeated evaluations of the same cell
	// disagree mid-solve.
	jitter float64
}

// entropy returns +Inf when collapsed; otherwise ln(|possibilities|) plus
// the cell's tie-breaking jitter.
func (c *cell) entropy() float64 {
	if c.collapsed {
		return math.Inf(1)
	}
	n := c.possibilities.Count()
	if n == 0 {
		return math.Inf(1)
	}
	return math.Log(float64(n)) + c.jitter
}

// collapseTo clears possibilities to a single state and marks the cell
// collapsed.
func (c *cell) collapseTo(state int) {
	c.possibilities = bitset.New(c.possibilities.Len())
	c.possibilities.Add(state)
	c.collapsed = true
	c.chosen = state
}
