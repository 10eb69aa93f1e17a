// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package store persists tile libraries, solver runs, placements, and
// collapse traces to a sqlite database. It is optional to the solver core:
// nothing in internal/wfc, internal/adjacency, or internal/tiles imports it.
package store
