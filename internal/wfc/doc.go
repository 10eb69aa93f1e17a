// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package wfc implements the hex wave function collapse solver: grid
// construction, seed application, entropy-ordered cell selection, weighted
// collapse, constraint propagation, restart-on-contradiction, and
// placement/trace extraction.
package wfc
