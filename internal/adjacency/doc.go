// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package adjacency builds the immutable adjacency index from a tile
// library: which (type, rotation, level) states exist, what each exposes on
// each of its six edges, and — the query the propagation hot path actually
// runs — which states may sit at a given direction across a given
// (terrain, edge_level) pair.
package adjacency
