// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package tiles implements the tile prototype library: the static,
// rotation-0 definition of each tile type, and the (type, rotation, level)
// state triple the solver actually places.
package tiles
