// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package config loads the solver's run configuration from a flat JSON
// document, applying defaults for anything the file omits.
package config
