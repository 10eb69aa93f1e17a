// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package cerrs defines constant error types using a custom Error string type.
// It centralizes the solver's domain-specific failures, such as seeding
// contradictions and exhausted restarts, so callers can compare against them
// with errors.Is. The Error type supports comparison via errors.Is().
package cerrs
