// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package store

import "github.com/oddrow/hexwfc/cerrs"

// re-exported so callers that only import store don't also need cerrs for
// the handful of errors this package can return.
const (
	ErrDatabaseExists      = cerrs.ErrDatabaseExists
	ErrInvalidPath         = cerrs.ErrInvalidPath
	ErrRunNotFound         = cerrs.ErrRunNotFound
	ErrForeignKeysDisabled = cerrs.ErrForeignKeysDisabled
)
