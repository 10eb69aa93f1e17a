// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"log"
	"os"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaDDL string

// Store wraps a sqlite connection opened against one database file.
type Store struct {
	path string
	db   *sql.DB
	ctx  context.Context
}

// CreateStore creates a new database file and initializes its schema.
// Returns ErrDatabaseExists if the file is already there, unless force is
// set, in which case the existing file is removed first.
func CreateStore(ctx context.Context, path string, force bool) (*Store, error) {
	if _, err := os.Stat(path); err == nil {
		if !force {
			log.Printf("[store] create: %q: %s\n", path, ErrDatabaseExists)
			return nil, ErrDatabaseExists
		}
		log.Printf("[store] create: removing %s\n", path)
		if err := os.Remove(path); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	log.Printf("[store] create: %s\n", path)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := enableForeignKeys(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(schemaDDL); err != nil {
		_ = db.Close()
		log.Printf("[store] create: failed to initialize schema: %v\n", err)
		return nil, err
	}

	return &Store{path: path, db: db, ctx: ctx}, nil
}

// OpenStore opens an existing database file. Returns an error if the file
// does not exist.
func OpenStore(ctx context.Context, path string) (*Store, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, ErrInvalidPath
	} else if err != nil {
		return nil, err
	}

	log.Printf("[store] open: %s\n", path)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := enableForeignKeys(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{path: path, db: db, ctx: ctx}, nil
}

func enableForeignKeys(db *sql.DB) error {
	rslt, err := db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		log.Printf("[store] foreign keys are disabled\n")
		return ErrForeignKeysDisabled
	} else if rslt == nil {
		return ErrForeignKeysDisabled
	}
	return nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Path returns the filesystem path this store was opened against.
func (s *Store) Path() string {
	return s.path
}
