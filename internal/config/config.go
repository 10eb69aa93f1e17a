// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package config

import (
	"encoding/json"
	"errors"
	"os"
	"reflect"

	"github.com/oddrow/hexwfc/cerrs"
)

// Config is the solver's run configuration, unmarshalled from a single flat
// JSON document.
type Config struct {
	Solver Solver_t `json:"Solver"`
	Store  Store_t  `json:"Store"`
	Log    Log_t    `json:"Log"`
}

type Solver_t struct {
	Seed             *int64             `json:"Seed,omitempty"`
	MaxRestarts      int                `json:"MaxRestarts,omitempty"`
	MaxLevel         int                `json:"MaxLevel,omitempty"`
	GrassSpansLevels bool               `json:"GrassSpansLevels,omitempty"`
	Weights          map[string]float64 `json:"Weights,omitempty"`
	TileTypes        []string           `json:"TileTypes,omitempty"`
}

type Store_t struct {
	Path string `json:"Path,omitempty"`
}

type Log_t struct {
	Tag string `json:"Tag,omitempty"`
}

// Default returns the documented zero-configuration defaults: no seed
// override (non-deterministic), 10 restarts, max level 0, strict
// (non-spanning) grass levels, every tile type in the library, the
// "hexwfc.db" store path, and the "hexwfc" log tag.
func Default() *Config {
	return &Config{
		Solver: Solver_t{
			MaxRestarts: 10,
			MaxLevel:    0,
		},
		Store: Store_t{
			Path: "hexwfc.db",
		},
		Log: Log_t{
			Tag: "hexwfc",
		},
	}
}

// Load reads a JSON configuration file, overlaying its non-zero fields onto
// Default(). A missing file is not an error unless mustExist is true; it is
// the tolerated "no config yet" case.
func Load(name string, mustExist bool) (*Config, error) {
	cfg := Default()

	sb, err := os.Stat(name)
	if errors.Is(err, os.ErrNotExist) {
		if mustExist {
			return nil, cerrs.ErrInvalidPath
		}
		return cfg, nil
	} else if err != nil {
		return nil, err
	}
	if sb.IsDir() {
		return nil, cerrs.ErrNotDirectory
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	var tmp Config
	if err := json.Unmarshal(data, &tmp); err != nil {
		return nil, err
	}

	copyNonZeroFields(&tmp, cfg)
	return cfg, nil
}

// Validate reports the first out-of-range field it finds, as a cerrs
// constant.
func (c *Config) Validate() error {
	if c.Solver.MaxRestarts < 0 {
		return cerrs.ErrInvalidConfiguration
	}
	if c.Solver.MaxLevel < 0 {
		return cerrs.ErrInvalidConfiguration
	}
	if c.Solver.TileTypes != nil && len(c.Solver.TileTypes) == 0 {
		return cerrs.ErrEmptyTileSet
	}
	return nil
}

// copyNonZeroFields recursively copies non-zero fields from src to dst
// using reflection, so a partial config file only overrides what it sets.
func copyNonZeroFields(src, dst interface{}) {
	srcVal := reflect.ValueOf(src)
	dstVal := reflect.ValueOf(dst)

	if srcVal.Kind() == reflect.Ptr {
		srcVal = srcVal.Elem()
	}
	if dstVal.Kind() == reflect.Ptr {
		dstVal = dstVal.Elem()
	}
	if srcVal.Kind() != reflect.Struct || dstVal.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < srcVal.NumField(); i++ {
		srcField := srcVal.Field(i)
		dstField := dstVal.Field(i)
		if !srcField.CanInterface() || !dstField.CanSet() {
			continue
		}
		if srcField.IsZero() {
			continue
		}
		switch srcField.Kind() {
		case reflect.Struct:
			copyNonZeroFields(srcField.Interface(), dstField.Addr().Interface())
		default:
			dstField.Set(srcField)
		}
	}
}
