// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/oddrow/hexwfc/cerrs"
	"github.com/oddrow/hexwfc/internal/adjacency"
	"github.com/oddrow/hexwfc/internal/direction"
	"github.com/oddrow/hexwfc/internal/store"
	"github.com/oddrow/hexwfc/internal/terrain"
	"github.com/oddrow/hexwfc/internal/tiles"
	"github.com/oddrow/hexwfc/internal/wfc"
)

type solveArgs_t struct {
	library          string
	seeds            string
	width            int
	height           int
	seed             int64
	deterministic    bool
	maxRestarts      int
	maxLevel         int
	grassSpansLevels bool
	store            string
}

var argsSolve solveArgs_t

var cmdSolve = &cobra.Command{
	Use:   "solve",
	Short: "Solve a hex grid from a tile library",
	Long:  `Collapse a hexagonal grid to a single consistent tiling and print the resulting placements.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, libDef, err := loadLibrary(argsSolve.library)
		if err != nil {
			return err
		}
		seeds, err := loadSeeds(argsSolve.seeds)
		if err != nil {
			return err
		}

		idx, err := adjacency.Build(lib, lib.Types(), argsSolve.maxLevel)
		if err != nil {
			return err
		}

		opts := wfc.DefaultOptions()
		if len(globalConfig.Solver.Weights) > 0 {
			opts.Weights = make(map[tiles.TileType]float64, len(globalConfig.Solver.Weights))
			for name, w := range globalConfig.Solver.Weights {
				tt, ok := lib.TypeByName(name)
				if !ok {
					return fmt.Errorf("solve: weights: %w: %q", cerrs.ErrUnknownTileType, name)
				}
				opts.Weights[tt] = w
			}
		}
		for _, name := range globalConfig.Solver.TileTypes {
			tt, ok := lib.TypeByName(name)
			if !ok {
				return fmt.Errorf("solve: tile types: %w: %q", cerrs.ErrUnknownTileType, name)
			}
			opts.TileTypes = append(opts.TileTypes, tt)
		}
		opts.MaxRestarts = argsSolve.maxRestarts
		ml := argsSolve.maxLevel
		opts.MaxLevel = &ml
		opts.GrassSpansLevels = argsSolve.grassSpansLevels
		opts.Log = func(message, tag string) { log.Printf("[%s] %s\n", tag, message) }
		if argsSolve.seed != 0 || argsSolve.deterministic {
			s := uint32(argsSolve.seed)
			opts.Seed = &s
		}

		solver, err := wfc.New(argsSolve.width, argsSolve.height, idx, opts)
		if err != nil {
			return err
		}
		result := solver.Solve(seeds)

		color := isatty.IsTerminal(os.Stdout.Fd())
		printResult(result, color)

		if !result.Success() {
			if result.LastContradiction != nil && result.LastContradiction.Seeded {
				return cerrs.ErrSeedingContradiction
			}
			return cerrs.ErrRestartsExhausted
		}

		if argsSolve.store != "" {
			if err := persistRun(libDef, argsSolve, result); err != nil {
				log.Printf("[store] failed to record run: %v\n", err)
			}
		}
		return nil
	},
}

func printResult(result *wfc.Result, color bool) {
	if !result.Success() {
		fmt.Printf("solve: failed after %s restarts\n", humanize.Comma(int64(result.RestartCount)))
		if c := result.LastContradiction; c != nil {
			fmt.Printf("last contradiction: cell (%d,%d) from (%d,%d) direction %s (seeded=%v)\n",
				c.FailedX, c.FailedZ, c.SourceX, c.SourceZ, c.Direction, c.Seeded)
		}
		return
	}

	heading := "solve: success"
	if color {
		heading = "\033[32m" + heading + "\033[0m"
	}
	fmt.Printf("%s — %s cells, %s collapses, %s restarts\n", heading,
		humanize.Comma(int64(len(result.Placements))),
		humanize.Comma(int64(len(result.CollapseOrder))),
		humanize.Comma(int64(result.RestartCount)))
	for _, p := range result.Placements {
		fmt.Printf("(%d,%d) type=%d rotation=%d level=%d\n", p.GridX, p.GridZ, p.Type, p.Rotation, p.Level)
	}
}

// loadLibrary resolves --library: a built-in name (L0, L1) or a path to a
// JSON library file in store.LibraryDefinition's shape.
func loadLibrary(name string) (*tiles.Library, store.LibraryDefinition, error) {
	switch name {
	case "L0", "":
		lib, err := tiles.ExampleLibraryL0()
		return lib, libraryToDefinition("L0", lib), err
	case "L1":
		lib, err := tiles.ExampleLibraryL1()
		return lib, libraryToDefinition("L1", lib), err
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, store.LibraryDefinition{}, err
	}
	var def store.LibraryDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, store.LibraryDefinition{}, err
	}
	lib, err := definitionToLibrary(def)
	return lib, def, err
}

func libraryToDefinition(name string, lib *tiles.Library) store.LibraryDefinition {
	def := store.LibraryDefinition{Name: name}
	for _, t := range lib.Types() {
		p := lib.MustGet(t)
		var edges [6]string
		var high [6]bool
		for i, d := range direction.All {
			edges[i] = terrain.EnumToString[p.Edges[d]]
			high[i] = p.HighEdges[d]
		}
		def.Prototypes = append(def.Prototypes, store.PrototypeDefinition{
			Type: int(p.Type), Name: p.Name, Edges: edges, Weight: p.Weight,
			HighEdges: high, LevelIncrement: p.LevelIncrement,
		})
	}
	return def
}

func definitionToLibrary(def store.LibraryDefinition) (*tiles.Library, error) {
	var protos []*tiles.Prototype
	for _, pd := range def.Prototypes {
		var edges [direction.NumDirections]terrain.EdgeTerrain_e
		var high [direction.NumDirections]bool
		for i, d := range direction.All {
			t, ok := terrain.StringToEnum[pd.Edges[i]]
			if !ok {
				return nil, fmt.Errorf("solve: unknown terrain %q", pd.Edges[i])
			}
			edges[d] = t
			high[d] = pd.HighEdges[i]
		}
		protos = append(protos, &tiles.Prototype{
			Type: tiles.TileType(pd.Type), Name: pd.Name, Edges: edges,
			Weight: pd.Weight, HighEdges: high, LevelIncrement: pd.LevelIncrement,
		})
	}
	return tiles.NewLibrary(protos...)
}

func loadSeeds(path string) ([]wfc.Seed, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var seeds []wfc.Seed
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, err
	}
	return seeds, nil
}

func persistRun(def store.LibraryDefinition, args solveArgs_t, result *wfc.Result) error {
	ctx := context.Background()
	s, err := store.OpenStore(ctx, args.store)
	if err != nil {
		s, err = store.CreateStore(ctx, args.store, false)
		if err != nil {
			return err
		}
	}
	defer s.Close()

	libID, err := s.SaveLibrary(def)
	if err != nil {
		return err
	}

	var seedPtr *int64
	if args.seed != 0 || args.deterministic {
		seedPtr = &args.seed
	}
	runID, err := s.SaveRun(store.RunInput{
		TileLibraryID: libID, Width: args.width, Height: args.height, Seed: seedPtr,
		MaxRestarts: args.maxRestarts, MaxLevel: args.maxLevel, GrassSpansLevels: args.grassSpansLevels,
	}, result)
	if err != nil {
		return err
	}
	log.Printf("[store] recorded run %s\n", runID)
	return nil
}
