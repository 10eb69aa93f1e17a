// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package main implements the hexwfc command line application.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/maloquacious/semver"
	"github.com/spf13/cobra"

	"github.com/oddrow/hexwfc/internal/config"
)

var (
	version = semver.Version{
		Major: 0,
		Minor: 1,
		Patch: 0,
		Build: semver.Commit(),
	}
	globalConfig *config.Config
)

func main() {
	for _, arg := range os.Args {
		if arg == "-version" || arg == "--version" {
			fmt.Printf("%s\n", version.Short())
			return
		} else if arg == "-build-info" || arg == "--build-info" {
			fmt.Printf("%s\n", version.String())
			return
		}
	}
	log.SetFlags(log.Lshortfile | log.Ltime)

	const configFileName = "hexwfc.json"
	mustExist := false
	if sb, err := os.Stat(configFileName); err == nil && sb.Mode().IsRegular() {
		mustExist = true
	}
	cfg, err := config.Load(configFileName, mustExist)
	if err != nil && mustExist {
		log.Printf("[config] %q: %v\n", configFileName, err)
	}

	if err := Execute(cfg); err != nil {
		log.Fatal(err)
	}
}

func Execute(cfg *config.Config) error {
	if cfg == nil {
		globalConfig = config.Default()
	} else {
		globalConfig = cfg
	}
	if err := globalConfig.Validate(); err != nil {
		return err
	}

	cmdRoot.PersistentFlags().BoolVar(&argsRoot.showVersion, "show-version", false, "show version")
	cmdRoot.PersistentFlags().StringVar(&argsRoot.logFile.name, "log-file", "", "set log file")

	cmdRoot.AddCommand(cmdVersion)

	cmdRoot.AddCommand(cmdSolve)
	cmdSolve.Flags().StringVar(&argsSolve.library, "library", "L0", "tile library: built-in name (L0, L1) or path to a JSON library file")
	cmdSolve.Flags().StringVar(&argsSolve.seeds, "seeds", "", "path to a JSON file of seed cells")
	cmdSolve.Flags().IntVar(&argsSolve.width, "width", 8, "grid width")
	cmdSolve.Flags().IntVar(&argsSolve.height, "height", 8, "grid height")
	cmdSolve.Flags().Int64Var(&argsSolve.seed, "seed", 0, "RNG seed; 0 means non-deterministic")
	cmdSolve.Flags().BoolVar(&argsSolve.deterministic, "deterministic", false, "treat --seed as set even when it is 0")
	cmdSolve.Flags().IntVar(&argsSolve.maxRestarts, "max-restarts", globalConfig.Solver.MaxRestarts, "maximum contradiction restarts")
	cmdSolve.Flags().IntVar(&argsSolve.maxLevel, "max-level", globalConfig.Solver.MaxLevel, "maximum instantiated level")
	cmdSolve.Flags().BoolVar(&argsSolve.grassSpansLevels, "grass-spans-levels", globalConfig.Solver.GrassSpansLevels, "relax level matching across grass edges")
	cmdSolve.Flags().StringVar(&argsSolve.store, "store", "", "optional path to a sqlite store to record this run")
	if globalConfig.Solver.Seed != nil {
		argsSolve.seed = *globalConfig.Solver.Seed
		argsSolve.deterministic = true
	}

	cmdRoot.AddCommand(cmdDb)
	cmdDb.PersistentFlags().StringVar(&argsDb.store, "store", globalConfig.Store.Path, "path to the database file")
	cmdDb.AddCommand(cmdDbCreate)
	cmdDbCreate.Flags().BoolVar(&argsDb.force, "force", false, "remove and recreate the database if it exists")
	cmdDb.AddCommand(cmdDbDump)
	cmdDbDump.Flags().StringVar(&argsDbDump.run, "run", "", "run id to dump; defaults to listing every run")

	return cmdRoot.Execute()
}

var argsRoot struct {
	logFile struct {
		name string
		fd   *os.File
	}
	showVersion bool
}

var cmdRoot = &cobra.Command{
	Use:   "hexwfc",
	Short: "Root command for the hex wave function collapse solver",
	Long:  `Generate a consistent tiling of a hexagonal grid from a library of tile prototypes.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if argsRoot.logFile.name != "" {
			fd, err := os.OpenFile(argsRoot.logFile.name, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
			if err != nil {
				return err
			}
			argsRoot.logFile.fd = fd
			log.SetOutput(argsRoot.logFile.fd)
			argsRoot.showVersion = true
		}
		if argsRoot.showVersion {
			log.Printf("version: %s\n", version)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if argsRoot.logFile.fd != nil {
			if err := argsRoot.logFile.fd.Close(); err != nil {
				return err
			}
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}
