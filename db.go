// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oddrow/hexwfc/internal/store"
)

var argsDb struct {
	store string
	force bool
}

var argsDbDump struct {
	run string
}

var cmdDb = &cobra.Command{
	Use:   "db",
	Short: "Manage the run-history database",
}

var cmdDbCreate = &cobra.Command{
	Use:   "create",
	Short: "Create a new run-history database",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.CreateStore(context.Background(), argsDb.store, argsDb.force)
		if err != nil {
			return err
		}
		defer s.Close()
		fmt.Printf("created %s\n", s.Path())
		return nil
	},
}

var cmdDbDump = &cobra.Command{
	Use:   "dump",
	Short: "List stored runs, or dump one run's placements (not its collapse trace)",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.OpenStore(context.Background(), argsDb.store)
		if err != nil {
			return err
		}
		defer s.Close()

		if argsDbDump.run == "" {
			runs, err := s.ListRuns()
			if err != nil {
				return err
			}
			for _, r := range runs {
				fmt.Printf("%s  %dx%d  restarts=%d  status=%s  %s\n", r.ID, r.Width, r.Height, r.RestartCount, r.Status, r.CreatedAt)
			}
			return nil
		}

		placements, err := s.LoadPlacements(argsDbDump.run)
		if err != nil {
			return err
		}
		for _, p := range placements {
			fmt.Printf("(%d,%d) type=%d rotation=%d level=%d\n", p.GridX, p.GridZ, p.Type, p.Rotation, p.Level)
		}
		return nil
	},
}
