// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package main implements hexwfctrace, a one-off utility that replays a
// stored collapse trace and prints it as newline-delimited JSON for an
// external visualizer to consume. It performs no rendering itself.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/oddrow/hexwfc/internal/store"
)

func main() {
	var dbPath, runID string
	flag.StringVar(&dbPath, "store", "hexwfc.db", "path to the run-history database")
	flag.StringVar(&runID, "run", "", "run id to replay")
	flag.Parse()

	if runID == "" {
		log.Fatal("hexwfctrace: -run is required")
	}

	s, err := store.OpenStore(context.Background(), dbPath)
	if err != nil {
		log.Fatalf("hexwfctrace: %v\n", err)
	}
	defer s.Close()

	trace, err := s.LoadTrace(runID)
	if err != nil {
		log.Fatalf("hexwfctrace: %v\n", err)
	}

	enc := json.NewEncoder(os.Stdout)
	for seq, ev := range trace {
		line := struct {
			Seq      int `json:"seq"`
			X        int `json:"x"`
			Z        int `json:"z"`
			Type     int `json:"type"`
			Rotation int `json:"rotation"`
			Level    int `json:"level"`
		}{Seq: seq, X: ev.X, Z: ev.Z, Type: int(ev.Type), Rotation: ev.Rotation, Level: ev.Level}
		if err := enc.Encode(line); err != nil {
			log.Fatalf("hexwfctrace: %v\n", err)
		}
	}
	fmt.Fprintf(os.Stderr, "hexwfctrace: replayed %d events for run %s\n", len(trace), runID)
}
