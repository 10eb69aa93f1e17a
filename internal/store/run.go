// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package store

import (
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/oddrow/hexwfc/internal/tiles"
	"github.com/oddrow/hexwfc/internal/wfc"
)

func tileType(t int) tiles.TileType { return tiles.TileType(t) }

// LibraryDefinition is the JSON shape persisted for a tile library: just
// enough to reconstruct the prototypes that produced a run, without forcing
// the store package to depend on internal/tiles' rotation machinery.
type LibraryDefinition struct {
	Name       string                `json:"name"`
	Prototypes []PrototypeDefinition `json:"prototypes"`
}

type PrototypeDefinition struct {
	Type           int       `json:"type"`
	Name           string    `json:"name"`
	Edges          [6]string `json:"edges"`
	Weight         float64   `json:"weight"`
	HighEdges      [6]bool   `json:"high_edges"`
	LevelIncrement int       `json:"level_increment"`
}

// SaveLibrary inserts a tile library definition, returning its row id.
// Re-saving a library under a name that already exists overwrites the
// stored definition.
func (s *Store) SaveLibrary(def LibraryDefinition) (int64, error) {
	data, err := json.Marshal(def)
	if err != nil {
		return 0, err
	}
	if _, err := s.db.ExecContext(s.ctx, `
		INSERT INTO tile_libraries (name, definition_json) VALUES (?, ?)
		ON CONFLICT (name) DO UPDATE SET definition_json = excluded.definition_json`,
		def.Name, string(data)); err != nil {
		return 0, err
	}
	// LastInsertId is not updated when ON CONFLICT takes the UPDATE branch,
	// so the row id is always looked up by name.
	var id int64
	if err := s.db.QueryRowContext(s.ctx, `SELECT id FROM tile_libraries WHERE name = ?`, def.Name).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// RunInput bundles the inputs of a solve attempt alongside its result, so
// SaveRun can record both the configuration and the outcome in one
// transaction.
type RunInput struct {
	TileLibraryID    int64
	Width, Height    int
	Seed             *int64
	MaxRestarts      int
	MaxLevel         int
	GrassSpansLevels bool
}

// SaveRun persists one solve attempt's configuration, outcome, placements,
// and ordered collapse trace in a single transaction, returning a freshly
// minted run id.
func (s *Store) SaveRun(in RunInput, result *wfc.Result) (runID string, err error) {
	runID = uuid.NewString()

	tx, err := s.db.BeginTx(s.ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	status := "ok"
	var contradictionJSON sql.NullString
	if !result.Success() {
		status = "failed"
	}
	if result.LastContradiction != nil {
		data, mErr := json.Marshal(result.LastContradiction)
		if mErr != nil {
			return "", mErr
		}
		contradictionJSON = sql.NullString{String: string(data), Valid: true}
	}

	_, err = tx.ExecContext(s.ctx, `
		INSERT INTO runs (id, tile_library_id, width, height, seed, max_restarts,
		                   max_level, grass_spans_levels, restart_count, status,
		                   last_contradiction_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, in.TileLibraryID, in.Width, in.Height, nullableInt64(in.Seed), in.MaxRestarts,
		in.MaxLevel, boolToInt(in.GrassSpansLevels), result.RestartCount, status, contradictionJSON)
	if err != nil {
		return "", err
	}

	for _, p := range result.Placements {
		if _, err = tx.ExecContext(s.ctx, `
			INSERT INTO placements (run_id, grid_x, grid_z, type, rotation, level)
			VALUES (?, ?, ?, ?, ?, ?)`,
			runID, p.GridX, p.GridZ, int(p.Type), p.Rotation, p.Level); err != nil {
			return "", err
		}
	}

	for seq, ev := range result.CollapseOrder {
		if _, err = tx.ExecContext(s.ctx, `
			INSERT INTO collapse_trace (run_id, seq, grid_x, grid_z, type, rotation, level)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			runID, seq, ev.X, ev.Z, int(ev.Type), ev.Rotation, ev.Level); err != nil {
			return "", err
		}
	}

	if err = tx.Commit(); err != nil {
		return "", err
	}
	return runID, nil
}

// LoadTrace returns the ordered collapse trace for a stored run, in
// sequence order. Returns ErrRunNotFound if no run with that id exists.
func (s *Store) LoadTrace(runID string) ([]wfc.CollapseEvent, error) {
	if _, err := s.runExists(runID); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(s.ctx, `
		SELECT grid_x, grid_z, type, rotation, level FROM collapse_trace
		WHERE run_id = ? ORDER BY seq ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trace []wfc.CollapseEvent
	for rows.Next() {
		var ev wfc.CollapseEvent
		var t int
		if err := rows.Scan(&ev.X, &ev.Z, &t, &ev.Rotation, &ev.Level); err != nil {
			return nil, err
		}
		ev.Type = tileType(t)
		trace = append(trace, ev)
	}
	return trace, rows.Err()
}

// LoadPlacements returns every placement for a stored run, in grid row-major
// order.
func (s *Store) LoadPlacements(runID string) ([]wfc.Placement, error) {
	if _, err := s.runExists(runID); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(s.ctx, `
		SELECT grid_x, grid_z, type, rotation, level FROM placements
		WHERE run_id = ? ORDER BY grid_z ASC, grid_x ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var placements []wfc.Placement
	for rows.Next() {
		var p wfc.Placement
		var t int
		if err := rows.Scan(&p.GridX, &p.GridZ, &t, &p.Rotation, &p.Level); err != nil {
			return nil, err
		}
		p.Type = tileType(t)
		placements = append(placements, p)
	}
	return placements, rows.Err()
}

func (s *Store) runExists(runID string) (bool, error) {
	var exists int
	err := s.db.QueryRowContext(s.ctx, `SELECT 1 FROM runs WHERE id = ?`, runID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return false, ErrRunNotFound
	} else if err != nil {
		return false, err
	}
	return true, nil
}

// RunSummary is the one-line-per-run shape returned by ListRuns.
type RunSummary struct {
	ID           string
	Width        int
	Height       int
	RestartCount int
	Status       string
	CreatedAt    string
}

// ListRuns returns every stored run, most recent first.
func (s *Store) ListRuns() ([]RunSummary, error) {
	rows, err := s.db.QueryContext(s.ctx, `
		SELECT id, width, height, restart_count, status, created_at
		FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.ID, &r.Width, &r.Height, &r.RestartCount, &r.Status, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func nullableInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
