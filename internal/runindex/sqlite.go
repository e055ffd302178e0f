// Package runindex keeps a queryable history of search runs in SQLite.
package runindex

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Run is one recorded search outcome.
type Run struct {
	ID         int64
	RecordedAt time.Time
	Seed       int64
	Columns    int
	Rows       int
	Walls      int
	Start      int
	End        int
	Heuristic  string
	CostModel  string
	StepBudget int
	State      string
	Ticks      uint64
	Expansions int
	Stale      int
	PathLen    int
	Snapshot   string
}

// SQLiteIndex stores runs in one SQLite file through a single connection.
type SQLiteIndex struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database at path in WAL mode and ensures
// the runs table exists.
func OpenSQLite(path string) (*SQLiteIndex, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteIndex{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	recorded_at TEXT    NOT NULL,
	seed        INTEGER NOT NULL,
	grid_cols   INTEGER NOT NULL,
	grid_rows   INTEGER NOT NULL,
	walls       INTEGER NOT NULL,
	start_idx   INTEGER NOT NULL,
	end_idx     INTEGER NOT NULL,
	heuristic   TEXT    NOT NULL,
	cost_model  TEXT    NOT NULL,
	step_budget INTEGER NOT NULL,
	state       TEXT    NOT NULL,
	ticks       INTEGER NOT NULL,
	expansions  INTEGER NOT NULL,
	stale       INTEGER NOT NULL,
	path_len    INTEGER NOT NULL,
	snapshot    TEXT    NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS runs_state ON runs(state);
`)
	return err
}

// Close closes the database.
func (s *SQLiteIndex) Close() error {
	return s.db.Close()
}

// Record inserts r and returns its row id. RecordedAt defaults to now.
func (s *SQLiteIndex) Record(ctx context.Context, r Run) (int64, error) {
	if r.RecordedAt.IsZero() {
		r.RecordedAt = time.Now()
	}
	res, err := s.db.ExecContext(ctx, `
INSERT INTO runs (recorded_at, seed, grid_cols, grid_rows, walls, start_idx, end_idx,
	heuristic, cost_model, step_budget, state, ticks, expansions, stale, path_len, snapshot)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RecordedAt.UTC().Format(time.RFC3339Nano), r.Seed, r.Columns, r.Rows, r.Walls, r.Start, r.End,
		r.Heuristic, r.CostModel, r.StepBudget, r.State, int64(r.Ticks), r.Expansions, r.Stale, r.PathLen, r.Snapshot,
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	return res.LastInsertId()
}

// Recent returns up to limit runs, newest first.
func (s *SQLiteIndex) Recent(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, recorded_at, seed, grid_cols, grid_rows, walls, start_idx, end_idx,
	heuristic, cost_model, step_budget, state, ticks, expansions, stale, path_len, snapshot
FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			r     Run
			at    string
			ticks int64
		)
		if err := rows.Scan(&r.ID, &at, &r.Seed, &r.Columns, &r.Rows, &r.Walls, &r.Start, &r.End,
			&r.Heuristic, &r.CostModel, &r.StepBudget, &r.State, &ticks, &r.Expansions, &r.Stale, &r.PathLen, &r.Snapshot); err != nil {
			return nil, err
		}
		r.Ticks = uint64(ticks)
		if r.RecordedAt, err = time.Parse(time.RFC3339Nano, at); err != nil {
			return nil, fmt.Errorf("run %d: recorded_at: %w", r.ID, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// CountByState returns how many runs ended in each state.
func (s *SQLiteIndex) CountByState(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT state, COUNT(*) FROM runs GROUP BY state`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var (
			state string
			n     int
		)
		if err := rows.Scan(&state, &n); err != nil {
			return nil, err
		}
		out[state] = n
	}
	return out, rows.Err()
}
