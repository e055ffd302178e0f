package main

import (
	"context"
	"io"
	"log"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/runindex"
	"github.com/katalvlaran/gridpath/internal/snapshot"
)

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Grid.Columns, cfg.Grid.Rows = 24, 16
	cfg.Grid.EnsurePassage = true
	cfg.Search.StepBudget = 20
	cfg.Driver.TickRateHz = 1000
	cfg.Persistence.SnapshotPath = filepath.Join(dir, "run.snap.zst")
	cfg.Persistence.IndexDB = filepath.Join(dir, "runs.sqlite")
	require.NoError(t, cfg.Validate())

	err := run(context.Background(), cfg, log.New(io.Discard, "", 0), 0, true)
	require.NoError(t, err)

	snap, err := snapshot.Read(cfg.Persistence.SnapshotPath)
	require.NoError(t, err)
	assert.Equal(t, "found", snap.Header.State)
	assert.Equal(t, 24*16, len(snap.Kinds))
	assert.NotEmpty(t, snap.Path)

	idx, err := runindex.OpenSQLite(cfg.Persistence.IndexDB)
	require.NoError(t, err)
	defer idx.Close()
	runs, err := idx.Recent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "found", runs[0].State)
	assert.Equal(t, len(snap.Path), runs[0].PathLen)
	assert.Equal(t, snap.Expansions, runs[0].Expansions)
}
