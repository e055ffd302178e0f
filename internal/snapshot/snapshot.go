// Package snapshot persists a grid and its search outcome as a
// zstd-compressed file: one JSON header line followed by a gob body.
package snapshot

import (
	"bufio"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Version is the current snapshot format version.
const Version = 1

// ErrVersion is returned when a snapshot has an unsupported version.
var ErrVersion = errors.New("snapshot: unsupported version")

// Header is the plain-JSON first line of a snapshot, readable without
// decoding the body.
type Header struct {
	Version int    `json:"version"`
	Tick    uint64 `json:"tick"`
	Seed    int64  `json:"seed"`
	State   string `json:"state"`
}

// SnapshotV1 is the gob body: the grid layout as one Kind per cell in
// row-major order, the endpoints and the search outcome.
type SnapshotV1 struct {
	Header Header `json:"header"`

	Columns      int     `json:"columns"`
	Rows         int     `json:"rows"`
	Connectivity int     `json:"connectivity"`
	Kinds        []uint8 `json:"kinds"`

	Start int   `json:"start"`
	End   int   `json:"end"`
	Path  []int `json:"path,omitempty"`

	Expansions int `json:"expansions"`
	Stale      int `json:"stale"`
	Pushes     int `json:"pushes"`
	Ticks      int `json:"ticks"`
}

// Capture records the grid layout and the outcome of s at the given tick.
func Capture(s *astar.Search, tick uint64, seed int64) SnapshotV1 {
	g := s.Grid()
	kinds := make([]uint8, g.Len())
	for i, c := range g.Cells() {
		kinds[i] = uint8(c.Kind)
	}
	conn := 8
	if g.Conn() == gridgraph.Conn4 {
		conn = 4
	}
	t := s.Traversal()
	st := s.Stats()
	return SnapshotV1{
		Header: Header{
			Version: Version,
			Tick:    tick,
			Seed:    seed,
			State:   s.State().String(),
		},
		Columns:      g.Columns(),
		Rows:         g.Rows(),
		Connectivity: conn,
		Kinds:        kinds,
		Start:        t.Start(),
		End:          t.End(),
		Path:         s.Path(),
		Expansions:   st.Expansions,
		Stale:        st.Stale,
		Pushes:       st.Pushes,
		Ticks:        st.Ticks,
	}
}

// Grid rebuilds the recorded grid. Scores are reset, so the result can be
// searched again.
func (snap SnapshotV1) Grid() (*gridgraph.Grid, error) {
	if len(snap.Kinds) != snap.Columns*snap.Rows {
		return nil, fmt.Errorf("snapshot: %d kinds for %dx%d grid", len(snap.Kinds), snap.Columns, snap.Rows)
	}
	opts := gridgraph.DefaultGridOptions()
	if snap.Connectivity == 4 {
		opts.Conn = gridgraph.Conn4
	}
	g, err := gridgraph.NewGrid(snap.Columns, snap.Rows, opts)
	if err != nil {
		return nil, err
	}
	for i, k := range snap.Kinds {
		x, y := g.Coordinate(i)
		if gridgraph.Kind(k) == gridgraph.Wall {
			_ = g.SetWall(x, y, true)
			continue
		}
		_, _ = g.Mark(x, y, gridgraph.Kind(k))
	}
	g.ResetScores()
	return g, nil
}

// Write stores snap at path, creating parent directories. The file is
// complete only when Write returns nil: encoder and file close errors are
// reported.
func Write(path string, snap SnapshotV1) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	if err := writeBody(enc, snap); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}

func writeBody(w io.Writer, snap SnapshotV1) error {
	bw := bufio.NewWriterSize(w, 64*1024)

	hb, err := json.Marshal(snap.Header)
	if err != nil {
		return fmt.Errorf("encode header: %w", err)
	}
	if _, err := bw.Write(hb); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	if err := gob.NewEncoder(bw).Encode(&snap); err != nil {
		return fmt.Errorf("gob encode: %w", err)
	}
	return bw.Flush()
}

// Read loads a snapshot written by Write. A header with another version
// fails with ErrVersion before the body is decoded.
func Read(path string) (SnapshotV1, error) {
	var snap SnapshotV1
	f, err := os.Open(path)
	if err != nil {
		return snap, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return snap, err
	}
	defer dec.Close()

	br := bufio.NewReaderSize(dec, 64*1024)
	line, err := br.ReadBytes('\n')
	if err != nil {
		return snap, fmt.Errorf("read header: %w", err)
	}
	var h Header
	if err := json.Unmarshal(line, &h); err != nil {
		return snap, fmt.Errorf("decode header: %w", err)
	}
	if h.Version != Version {
		return snap, fmt.Errorf("%w: %d", ErrVersion, h.Version)
	}

	if err := gob.NewDecoder(br).Decode(&snap); err != nil {
		return snap, fmt.Errorf("gob decode: %w", err)
	}
	return snap, nil
}
