package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/driver"
)

func frame(t *testing.T, tick uint64, st astar.State) driver.Frame {
	t.Helper()
	g, err := gridgraph.Parse([]string{"S.#", "..E"}, gridgraph.Conn8)
	require.NoError(t, err)
	return driver.Frame{Tick: tick, State: st, TPS: 59.6, Grid: g}
}

func TestFrame(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Frame(&buf, frame(t, 3, astar.Running)))
	assert.Equal(t, "tick 3  running  TPS 60\nS.#\n..E\n\n", buf.String())
}

func TestASCII_Every(t *testing.T) {
	var buf bytes.Buffer
	r := NewASCII(&buf, 2)
	for tick := uint64(1); tick <= 4; tick++ {
		r.Sink(frame(t, tick, astar.Running))
	}
	r.Sink(frame(t, 5, astar.Found))

	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, "tick "))
	assert.Contains(t, out, "tick 2 ")
	assert.Contains(t, out, "tick 4 ")
	assert.Contains(t, out, "tick 5  found")
	assert.NotContains(t, out, "tick 1 ")
	assert.NoError(t, r.Err())
}

func TestASCII_FinalOnly(t *testing.T) {
	var buf bytes.Buffer
	r := NewASCII(&buf, 0)
	r.Sink(frame(t, 1, astar.Running))
	r.Sink(frame(t, 2, astar.Exhausted))
	assert.Equal(t, 1, strings.Count(buf.String(), "tick "))
	assert.Contains(t, buf.String(), "exhausted")
}

type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	w.n++
	return 0, errors.New("disk full")
}

func TestASCII_StopsAfterError(t *testing.T) {
	w := &failWriter{}
	r := NewASCII(w, 1)
	r.Sink(frame(t, 1, astar.Running))
	r.Sink(frame(t, 2, astar.Running))
	assert.EqualError(t, r.Err(), "disk full")
	assert.Equal(t, 1, w.n)
}
