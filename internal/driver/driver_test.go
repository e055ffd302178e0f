package driver

import (
	"context"
	"io"
	"log"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

func quietLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func newSearch(t *testing.T, budget int, walls ...[2]int) *astar.Search {
	t.Helper()
	opts := gridgraph.DefaultGridOptions()
	opts.Walls = gridgraph.WallsAt(walls...)
	g, err := gridgraph.NewGrid(10, 10, opts)
	require.NoError(t, err)
	s, err := astar.NewSearch(g, 0, g.Len()-1, astar.WithStepBudget(budget))
	require.NoError(t, err)
	return s
}

func TestRun_SingleTick(t *testing.T) {
	s := newSearch(t, 0)
	var frames []Frame
	l := New(s, Config{TickRateHz: 1000, Smoothing: 0.9}, quietLogger(), func(f Frame) { frames = append(frames, f) })

	res, err := l.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, astar.Found, res.State)
	assert.Equal(t, uint64(1), res.Ticks, "an unbounded budget finishes in the first tick")
	require.Len(t, frames, 1)
	assert.Equal(t, astar.Found, frames[0].State)
	assert.Equal(t, 8, frames[0].Grid.Count(gridgraph.Path))
}

func TestRun_Budgeted(t *testing.T) {
	s := newSearch(t, 3)
	var states []astar.State
	l := New(s, Config{TickRateHz: 1000, Smoothing: 0.9}, quietLogger(), func(f Frame) { states = append(states, f.State) })

	res, err := l.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, astar.Found, res.State)
	assert.Greater(t, res.Ticks, uint64(1))
	require.Len(t, states, int(res.Ticks))
	for _, st := range states[:len(states)-1] {
		assert.Equal(t, astar.Running, st)
	}
	assert.Greater(t, res.TPS, 0.0)
}

func TestRun_Exhausted(t *testing.T) {
	s := newSearch(t, 0, [2]int{1, 0}, [2]int{0, 1}, [2]int{1, 1})
	res, err := New(s, Config{TickRateHz: 1000}, quietLogger()).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, astar.Exhausted, res.State)
}

func TestRun_TickLimit(t *testing.T) {
	s := newSearch(t, 1)
	res, err := New(s, Config{TickRateHz: 1000, MaxTicks: 2}, quietLogger()).Run(context.Background())
	assert.ErrorIs(t, err, ErrTickLimit)
	assert.Equal(t, uint64(2), res.Ticks)
	assert.Equal(t, astar.Running, res.State)
}

func TestRun_Cancelled(t *testing.T) {
	s := newSearch(t, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// A 1 Hz loop never ticks before the cancelled context is seen.
	res, err := New(s, Config{TickRateHz: 1}, quietLogger()).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, res.Ticks)
	assert.Equal(t, astar.Idle, res.State)
}

func TestRun_BadTickRate(t *testing.T) {
	for _, hz := range []float64{0, -5, math.NaN(), math.Inf(1), 1e12} {
		s := newSearch(t, 0)
		var frames int
		res, err := New(s, Config{TickRateHz: hz}, quietLogger(), func(Frame) { frames++ }).Run(context.Background())
		assert.ErrorIs(t, err, ErrTickRate, "%v Hz", hz)
		assert.Zero(t, res.Ticks)
		assert.Equal(t, astar.Idle, res.State)
		assert.Zero(t, frames)
	}
}

func TestUpdate_Smoothing(t *testing.T) {
	s := newSearch(t, 1)
	l := New(s, Config{TickRateHz: 60, Smoothing: 0.5}, quietLogger())
	l.lastTick = time.Unix(0, 0)

	l.update(time.Unix(0, 0).Add(100 * time.Millisecond))
	// 0.5*60 + 0.5*10
	assert.InDelta(t, 35.0, l.tps, 1e-9)
}
