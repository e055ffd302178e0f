// Package driver runs a search at a fixed logical tick rate: one search
// Tick per update, then the frame is handed to sinks while the grid is
// quiescent.
package driver

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

var (
	// ErrTickLimit is returned when MaxTicks elapse before the search finishes.
	ErrTickLimit = errors.New("driver: tick limit reached")
	// ErrTickRate is returned by Run when TickRateHz does not yield a
	// positive tick period.
	ErrTickRate = errors.New("driver: tick rate out of range")
)

// Config controls the pacing of a Loop.
type Config struct {
	// TickRateHz is the number of updates per second.
	TickRateHz float64
	// MaxTicks stops the loop after this many updates; 0 means no limit.
	MaxTicks int
	// Smoothing weighs the previous ticks-per-second estimate against the
	// instantaneous rate: tps = s*tps + (1-s)*instant.
	Smoothing float64
}

// Frame is what sinks see after every update.
type Frame struct {
	Tick   uint64
	State  astar.State
	TPS    float64
	Grid   *gridgraph.Grid
	Search *astar.Search
}

// Sink consumes frames. It runs on the loop goroutine between ticks and
// must not retain the grid past its return.
type Sink func(Frame)

// Result summarizes a finished loop.
type Result struct {
	Ticks   uint64
	State   astar.State
	TPS     float64
	Elapsed time.Duration
}

// Loop owns one search and ticks it at the configured rate. It is used by
// a single goroutine.
type Loop struct {
	search *astar.Search
	cfg    Config
	log    *log.Logger
	sinks  []Sink

	ticks    uint64
	tps      float64
	lastTick time.Time
}

// New returns a loop over s. Sinks are called in order after every update;
// a nil logger writes to the standard logger's output.
func New(s *astar.Search, cfg Config, logger *log.Logger, sinks ...Sink) *Loop {
	if logger == nil {
		logger = log.New(log.Writer(), "[driver] ", log.LstdFlags)
	}
	return &Loop{
		search: s,
		cfg:    cfg,
		log:    logger,
		sinks:  sinks,
		tps:    cfg.TickRateHz,
	}
}

// Run ticks the search until it is Found or Exhausted, MaxTicks elapse
// (ErrTickLimit) or ctx is cancelled. Cancellation is observed between
// ticks only; a tick in progress always completes.
func (l *Loop) Run(ctx context.Context) (Result, error) {
	var period time.Duration
	if l.cfg.TickRateHz > 0 {
		period = time.Duration(float64(time.Second) / l.cfg.TickRateHz)
	}
	if period <= 0 {
		return Result{State: l.search.State()}, fmt.Errorf("%w: %v Hz", ErrTickRate, l.cfg.TickRateHz)
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	begin := time.Now()
	l.lastTick = begin
	l.log.Printf("start: %dx%d grid, %.0f Hz", l.search.Grid().Columns(), l.search.Grid().Rows(), l.cfg.TickRateHz)

	for {
		select {
		case <-ctx.Done():
			return l.result(begin), ctx.Err()
		case now := <-ticker.C:
			st := l.update(now)
			if st.Done() {
				res := l.result(begin)
				stats := l.search.Stats()
				l.log.Printf("%s after %d ticks: %d expansions, %d stale, path %d cells",
					st, res.Ticks, stats.Expansions, stats.Stale, len(l.search.Path()))
				return res, nil
			}
			if l.cfg.MaxTicks > 0 && l.ticks >= uint64(l.cfg.MaxTicks) {
				l.log.Printf("stopping: %d ticks without a result", l.ticks)
				return l.result(begin), ErrTickLimit
			}
		}
	}
}

func (l *Loop) update(now time.Time) astar.State {
	if delta := now.Sub(l.lastTick).Seconds(); delta > 0 {
		l.tps = l.cfg.Smoothing*l.tps + (1-l.cfg.Smoothing)/delta
	}
	l.lastTick = now
	l.ticks++

	st := l.search.Tick()
	f := Frame{
		Tick:   l.ticks,
		State:  st,
		TPS:    l.tps,
		Grid:   l.search.Grid(),
		Search: l.search,
	}
	for _, sink := range l.sinks {
		sink(f)
	}
	return st
}

func (l *Loop) result(begin time.Time) Result {
	return Result{
		Ticks:   l.ticks,
		State:   l.search.State(),
		TPS:     l.tps,
		Elapsed: time.Since(begin),
	}
}
