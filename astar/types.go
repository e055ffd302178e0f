// Package astar defines core types, configuration options, and sentinel
// errors for the grid A* search.
//
// Options:
//
//	– StepBudget: expansions performed per Tick (0 = run to completion).
//	– CostModel:  CostUniform (every step 1.0) or CostOctile (diagonal √2).
//	– Heuristic:  remaining-cost estimate; Chebyshev by default.
//	– OnExpand / OnRelax: observation hooks, no-ops by default.
//
// Errors (sentinel):
//
//	– ErrNilGrid         if the grid pointer is nil.
//	– ErrIndexRange      if start or end lies outside the grid.
//	– ErrOptionViolation if an Option was given an invalid value.
//	– ErrNaNScore        (panic value) if a relaxed F score is NaN.
package astar

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the astar implementation.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed in.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrIndexRange indicates that the start or end index is outside the grid.
	ErrIndexRange = errors.New("astar: cell index out of range")

	// ErrOptionViolation indicates that an invalid Option was supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrNaNScore is the panic value raised when a cell's F score becomes
	// NaN. It signals a broken heuristic, not a recoverable condition.
	ErrNaNScore = errors.New("astar: NaN score")
)

// State is the lifecycle stage of a Search.
type State int

const (
	// Idle: seeded, no tick has run yet.
	Idle State = iota
	// Running: at least one tick ran and the frontier is not exhausted.
	Running
	// Found: the end cell was popped and the path has been marked.
	Found
	// Exhausted: the open set emptied without reaching the end.
	Exhausted
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Done reports whether the search reached a terminal state.
func (s State) Done() bool { return s == Found || s == Exhausted }

// CostModel selects the per-step movement cost.
type CostModel int

const (
	// CostUniform charges 1.0 for every step, orthogonal or diagonal.
	CostUniform CostModel = iota
	// CostOctile charges 1.0 for orthogonal steps and √2 for diagonal ones.
	CostOctile
)

// String returns "uniform" or "octile".
func (m CostModel) String() string {
	if m == CostOctile {
		return "octile"
	}
	return "uniform"
}

// Options configures a Search.
type Options struct {
	// StepBudget bounds node expansions per Tick; 0 means unbounded.
	StepBudget int

	// Cost selects the movement cost model.
	Cost CostModel

	// Heuristic estimates the remaining cost from (x1,y1) to (x2,y2).
	Heuristic Heuristic

	// OnExpand is called with each cell index right before its neighbors
	// are relaxed.
	OnExpand func(index int)

	// OnRelax is called after a neighbor's G improves to g via from.
	OnRelax func(index, from int, g float64)

	// internal error recorded during option parsing
	err error

	// set when Heuristic / Cost were given explicitly, so Resume knows
	// whether to keep the traversal's own choice
	heuristicSet, costSet bool
}

// Option represents a functional option for configuring a Search.
type Option func(*Options)

// DefaultOptions returns Options with defaults:
//   - StepBudget: 0 (each Tick runs the search to completion).
//   - Cost:       CostUniform.
//   - Heuristic:  Chebyshev (admissible and consistent for CostUniform).
//   - hooks:      no-ops.
func DefaultOptions() Options {
	return Options{
		StepBudget: 0,
		Cost:       CostUniform,
		Heuristic:  Chebyshev,
		OnExpand:   func(int) {},
		OnRelax:    func(int, int, float64) {},
	}
}

// WithStepBudget limits each Tick to n expansions.
//
//	n > 0: at most n expansions per Tick
//	n == 0: run to completion within one Tick
//	n < 0: invalid option → ErrOptionViolation
func WithStepBudget(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: StepBudget cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.StepBudget = n
	}
}

// WithCostModel sets the movement cost model.
func WithCostModel(m CostModel) Option {
	return func(o *Options) {
		if m != CostUniform && m != CostOctile {
			o.err = fmt.Errorf("%w: unknown cost model %d", ErrOptionViolation, int(m))
			return
		}
		o.Cost = m
		o.costSet = true
	}
}

// WithHeuristic sets the heuristic; nil is rejected.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: nil heuristic", ErrOptionViolation)
			return
		}
		o.Heuristic = h
		o.heuristicSet = true
	}
}

// WithOnExpand registers a callback run before each expansion.
func WithOnExpand(fn func(index int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnRelax registers a callback run after each successful relaxation.
func WithOnRelax(fn func(index, from int, g float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// Stats counts the work done by a Search so far.
type Stats struct {
	Ticks      int // Tick calls that did work
	Expansions int // entries popped and expanded
	Stale      int // entries popped and discarded as outdated
	Pushes     int // entries pushed onto the open set, seed included
}
