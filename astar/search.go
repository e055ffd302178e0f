package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Search drives one Traversal over one Grid. It is not safe for concurrent
// use; readers may inspect the grid between Tick calls.
type Search struct {
	grid *gridgraph.Grid
	trav *Traversal
	opts Options
	nbuf []int
}

// NewSearch prepares a search from start to end (row-major indices):
//  1. g must be non-nil (ErrNilGrid) and both indices in range (ErrIndexRange).
//  2. Options must be valid (ErrOptionViolation).
//  3. Start, End and Path labels left by earlier searches are cleared,
//     then start is marked Start and end is marked End (end wins when equal).
//  4. Grid scores are reset: walls G = 0, every other cell G = +Inf.
//  5. A new Traversal is seeded with the start cell.
//
// Walls are kept, so one grid can be searched repeatedly.
func NewSearch(g *gridgraph.Grid, start, end int, opts ...Option) (*Search, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err := validate(g, start, end); err != nil {
		return nil, err
	}

	g.ClearMarks()
	sx, sy := g.Coordinate(start)
	ex, ey := g.Coordinate(end)
	_, _ = g.Mark(sx, sy, gridgraph.Start)
	_, _ = g.Mark(ex, ey, gridgraph.End)
	g.ResetScores()

	t := NewTraversal(start, end)
	t.Seed(g, cfg.Heuristic)
	t.cost = cfg.Cost

	return &Search{grid: g, trav: t, opts: cfg, nbuf: make([]int, 0, 8)}, nil
}

// Resume wraps an existing, already seeded traversal so it can be ticked.
// The heuristic given to Seed and the cost model of the previous tick are
// kept unless WithHeuristic or WithCostModel override them; an override is
// remembered for the ticks after it.
func Resume(g *gridgraph.Grid, t *Traversal, opts ...Option) (*Search, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("%w: nil traversal", ErrOptionViolation)
	}
	if err := validate(g, t.start, t.end); err != nil {
		return nil, err
	}
	if !cfg.heuristicSet && t.heuristic != nil {
		cfg.Heuristic = t.heuristic
	}
	if !cfg.costSet {
		cfg.Cost = t.cost
	}
	t.heuristic, t.cost = cfg.Heuristic, cfg.Cost
	return &Search{grid: g, trav: t, opts: cfg, nbuf: make([]int, 0, 8)}, nil
}

// Tick runs one invocation of the search driver on an existing traversal.
// With default options the whole search completes inside this call.
// The traversal's heuristic and cost model carry over between calls (see
// Resume); the step budget and hooks apply to this call only.
func Tick(g *gridgraph.Grid, t *Traversal, opts ...Option) (State, error) {
	s, err := Resume(g, t, opts...)
	if err != nil {
		return Idle, err
	}
	return s.Tick(), nil
}

func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Options{}, cfg.err
	}
	return cfg, nil
}

func validate(g *gridgraph.Grid, start, end int) error {
	if g == nil {
		return ErrNilGrid
	}
	n := g.Len()
	if start < 0 || start >= n || end < 0 || end >= n {
		return fmt.Errorf("%w: start=%d end=%d cells=%d", ErrIndexRange, start, end, n)
	}
	return nil
}

// Grid returns the searched grid.
func (s *Search) Grid() *gridgraph.Grid { return s.grid }

// Traversal returns the underlying search state.
func (s *Search) Traversal() *Traversal { return s.trav }

// State returns the lifecycle state.
func (s *Search) State() State { return s.trav.state }

// Path returns the start→end indices once Found, nil otherwise.
func (s *Search) Path() []int { return s.trav.Path() }

// Stats returns the work counters accumulated so far.
func (s *Search) Stats() Stats { return s.trav.stats }

// Tick advances the search by at most StepBudget expansions (all of them
// when the budget is 0) and returns the resulting state. On reaching the end
// it reconstructs the path and relabels its intermediate cells as Path.
// Ticking a finished search is a no-op.
func (s *Search) Tick() State {
	t := s.trav
	if t.state.Done() {
		return t.state
	}
	t.state = Running
	t.stats.Ticks++

	budget := s.opts.StepBudget
	for n := 0; budget == 0 || n < budget; n++ {
		if st := s.step(); st != Running {
			s.finish(st)
			break
		}
	}
	return t.state
}

// Run ticks until the search reaches a terminal state.
func (s *Search) Run() State {
	for !s.Tick().Done() {
	}
	return s.trav.state
}

// step pops entries until one is expanded (Running), the end is popped
// (Found) or the open set is empty (Exhausted).
func (s *Search) step() State {
	t := s.trav
	for t.open.Len() > 0 {
		e := heap.Pop(&t.open).(entry)
		if e.index == t.end {
			return Found
		}
		cur := s.grid.Cell(e.index)
		if e.g > cur.G {
			t.stats.Stale++
			continue
		}
		s.expand(e.index, cur)
		return Running
	}
	return Exhausted
}

// expand relaxes every passable neighbor of cell idx.
func (s *Search) expand(idx int, cur *gridgraph.Cell) {
	t := s.trav
	t.stats.Expansions++
	s.opts.OnExpand(idx)

	end := s.grid.Cell(t.end)
	s.nbuf = s.grid.AppendNeighbors(s.nbuf[:0], idx)
	for _, n := range s.nbuf {
		nc := s.grid.Cell(n)
		if !nc.Kind.Passable() {
			continue
		}
		cand := cur.G + s.stepCost(cur, nc)
		if !(cand < nc.G) {
			continue
		}
		nc.G = cand
		nc.H = s.opts.Heuristic(nc.X, nc.Y, end.X, end.Y)
		nc.F = nc.G + nc.H
		if math.IsNaN(nc.F) {
			panic(fmt.Errorf("%w: cell (%d,%d) g=%v h=%v", ErrNaNScore, nc.X, nc.Y, nc.G, nc.H))
		}
		t.predecessors[n] = idx
		heap.Push(&t.open, entry{f: nc.F, g: nc.G, index: n})
		t.stats.Pushes++
		s.opts.OnRelax(n, idx, cand)
	}
}

func (s *Search) stepCost(from, to *gridgraph.Cell) float64 {
	if s.opts.Cost == CostOctile && from.X != to.X && from.Y != to.Y {
		return math.Sqrt2
	}
	return 1
}

// finish records the terminal state and, on success, marks the path.
func (s *Search) finish(st State) {
	t := s.trav
	t.state = st
	if st != Found {
		return
	}
	t.path = Reconstruct(t.predecessors, t.start, t.end)
	for _, i := range t.path {
		if i == t.start || i == t.end {
			continue
		}
		s.grid.Cell(i).Kind = gridgraph.Path
	}
}
