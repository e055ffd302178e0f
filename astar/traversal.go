package astar

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Traversal is the mutable state of one search: the open set, the fixed
// start/end pair, the predecessor map and the lifecycle state. It is
// created once per search and mutated only by Tick.
type Traversal struct {
	start, end   int
	open         openSet
	predecessors map[int]int
	state        State
	path         []int
	stats        Stats

	// heuristic and cost the traversal was scored with; later ticks keep
	// them unless overridden
	heuristic Heuristic
	cost      CostModel
}

// NewTraversal returns an unseeded traversal from start to end with an
// empty open set and predecessor map.
func NewTraversal(start, end int) *Traversal {
	return &Traversal{
		start:        start,
		end:          end,
		open:         make(openSet, 0, 64),
		predecessors: make(map[int]int),
		state:        Idle,
	}
}

// Seed scores the start cell (G = 0, H = h(start, end), F = G + H) and
// pushes it onto the open set. h is remembered and used by later ticks
// that do not pass WithHeuristic.
func (t *Traversal) Seed(g *gridgraph.Grid, h Heuristic) {
	t.heuristic = h
	sc, ec := g.Cell(t.start), g.Cell(t.end)
	sc.G = 0
	sc.H = h(sc.X, sc.Y, ec.X, ec.Y)
	sc.F = sc.G + sc.H
	if math.IsNaN(sc.F) {
		panic(ErrNaNScore)
	}
	heap.Push(&t.open, entry{f: sc.F, g: sc.G, index: t.start})
	t.stats.Pushes++
}

// Start returns the start cell index.
func (t *Traversal) Start() int { return t.start }

// End returns the end cell index.
func (t *Traversal) End() int { return t.end }

// State returns the lifecycle state.
func (t *Traversal) State() State { return t.state }

// Stats returns the work counters accumulated so far.
func (t *Traversal) Stats() Stats { return t.stats }

// OpenLen returns the number of open-set entries, stale ones included.
func (t *Traversal) OpenLen() int { return t.open.Len() }

// Frontier returns the distinct cell indices currently in the open set,
// in heap order.
func (t *Traversal) Frontier() []int {
	seen := make(map[int]struct{}, len(t.open))
	out := make([]int, 0, len(t.open))
	for _, e := range t.open {
		if _, ok := seen[e.index]; ok {
			continue
		}
		seen[e.index] = struct{}{}
		out = append(out, e.index)
	}
	return out
}

// Predecessor returns the cell that most recently relaxed i.
func (t *Traversal) Predecessor(i int) (int, bool) {
	p, ok := t.predecessors[i]
	return p, ok
}

// Predecessors returns a copy of the predecessor map.
func (t *Traversal) Predecessors() map[int]int {
	c := make(map[int]int, len(t.predecessors))
	for k, v := range t.predecessors {
		c[k] = v
	}
	return c
}

// Path returns the start→end cell indices once the state is Found, nil
// otherwise.
func (t *Traversal) Path() []int {
	if t.state != Found {
		return nil
	}
	out := make([]int, len(t.path))
	copy(out, t.path)
	return out
}

// Reconstruct walks predecessors back from end until start or a cell with
// no predecessor is reached, and returns the chain in start→end order,
// both endpoints included. The walk is bounded by the map size, so a
// corrupted map cannot loop forever.
func Reconstruct(predecessors map[int]int, start, end int) []int {
	path := []int{end}
	for cur := end; cur != start && len(path) <= len(predecessors); {
		prev, ok := predecessors[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
