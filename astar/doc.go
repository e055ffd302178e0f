// Package astar finds shortest paths on a gridgraph.Grid with blocked cells.
//
// What:
//
//   - Traversal holds one search: a min-priority open set of (F, index)
//     entries, fixed start/end indices and a predecessor map.
//   - Search is the driver. Tick advances it by a bounded number of node
//     expansions, so a frame loop can animate the frontier, or finishes it
//     in one call when the budget is 0.
//   - On success the predecessor chain is walked back from end to start and
//     every intermediate cell is relabeled gridgraph.Path.
//
// Cost model and heuristic:
//
//   - CostUniform (default) charges 1.0 per step, diagonal or not. The
//     default heuristic Chebyshev is exact on open ground for that model.
//   - CostOctile charges √2 for diagonal steps; pair it with Octile or
//     Euclidean.
//   - Euclidean under CostUniform overestimates diagonal runs and may return
//     a longer-than-optimal path. It is kept for comparison.
//
// Complexity:
//
//   - Time:  O(N·d·log N) worst case, N = cells, d = neighbors per cell.
//   - Space: O(N) for the predecessor map, O(N·d) for the open set under
//     lazy decrease-key.
//
// Implementation notes:
//
//   - Walls are skipped by an explicit passability check before the cost
//     comparison; their pinned G = 0 is never read by the search.
//   - Improved cells are pushed again; a popped entry whose g exceeds the
//     cell's current G is discarded without expansion.
//   - There is no closed set, so a cell improved after expansion is
//     expanded again.
//
// Outcomes:
//
//   - Found: path marked, Path() returns start→end indices.
//   - Exhausted: open set empty, no cell marked. Not an error.
//
// Example usage:
//
//	g, _ := gridgraph.NewGrid(50, 50, gridgraph.DefaultGridOptions())
//	s, err := astar.NewSearch(g, g.Index(0, 0), g.Index(49, 49),
//	    astar.WithStepBudget(32))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for !s.Tick().Done() {
//	    draw(g)
//	}
package astar
