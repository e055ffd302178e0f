package gridgraph

import (
	"container/list"
	"fmt"
)

// EnsurePassage clears the fewest walls needed to join cells from and to,
// turning each cleared wall into an unscored Background cell. It returns the
// indices of the cleared cells in path order (empty when the two cells are
// already connected).
//
// Behavior:
//  1. Validate indices.
//  2. 0-1 BFS from `from`:
//     • Moving into a passable cell → cost 0
//     • Moving into a wall          → cost 1
//  3. Stop when `to` is reached; every cell is enterable, so it always is.
//  4. Walk predecessors back to `from`, clearing the walls on the way.
//
// Complexity: O(W·H·d) time, O(W·H) memory for distance and prev pointers.
func (g *Grid) EnsurePassage(from, to int) ([]int, error) {
	n := len(g.cells)
	if from < 0 || from >= n || to < 0 || to >= n {
		return nil, fmt.Errorf("%w: passage %d→%d in %d cells", ErrOutOfBounds, from, to, n)
	}

	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	dist[from] = g.wallCost(from)
	dq.PushFront(from)
	var nbuf []int

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == to {
			break
		}
		nbuf = g.AppendNeighbors(nbuf[:0], u)
		for _, v := range nbuf {
			step := g.wallCost(v)
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	var cleared []int
	for at := to; at >= 0; at = prev[at] {
		if g.cells[at].Kind == Wall {
			cleared = append([]int{at}, cleared...)
			g.cells[at].Kind = Background
			resetCell(&g.cells[at])
		}
	}
	return cleared, nil
}

func (g *Grid) wallCost(i int) int {
	if g.cells[i].Kind == Wall {
		return 1
	}
	return 0
}
