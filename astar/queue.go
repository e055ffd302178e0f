package astar

// entry is one open-set record: the cell index, its F at push time and the
// G it was pushed with. A cell may have several entries; the ones whose g
// exceeds the cell's current G are stale.
type entry struct {
	f     float64
	g     float64
	index int
}

// openSet is a min-heap of entries ordered by f ascending. Ties prefer the
// larger g (the entry nearer the goal), then the lower index, so the pop
// order is fully deterministic.
// We use the “lazy-decrease-key” approach: an improved cell is pushed again
// and the outdated entry is dropped when popped.
type openSet []entry

// Len returns the number of items in the heap.
func (pq openSet) Len() int { return len(pq) }

// Less defines the comparison: smaller f → higher priority.
func (pq openSet) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g > b.g
	}
	return a.index < b.index
}

// Swap swaps two elements in the heap.
func (pq openSet) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type entry.
func (pq *openSet) Push(x any) { *pq = append(*pq, x.(entry)) }

// Pop removes and returns the last element.
// Called by heap.Pop; returns any that must be cast to entry.
func (pq *openSet) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
