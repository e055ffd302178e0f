package gridgraph

// Components finds all contiguous regions of passable cells (any Kind
// except Wall), according to the grid connectivity.
// Returns a slice of components; each component is a slice of cell-indices
// (row-major) in ascending order; components are numbered by their
// lowest index.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components() [][]int {
	labels, n := g.label()
	comps := make([][]int, n)
	for i, l := range labels {
		if l >= 0 {
			comps[l] = append(comps[l], i)
		}
	}
	return comps
}

// Connected reports whether cells a and b lie in the same passable region.
// A wall is connected to nothing, including itself.
func (g *Grid) Connected(a, b int) bool {
	labels, _ := g.label()
	return labels[a] >= 0 && labels[a] == labels[b]
}

// label assigns every passable cell its component number (walls get -1)
// and returns the labels plus the component count.
func (g *Grid) label() ([]int, int) {
	labels := make([]int, len(g.cells))
	for i := range labels {
		labels[i] = -1
	}
	n := 0
	queue := make([]int, 0, len(g.cells))
	var nbuf []int

	for i0 := range g.cells {
		if labels[i0] >= 0 || !g.Passable(i0) {
			continue
		}
		// BFS to collect component
		queue = append(queue[:0], i0)
		labels[i0] = n
		for qi := 0; qi < len(queue); qi++ {
			nbuf = g.AppendNeighbors(nbuf[:0], queue[qi])
			for _, v := range nbuf {
				if labels[v] < 0 && g.Passable(v) {
					labels[v] = n
					queue = append(queue, v)
				}
			}
		}
		n++
	}
	return labels, n
}
