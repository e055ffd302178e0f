package astar

import "math"

// Heuristic returns the estimated cost from (x1,y1) to (x2,y2).
type Heuristic func(x1, y1, x2, y2 int) float64

// Euclidean is the straight-line distance between two grid coordinates.
// It overestimates under CostUniform (a diagonal step costs 1.0, not √2),
// so pair it with CostOctile when optimal paths matter.
func Euclidean(x1, y1, x2, y2 int) float64 {
	dx, dy := float64(x2-x1), float64(y2-y1)
	return math.Sqrt(dx*dx + dy*dy)
}

// Chebyshev is max(|dx|, |dy|): the exact step count on an open 8-connected
// grid with uniform step cost.
func Chebyshev(x1, y1, x2, y2 int) float64 {
	dx, dy := absInt(x2-x1), absInt(y2-y1)
	if dx > dy {
		return float64(dx)
	}
	return float64(dy)
}

// Octile is the exact open-grid cost under CostOctile:
// max(dx,dy) + (√2-1)·min(dx,dy).
func Octile(x1, y1, x2, y2 int) float64 {
	dx, dy := absInt(x2-x1), absInt(y2-y1)
	if dx < dy {
		dx, dy = dy, dx
	}
	return float64(dx) + (math.Sqrt2-1)*float64(dy)
}

// Manhattan is |dx| + |dy|, admissible only for 4-connected grids.
func Manhattan(x1, y1, x2, y2 int) float64 {
	return float64(absInt(x2-x1) + absInt(y2-y1))
}

// HeuristicByName resolves "euclidean", "chebyshev", "octile" or
// "manhattan".
func HeuristicByName(name string) (Heuristic, bool) {
	switch name {
	case "euclidean":
		return Euclidean, true
	case "chebyshev":
		return Chebyshev, true
	case "octile":
		return Octile, true
	case "manhattan":
		return Manhattan, true
	}
	return nil, false
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
