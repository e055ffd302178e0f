package gridgraph

import "math/rand"

// RandomWalls returns a WallPolicy that turns each cell into a wall with
// probability density, drawing from a source seeded with seed. The same
// seed and grid size always yield the same layout.
// density ≤ 0 yields no walls; density ≥ 1 yields only walls.
func RandomWalls(seed int64, density float64) WallPolicy {
	rng := rand.New(rand.NewSource(seed))
	return func(_, _ int) bool {
		return rng.Float64() < density
	}
}

// WallsAt returns a WallPolicy that places walls exactly at the given
// (x,y) points.
func WallsAt(points ...[2]int) WallPolicy {
	set := make(map[[2]int]struct{}, len(points))
	for _, p := range points {
		set[p] = struct{}{}
	}
	return func(x, y int) bool {
		_, ok := set[[2]int{x, y}]
		return ok
	}
}
