package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// BenchmarkComponents measures Components on a 1000×1000 grid with 30%
// random walls.
// Complexity: O(W×H×d)
func BenchmarkComponents(b *testing.B) {
	const n = 1000
	opts := gridgraph.DefaultGridOptions()
	opts.Walls = gridgraph.RandomWalls(42, 0.3)
	g, err := gridgraph.NewGrid(n, n, opts)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Components()
	}
}

// BenchmarkNeighbors measures neighbor enumeration with a reused buffer.
func BenchmarkNeighbors(b *testing.B) {
	g, err := gridgraph.NewGrid(256, 256, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	buf := make([]int, 0, 8)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = g.AppendNeighbors(buf[:0], i%g.Len())
	}
}
