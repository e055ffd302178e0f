package astar_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// BenchmarkSearch_Open256 runs corner-to-corner searches on an open
// 256×256 grid.
func BenchmarkSearch_Open256(b *testing.B) {
	g, err := gridgraph.NewGrid(256, 256, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.ClearMarks()
		s, err := astar.NewSearch(g, 0, g.Len()-1)
		if err != nil {
			b.Fatal(err)
		}
		s.Tick()
	}
}

// BenchmarkSearch_Walls512 runs searches on a 512×512 grid with 30% walls
// and a guaranteed passage.
func BenchmarkSearch_Walls512(b *testing.B) {
	opts := gridgraph.DefaultGridOptions()
	opts.Walls = gridgraph.RandomWalls(42, 0.3)
	g, err := gridgraph.NewGrid(512, 512, opts)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	if _, err := g.EnsurePassage(0, g.Len()-1); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.ClearMarks()
		s, err := astar.NewSearch(g, 0, g.Len()-1)
		if err != nil {
			b.Fatal(err)
		}
		if s.Tick() != astar.Found {
			b.Fatal("expected a path")
		}
	}
}
