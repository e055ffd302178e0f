package astar_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// ExampleNewSearch finds a route around a wall and prints the marked grid.
func ExampleNewSearch() {
	g, _ := gridgraph.Parse([]string{
		".....",
		".###.",
		".....",
	}, gridgraph.Conn8)

	s, err := astar.NewSearch(g, g.Index(0, 1), g.Index(4, 1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(s.Tick(), len(s.Path())-1, "steps")
	fmt.Println(g)

	// Output:
	// found 4 steps
	// .***.
	// S###E
	// .....
}

// ExampleSearch_Tick animates a search two expansions at a time.
func ExampleSearch_Tick() {
	g, _ := gridgraph.NewGrid(6, 1, gridgraph.DefaultGridOptions())
	s, _ := astar.NewSearch(g, 0, 5, astar.WithStepBudget(2))

	for {
		st := s.Tick()
		fmt.Println(st, s.Stats().Expansions)
		if st.Done() {
			break
		}
	}
	fmt.Println(g)

	// Output:
	// running 2
	// running 4
	// found 5
	// S****E
}
