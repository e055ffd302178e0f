// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

// TestComponents_Regions tests Components on a 5×4 grid split by walls.
//
// Grid ('#' = wall):
//
//	. . # . .
//	. . # . .
//	# # # # #
//	. . . . #
//
// Expected: 3 regions of 4 cells each under both connectivities.
func TestComponents_Regions(t *testing.T) {
	rows := []string{
		"..#..",
		"..#..",
		"#####",
		"....#",
	}
	for _, conn := range []Connectivity{Conn4, Conn8} {
		g, err := Parse(rows, conn)
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		comps := g.Components()
		sizes := make([]int, 0, len(comps))
		for _, c := range comps {
			sizes = append(sizes, len(c))
		}
		sort.Ints(sizes)
		if want := []int{4, 4, 4}; !reflect.DeepEqual(sizes, want) {
			t.Errorf("%s: component sizes = %v; want %v", conn, sizes, want)
		}
	}
}

// TestComponents_DiagonalGap checks that corner-touching cells join only
// under Conn8.
//
//	. #
//	# .
func TestComponents_DiagonalGap(t *testing.T) {
	rows := []string{".#", "#."}

	g4, _ := Parse(rows, Conn4)
	if n := len(g4.Components()); n != 2 {
		t.Errorf("Conn4: got %d components; want 2", n)
	}
	if g4.Connected(0, 3) {
		t.Error("Conn4: (0,0) and (1,1) must not be connected")
	}

	g8, _ := Parse(rows, Conn8)
	if n := len(g8.Components()); n != 1 {
		t.Errorf("Conn8: got %d components; want 1", n)
	}
	if !g8.Connected(0, 3) {
		t.Error("Conn8: (0,0) and (1,1) must be connected")
	}
}

// TestComponents_AllWalls tests edge cases:
//   - only walls → zero components, nothing connected
//   - start and end kinds count as passable
func TestComponents_AllWalls(t *testing.T) {
	g, _ := Parse([]string{"##", "##"}, Conn8)
	if n := len(g.Components()); n != 0 {
		t.Errorf("all walls: got %d components; want 0", n)
	}
	if g.Connected(0, 0) {
		t.Error("a wall must not be connected to itself")
	}

	g2, _ := Parse([]string{"S*E"}, Conn4)
	comps := g2.Components()
	if len(comps) != 1 || !reflect.DeepEqual(comps[0], []int{0, 1, 2}) {
		t.Errorf("marked cells: components = %v; want [[0 1 2]]", comps)
	}
}
