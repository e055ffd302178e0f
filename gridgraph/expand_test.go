// File: gridgraph/expand_test.go
package gridgraph

import (
	"errors"
	"reflect"
	"testing"
)

// TestEnsurePassage_SingleWall tests a 1×3 row with one wall between the ends.
// Grid: ". # .", Conn8
// Expected: the middle wall is cleared.
func TestEnsurePassage_SingleWall(t *testing.T) {
	g, err := Parse([]string{".#."}, Conn8)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	cleared, err := g.EnsurePassage(0, 2)
	if err != nil {
		t.Fatalf("EnsurePassage error: %v", err)
	}
	if want := []int{1}; !reflect.DeepEqual(cleared, want) {
		t.Errorf("cleared = %v; want %v", cleared, want)
	}
	if got := g.String(); got != "..." {
		t.Errorf("grid = %q; want %q", got, "...")
	}
	if !g.cells[1].Unscored() {
		t.Errorf("cleared cell G = %v; want +Inf", g.cells[1].G)
	}
}

// TestEnsurePassage_WallColumn tests a full-height wall column; exactly one
// wall must go under either connectivity.
func TestEnsurePassage_WallColumn(t *testing.T) {
	rows := []string{
		"..#..",
		"..#..",
		"..#..",
	}
	for _, conn := range []Connectivity{Conn4, Conn8} {
		g, _ := Parse(rows, conn)
		from, to := g.index(0, 1), g.index(4, 1)
		if g.Connected(from, to) {
			t.Fatalf("%s: precondition: cells already connected", conn)
		}
		cleared, err := g.EnsurePassage(from, to)
		if err != nil {
			t.Fatalf("%s: EnsurePassage error: %v", conn, err)
		}
		if len(cleared) != 1 {
			t.Errorf("%s: cleared %d walls; want 1", conn, len(cleared))
		}
		if !g.Connected(from, to) {
			t.Errorf("%s: cells still disconnected after EnsurePassage", conn)
		}
	}
}

// TestEnsurePassage_AlreadyConnected expects nothing to be cleared.
func TestEnsurePassage_AlreadyConnected(t *testing.T) {
	g, _ := Parse([]string{
		".#.",
		"...",
	}, Conn4)
	cleared, err := g.EnsurePassage(0, 2)
	if err != nil {
		t.Fatalf("EnsurePassage error: %v", err)
	}
	if len(cleared) != 0 {
		t.Errorf("cleared = %v; want none", cleared)
	}
	if g.Count(Wall) != 1 {
		t.Errorf("walls = %d; want 1", g.Count(Wall))
	}
}

// TestEnsurePassage_BadIndex verifies index validation.
func TestEnsurePassage_BadIndex(t *testing.T) {
	g, _ := Parse([]string{".."}, Conn8)
	if _, err := g.EnsurePassage(0, 2); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("got %v; want ErrOutOfBounds", err)
	}
	if _, err := g.EnsurePassage(-1, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("got %v; want ErrOutOfBounds", err)
	}
}
