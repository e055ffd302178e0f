// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/gridpath.
package gridgraph

import "math"

// Kind classifies a single grid location. Kinds are mutually exclusive.
type Kind uint8

const (
	// Background is an ordinary passable cell.
	Background Kind = iota
	// Wall is an impassable cell. Its G score is pinned at 0.
	Wall
	// Start marks the search origin.
	Start
	// End marks the search goal.
	End
	// Path marks an intermediate cell of a reconstructed path.
	Path
)

// glyphs maps each Kind to its single-rune ASCII form.
var glyphs = [...]rune{
	Background: '.',
	Wall:       '#',
	Start:      'S',
	End:        'E',
	Path:       '*',
}

// String returns a human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case Background:
		return "background"
	case Wall:
		return "wall"
	case Start:
		return "start"
	case End:
		return "end"
	case Path:
		return "path"
	default:
		return "unknown"
	}
}

// Glyph returns the ASCII rune used by Parse and (*Grid).String for k.
func (k Kind) Glyph() rune {
	if int(k) < len(glyphs) {
		return glyphs[k]
	}
	return '?'
}

// KindOf returns the Kind whose glyph is r.
func KindOf(r rune) (Kind, bool) {
	for k, g := range glyphs {
		if g == r {
			return Kind(k), true
		}
	}
	return Background, false
}

// Passable reports whether a search may enter a cell of kind k.
func (k Kind) Passable() bool { return k != Wall }

// Cell is one grid location: its classification and search bookkeeping.
//
//	G – best known cost from the start (+Inf until discovered, 0 for walls).
//	H – heuristic estimate of the remaining cost to the end.
//	F – G + H, the open-set ordering key.
type Cell struct {
	Kind    Kind
	X, Y    int // Coordinates within the grid; fixed at construction
	G, H, F float64
}

// Unscored reports whether the cell has not been reached by any search yet.
func (c *Cell) Unscored() bool { return math.IsInf(c.G, 1) }

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8 Connectivity = iota
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4
)

// String returns "conn8" or "conn4".
func (c Connectivity) String() string {
	if c == Conn4 {
		return "conn4"
	}
	return "conn8"
}

// WallPolicy classifies cells at construction time. It is invoked once per
// cell in row-major order and returns true when the cell must be a Wall.
type WallPolicy func(x, y int) bool

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Walls, if non-nil, decides which cells start out as walls.
	Walls WallPolicy
}

// DefaultGridOptions returns a GridOptions with default settings:
// Conn=Conn8, no walls.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn:  Conn8,
		Walls: nil,
	}
}

// Grid is a fixed-size, row-major arena of cells. Index i addresses the cell
// at (i % Columns, i / Columns). Dimensions never change after construction.
// neighborOffsets is precomputed for efficient adjacency lookups.
type Grid struct {
	columns, rows   int
	cells           []Cell
	conn            Connectivity
	neighborOffsets [][2]int
}
