// Package gridgraph provides a dense, row-major grid of cells that the
// astar package searches. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Wall placement through a WallPolicy at construction
//   - Coordinate/index conversion and neighbor enumeration
//   - Passable-region labelling and minimal wall clearing
//
// Wall cells are impassable; every other kind may be entered.
package gridgraph

import (
	"fmt"
	"math"
	"strings"
)

var (
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
)

// NewGrid allocates a columns×rows grid. Each cell is classified Wall or
// Background by opts.Walls (all Background when nil) and scored so that
// walls hold G = 0 and every other cell holds G = +Inf.
// Returns ErrBadDimensions if columns or rows is not positive.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(columns, rows int, opts GridOptions) (*Grid, error) {
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, columns, rows)
	}
	g := newGrid(columns, rows, opts.Conn)
	for i := range g.cells {
		x, y := g.Coordinate(i)
		g.cells[i] = Cell{Kind: Background, X: x, Y: y}
		if opts.Walls != nil && opts.Walls(x, y) {
			g.cells[i].Kind = Wall
		}
	}
	g.ResetScores()

	return g, nil
}

// Parse builds a grid from equal-length ASCII rows, one rune per cell
// ('.' background, '#' wall, 'S' start, 'E' end, '*' path).
// Returns ErrBadDimensions for empty input, ErrNonRectangular if any row
// length differs and ErrUnknownGlyph for unrecognized runes.
func Parse(rows []string, conn Connectivity) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadDimensions
	}
	w := len([]rune(rows[0]))
	for _, row := range rows {
		if len([]rune(row)) != w {
			return nil, ErrNonRectangular
		}
	}
	g := newGrid(w, len(rows), conn)
	for y, row := range rows {
		for x, r := range []rune(row) {
			k, ok := KindOf(r)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownGlyph, r, x, y)
			}
			g.cells[g.index(x, y)] = Cell{Kind: k, X: x, Y: y}
		}
	}
	g.ResetScores()

	return g, nil
}

func newGrid(columns, rows int, conn Connectivity) *Grid {
	offsets := offsets8
	if conn == Conn4 {
		offsets = offsets4
	}
	return &Grid{
		columns:         columns,
		rows:            rows,
		cells:           make([]Cell, columns*rows),
		conn:            conn,
		neighborOffsets: offsets,
	}
}

// Columns returns the grid width.
func (g *Grid) Columns() int { return g.columns }

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Len returns the number of cells, Columns×Rows.
func (g *Grid) Len() int { return len(g.cells) }

// Conn returns the connectivity the grid was built with.
func (g *Grid) Conn() Connectivity { return g.conn }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.columns && y >= 0 && y < g.rows
}

// Index maps in-bounds (x,y) to its row-major index: y*Columns + x.
// Callers must pass in-bounds coordinates; see InBounds.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return g.index(x, y)
}

func (g *Grid) index(x, y int) int {
	return y*g.columns + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.columns, idx / g.columns
}

// Cell returns the cell at index i. The pointer stays valid for the
// lifetime of the grid.
func (g *Grid) Cell(i int) *Cell {
	return &g.cells[i]
}

// At returns the cell at (x,y), or nil when out of bounds.
func (g *Grid) At(x, y int) *Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.cells[g.index(x, y)]
}

// Cells exposes the arena in row-major order for read access between
// search ticks.
func (g *Grid) Cells() []Cell {
	return g.cells
}

// Mark overwrites the classification of (x,y) and returns its index.
// Scores are left untouched.
func (g *Grid) Mark(x, y int, k Kind) (int, error) {
	if !g.InBounds(x, y) {
		return -1, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, g.columns, g.rows)
	}
	i := g.index(x, y)
	g.cells[i].Kind = k

	return i, nil
}

// SetWall turns (x,y) into a Wall (G pinned at 0) or back into an
// unscored Background cell.
func (g *Grid) SetWall(x, y int, wall bool) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, g.columns, g.rows)
	}
	c := &g.cells[g.index(x, y)]
	if wall {
		c.Kind = Wall
	} else {
		c.Kind = Background
	}
	resetCell(c)

	return nil
}

// Passable reports whether cell i may be entered by a search.
func (g *Grid) Passable(i int) bool {
	return g.cells[i].Kind.Passable()
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (g *Grid) NeighborOffsets() [][2]int {
	return g.neighborOffsets
}

// Neighbors returns the indices of the up-to-8 (Conn8) or up-to-4 (Conn4)
// in-bounds cells adjacent to (x,y), in the fixed order N, NE, E, SE, S,
// SW, W, NW (diagonals omitted under Conn4).
func (g *Grid) Neighbors(x, y int) []int {
	return g.appendNeighbors(make([]int, 0, len(g.neighborOffsets)), x, y)
}

// AppendNeighbors appends the neighbors of cell i to dst and returns the
// extended slice, so hot loops can reuse one buffer.
func (g *Grid) AppendNeighbors(dst []int, i int) []int {
	x, y := g.Coordinate(i)
	return g.appendNeighbors(dst, x, y)
}

func (g *Grid) appendNeighbors(dst []int, x, y int) []int {
	for _, d := range g.neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		dst = append(dst, g.index(nx, ny))
	}
	return dst
}

// ResetScores restores the score invariant: walls get G = 0, every other
// cell G = +Inf; H and F are cleared to match.
// Complexity: O(W×H).
func (g *Grid) ResetScores() {
	for i := range g.cells {
		resetCell(&g.cells[i])
	}
}

func resetCell(c *Cell) {
	if c.Kind == Wall {
		c.G, c.H, c.F = 0, 0, 0
		return
	}
	c.G, c.H, c.F = math.Inf(1), 0, math.Inf(1)
}

// ClearMarks relabels every Start, End and Path cell as Background and
// resets all scores, leaving only the wall layout.
func (g *Grid) ClearMarks() {
	for i := range g.cells {
		switch g.cells[i].Kind {
		case Start, End, Path:
			g.cells[i].Kind = Background
		}
	}
	g.ResetScores()
}

// Count returns the number of cells of kind k.
func (g *Grid) Count(k Kind) int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Kind == k {
			n++
		}
	}
	return n
}

// String renders the grid as ASCII rows of glyphs joined by newlines.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.columns + 1))
	for y := 0; y < g.rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.columns; x++ {
			sb.WriteRune(g.cells[g.index(x, y)].Kind.Glyph())
		}
	}
	return sb.String()
}
