// Package gridgraph models a fixed-size planar grid of cells as an
// index-addressed arena, the data model searched by package astar.
//
// What:
//
//   - Grid owns Columns×Rows cells stored row-major: index = y*Columns + x.
//   - Each Cell carries a Kind (Background, Wall, Start, End, Path) and the
//     search bookkeeping G, H, F.
//   - Neighbors enumerates in-bounds adjacent cells under Conn8 (default)
//     or Conn4.
//   - Components labels regions of passable cells; EnsurePassage clears the
//     fewest walls needed to connect two cells (0-1 BFS).
//
// Why:
//
//   - Integer indices into one dense slice: no pointers between cells,
//     O(1) lookups, trivially copyable snapshots.
//
// Score invariant:
//
//   - Before a search step, every Wall has G = 0 and every other cell has
//     G = +Inf. NewGrid establishes it; ResetScores restores it.
//
// Complexity:
//
//   - NewGrid, ResetScores, Components, EnsurePassage: O(W×H×d) time,
//     O(W×H) memory (d = 4 or 8).
//   - Index, Coordinate, Mark, Neighbors: O(1).
//
// Errors:
//
//   - ErrBadDimensions: zero or negative columns or rows.
//   - ErrNonRectangular, ErrUnknownGlyph: malformed Parse input.
//   - ErrOutOfBounds: checked setup calls given coordinates outside the grid.
package gridgraph
