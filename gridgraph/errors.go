package gridgraph

import "errors"

var (
	// ErrBadDimensions indicates zero or negative columns or rows.
	ErrBadDimensions = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths passed to Parse.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrUnknownGlyph indicates a rune in Parse input that maps to no Kind.
	ErrUnknownGlyph = errors.New("gridgraph: unknown cell glyph")
	// ErrOutOfBounds indicates coordinates or an index outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinates out of bounds")
)
