package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrCostShape indicates a cost map whose dimensions differ from the grid.
	ErrCostShape = errors.New("gridgraph: cost map must have the same shape as the grid")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrNoPath indicates no breach path exists between two cells.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
)
