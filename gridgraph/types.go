// Package gridgraph defines core types for the gridgraph subpackage of
// github.com/katalvlaran/gridpath.
package gridgraph

import "fmt"

// Open is the grid value of a traversable cell. Every other value is blocked.
const Open = 0

// Blocked is the canonical grid value of an obstacle.
const Blocked = 1

// Cell is a zero-indexed (row, col) coordinate. It is a comparable value type
// and is used directly as a map key.
type Cell struct {
	Row, Col int
}

// C is shorthand for Cell{Row: row, Col: col}.
func C(row, col int) Cell {
	return Cell{Row: row, Col: col}
}

// Add returns the cell displaced by o.
func (c Cell) Add(o Offset) Cell {
	return Cell{Row: c.Row + o.DRow, Col: c.Col + o.DCol}
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Offset is a single-step displacement between neighboring cells.
type Offset struct {
	DRow, DCol int
}

// Diagonal reports whether the offset moves along both axes.
func (o Offset) Diagonal() bool {
	return o.DRow != 0 && o.DCol != 0
}

// neighborOffsets lists the 8 moves: orthogonal first, then diagonal.
// Search order depends on this sequence, so it must stay fixed.
var neighborOffsets = [8]Offset{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// GridGraph treats a 2D obstacle grid as an 8-connected graph. It is immutable once built.
// Rows and Cols define dimensions; values[r][c] holds the original input value and
// costs[r][c] the raw cost to enter the cell (nil when the grid has uniform cost).
type GridGraph struct {
	rows, cols int
	values     [][]int
	costs      [][]float64
}
