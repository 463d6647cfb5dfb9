// Package gridgraph provides utilities to treat a 2D obstacle grid with
// per-cell entering costs as an 8-connected graph. It supports:
//
//   - Validation of empty, ragged and mismatched cost inputs
//   - Bounds, obstacle and cost lookups for search algorithms
//   - Identification of connected components of open cells
//   - Minimal obstacle breaches between disconnected cells
//
// Cells with value 0 are open; every other value is an obstacle.
package gridgraph

import (
	"fmt"
	"math"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice and an
// optional cost map of the same shape. It deep-copies both inputs to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrCostShape if costs is non-nil
// and does not match the grid dimensions.
// Algorithmic complexity: O(R×C) time and memory.
func NewGridGraph(values [][]int, costs [][]float64) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for r, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, r, len(row), w)
		}
	}
	if costs != nil {
		if len(costs) != h {
			return nil, fmt.Errorf("%w: %d rows, want %d", ErrCostShape, len(costs), h)
		}
		for r, row := range costs {
			if len(row) != w {
				return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrCostShape, r, len(row), w)
			}
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]int, w)
		copy(cells[r], values[r])
	}
	var cm [][]float64
	if costs != nil {
		cm = make([][]float64, h)
		for r := 0; r < h; r++ {
			cm[r] = make([]float64, w)
			copy(cm[r], costs[r])
		}
	}

	return &GridGraph{rows: h, cols: w, values: cells, costs: cm}, nil
}

// From2D constructs a uniform-cost GridGraph from values.
func From2D(values [][]int) (*GridGraph, error) {
	return NewGridGraph(values, nil)
}

// WithObstacles returns a copy of gg with every listed cell blocked.
// Returns ErrOutOfBounds if any cell lies outside the grid.
func (gg *GridGraph) WithObstacles(cells ...Cell) (*GridGraph, error) {
	out, err := NewGridGraph(gg.values, gg.costs)
	if err != nil {
		return nil, err
	}
	for _, c := range cells {
		if !out.InBounds(c) {
			return nil, fmt.Errorf("%w: obstacle %s", ErrOutOfBounds, c)
		}
		out.values[c.Row][c.Col] = Blocked
	}

	return out, nil
}

// Rows returns the grid height.
func (gg *GridGraph) Rows() int { return gg.rows }

// Cols returns the grid width.
func (gg *GridGraph) Cols() int { return gg.cols }

// HasCosts reports whether the grid carries an explicit cost map.
func (gg *GridGraph) HasCosts() bool { return gg.costs != nil }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < gg.rows && c.Col >= 0 && c.Col < gg.cols
}

// Blocked reports whether c is an obstacle. c must be in bounds.
func (gg *GridGraph) Blocked(c Cell) bool {
	return gg.values[c.Row][c.Col] != Open
}

// Passable reports whether c is in bounds and open.
func (gg *GridGraph) Passable(c Cell) bool {
	return gg.InBounds(c) && !gg.Blocked(c)
}

// Value returns the original grid value at c. c must be in bounds.
func (gg *GridGraph) Value(c Cell) int {
	return gg.values[c.Row][c.Col]
}

// Cost returns the raw cost-map value at c, or 1 when the grid has no cost map.
// c must be in bounds.
func (gg *GridGraph) Cost(c Cell) float64 {
	if gg.costs == nil {
		return 1
	}

	return gg.costs[c.Row][c.Col]
}

// EnterCost returns the cost of moving into c, clamped to a minimum of 1.
// NaN is treated as below the minimum. c must be in bounds.
// Complexity: O(1).
func (gg *GridGraph) EnterCost(c Cell) float64 {
	v := gg.Cost(c)
	if v < 1 || math.IsNaN(v) {
		return 1
	}

	return v
}

// NeighborOffsets returns the 8 neighbor offsets in search order:
// (1,0) (-1,0) (0,1) (0,-1) (1,1) (1,-1) (-1,1) (-1,-1).
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [8]Offset {
	return neighborOffsets
}

// Values returns a deep copy of the obstacle grid.
func (gg *GridGraph) Values() [][]int {
	out := make([][]int, gg.rows)
	for r := range out {
		out[r] = append([]int(nil), gg.values[r]...)
	}

	return out
}

// index maps c to a row‑major index: Row*Cols + Col.
// Complexity: O(1).
func (gg *GridGraph) index(c Cell) int {
	return c.Row*gg.cols + c.Col
}

// Coordinate converts a row‑major index back to a Cell.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Cell {
	return Cell{Row: idx / gg.cols, Col: idx % gg.cols}
}
