package astar

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// PathCost re-computes the accumulated cost of path on g using the same move
// model as Search: each step costs EnterCost(next) × (1.0 orthogonal | DiagonalCost diagonal).
// The first cell contributes nothing. An empty or single-cell path costs 0.
//
// Returns ErrNilGrid for a nil grid, ErrOutOfBounds for a cell outside it,
// ErrBlockedEndpoint for a blocked first or last cell, ErrBlockedStep for a
// blocked interior cell and ErrInvalidStep when two consecutive cells are not
// 8-neighbors.
func PathCost(g *gridgraph.GridGraph, path []gridgraph.Cell) (float64, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	var total float64
	last := len(path) - 1
	for i, c := range path {
		switch {
		case i == 0 || i == last:
			if err := checkEndpoint(g, fmt.Sprintf("path[%d]", i), c); err != nil {
				return 0, err
			}
		case !g.InBounds(c):
			return 0, fmt.Errorf("%w: path[%d] %s outside %dx%d grid", ErrOutOfBounds, i, c, g.Rows(), g.Cols())
		case g.Blocked(c):
			return 0, fmt.Errorf("%w: path[%d] %s", ErrBlockedStep, i, c)
		}
		if i == 0 {
			continue
		}
		prev := path[i-1]
		dr, dc := abs(c.Row-prev.Row), abs(c.Col-prev.Col)
		switch {
		case dr > 1 || dc > 1 || dr+dc == 0:
			return 0, fmt.Errorf("%w: %s → %s", ErrInvalidStep, prev, c)
		case dr == 1 && dc == 1:
			total += g.EnterCost(c) * DiagonalCost
		default:
			total += g.EnterCost(c) * OrthogonalCost
		}
	}

	return total, nil
}

// Steps returns the number of moves in path: len(path)-1, or 0 for an empty path.
func Steps(path []gridgraph.Cell) int {
	if len(path) == 0 {
		return 0
	}

	return len(path) - 1
}
