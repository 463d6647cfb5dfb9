package scenario

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Random generates a rows×cols scenario with roughly Density% obstacles and
// integer terrain costs in [1, MaxCost]. Start is the top-left corner, goal the
// bottom-right corner; both are always open. The same non-zero Seed always
// yields the same scenario. Each call draws from its own source.
func Random(opts RandomOptions) (*Scenario, error) {
	if opts.Rows < 1 || opts.Cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d grid", ErrBadDimensions, opts.Rows, opts.Cols)
	}
	if opts.Density < 0 || opts.Density > 100 {
		return nil, fmt.Errorf("%w: density %d", ErrBadDimensions, opts.Density)
	}
	if opts.MaxCost < 1 {
		return nil, fmt.Errorf("%w: max cost %d", ErrBadDimensions, opts.MaxCost)
	}

	f := gofakeit.New(uint64(opts.Seed))
	grid := make([][]int, opts.Rows)
	costs := make([][]float64, opts.Rows)
	for r := 0; r < opts.Rows; r++ {
		grid[r] = make([]int, opts.Cols)
		costs[r] = make([]float64, opts.Cols)
		for c := 0; c < opts.Cols; c++ {
			if f.Number(1, 100) <= opts.Density {
				grid[r][c] = gridgraph.Blocked
			}
			costs[r][c] = float64(f.Number(1, opts.MaxCost))
		}
	}
	start := gridgraph.C(0, 0)
	goal := gridgraph.C(opts.Rows-1, opts.Cols-1)
	grid[start.Row][start.Col] = gridgraph.Open
	grid[goal.Row][goal.Col] = gridgraph.Open

	s := &Scenario{
		Name:  fmt.Sprintf("random-%dx%d-seed%d", opts.Rows, opts.Cols, opts.Seed),
		Grid:  grid,
		Start: pairOf(start),
		Goal:  pairOf(goal),
	}
	if opts.MaxCost > 1 {
		s.Costs = costs
	}

	return s, nil
}
