package astar

import "github.com/katalvlaran/gridpath/gridgraph"

// Heuristic estimates the remaining cost from a to b. It must be non-negative;
// it must never overestimate the true cost for Search to stay optimal.
type Heuristic func(a, b gridgraph.Cell) float64

// Octile is the exact cost of an optimal path between a and b on an open grid
// with uniform entering cost 1:
//
//	min(|Δrow|,|Δcol|)·DiagonalCost + (max(|Δrow|,|Δcol|) − min(|Δrow|,|Δcol|))·OrthogonalCost
//
// Because every entering cost is at least 1, it is admissible and consistent.
func Octile(a, b gridgraph.Cell) float64 {
	dr, dc := abs(a.Row-b.Row), abs(a.Col-b.Col)
	lo, hi := dr, dc
	if lo > hi {
		lo, hi = hi, lo
	}

	return float64(lo)*DiagonalCost + float64(hi-lo)*OrthogonalCost
}

// Zero always returns 0, turning Search into uniform-cost (Dijkstra) search.
func Zero(_, _ gridgraph.Cell) float64 {
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
