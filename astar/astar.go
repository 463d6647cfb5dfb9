// Package astar implements A* search with lazy decrease-key on 8-connected grids.
//
// Notes on implementation choices:
//
//   - Endpoints are validated up front: out-of-bounds and blocked cells fail fast.
//   - The goal test happens at pop time, so the first goal pop is optimal.
//   - Ties on estimated total cost are broken by insertion sequence (FIFO).
//   - Neighbors are expanded in the fixed gridgraph offset order, which together
//     with the sequence counter makes every search deterministic.
package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// FindPath searches values (0 = open, otherwise blocked) with the optional cost
// map costs for a minimum-cost path from start to goal.
//
// It never returns an error: an empty or ragged grid, a mismatched cost map, an
// endpoint outside the grid or on an obstacle, and an unreachable goal are all
// reported as (nil, false). Use Search to tell these cases apart.
func FindPath(values [][]int, costs [][]float64, start, goal gridgraph.Cell) ([]gridgraph.Cell, bool) {
	gg, err := gridgraph.NewGridGraph(values, costs)
	if err != nil {
		return nil, false
	}
	res, err := Search(gg, start, goal)
	if err != nil {
		return nil, false
	}

	return res.Path, true
}

// Search computes a minimum-cost path from start to goal on g.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. start and goal must lie inside g (ErrOutOfBounds).
//  4. start and goal must be open cells (ErrBlockedEndpoint).
//  5. With WithReachabilityCheck, start and goal must share a component (ErrNoPath).
//
// Returns ErrNoPath when the frontier is exhausted and ErrExpansionLimit when the
// MaxExpansions bound is hit. Start equal to goal yields a single-cell path of cost 0.
//
// Complexity:
//
//   - Time:  O(N log N), N = open cells
//   - Space: O(N)
func Search(g *gridgraph.GridGraph, start, goal gridgraph.Cell, opts ...Option) (Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	// 2) Validate endpoints
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if err := checkEndpoint(g, "start", start); err != nil {
		return Result{}, err
	}
	if err := checkEndpoint(g, "goal", goal); err != nil {
		return Result{}, err
	}
	if cfg.ReachabilityCheck && !g.Connected(start, goal) {
		return Result{}, fmt.Errorf("%w: %s and %s are in different components", ErrNoPath, start, goal)
	}

	// 3) Run
	r := &runner{
		g:        g,
		options:  cfg,
		goal:     goal,
		bestCost: make(map[gridgraph.Cell]float64),
		cameFrom: make(map[gridgraph.Cell]gridgraph.Cell),
		settled:  make(map[gridgraph.Cell]float64),
	}
	r.init(start)

	return r.process()
}

// checkEndpoint validates that c is an in-bounds, open cell.
func checkEndpoint(g *gridgraph.GridGraph, name string, c gridgraph.Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s %s outside %dx%d grid", ErrOutOfBounds, name, c, g.Rows(), g.Cols())
	}
	if g.Blocked(c) {
		return fmt.Errorf("%w: %s %s", ErrBlockedEndpoint, name, c)
	}

	return nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g        *gridgraph.GridGraph              // The input grid; read-only.
	options  Options                           // Heuristic, limits and hooks.
	goal     gridgraph.Cell                    // Target cell.
	bestCost map[gridgraph.Cell]float64        // Lowest known accumulated cost per cell.
	cameFrom map[gridgraph.Cell]gridgraph.Cell // Predecessor on the best known path.
	settled  map[gridgraph.Cell]float64        // Cost at which a cell was finalized.
	pq       frontier                          // Min-heap of (f, seq, cell).
	seq      int                               // Next insertion sequence number.
	expanded int                               // Cells settled so far.
}

// init sets bestCost[start] = 0 and pushes the start entry with sequence 0.
func (r *runner) init(start gridgraph.Cell) {
	r.bestCost[start] = 0
	heap.Init(&r.pq)
	r.push(start, r.options.Heuristic(start, r.goal))
}

// push inserts c with estimated total cost f and the next sequence number.
func (r *runner) push(c gridgraph.Cell, f float64) {
	heap.Push(&r.pq, entry{f: f, seq: r.seq, cell: c})
	r.seq++
	r.options.OnPush(c, f)
}

// process is the main loop: pop the cheapest entry, stop at the goal, skip stale
// entries, settle and relax the rest.
func (r *runner) process() (Result, error) {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest (f, seq) entry.
		cur := heap.Pop(&r.pq).(entry).cell

		// 2) Goal reached: the first goal pop is optimal.
		if cur == r.goal {
			return Result{
				Path:     reconstructPath(r.cameFrom, cur),
				Cost:     r.bestCost[cur],
				Expanded: r.expanded,
				Pushed:   r.seq,
			}, nil
		}

		// 3) Skip stale entries of cells already finalized at this cost or less.
		g := r.bestCost[cur]
		if c, ok := r.settled[cur]; ok && c <= g {
			continue
		}

		// 4) Enforce the expansion bound before doing more work.
		if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
			return Result{Expanded: r.expanded, Pushed: r.seq},
				fmt.Errorf("%w: %d expansions", ErrExpansionLimit, r.expanded)
		}

		// 5) Settle and relax.
		r.settled[cur] = g
		r.expanded++
		r.options.OnExpand(cur, g)
		r.relax(cur, g)
	}

	return Result{Expanded: r.expanded, Pushed: r.seq}, ErrNoPath
}

// relax examines the 8 neighbors of cur (accumulated cost g) and pushes every
// neighbor whose cost strictly improves.
func (r *runner) relax(cur gridgraph.Cell, g float64) {
	for _, d := range r.g.NeighborOffsets() {
		nb := cur.Add(d)
		if !r.g.Passable(nb) {
			continue // outside the grid or a wall
		}

		move := OrthogonalCost
		if d.Diagonal() {
			move = DiagonalCost
		}
		candidate := g + r.g.EnterCost(nb)*move

		// Unseen cells have infinite cost. “<” keeps the earliest predecessor on ties.
		best, seen := r.bestCost[nb]
		if !seen {
			best = math.Inf(1)
		}
		if candidate >= best {
			continue
		}

		r.bestCost[nb] = candidate
		r.cameFrom[nb] = cur
		r.push(nb, candidate+r.options.Heuristic(nb, r.goal))
	}
}

// reconstructPath walks predecessor links back from terminal until a cell with
// no predecessor (the start) is reached, then reverses the sequence.
// Complexity: O(path length).
func reconstructPath(cameFrom map[gridgraph.Cell]gridgraph.Cell, terminal gridgraph.Cell) []gridgraph.Cell {
	path := []gridgraph.Cell{terminal}
	for cur := terminal; ; {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get start → terminal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
