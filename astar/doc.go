// Package astar provides an informed best-first (A*) shortest-path search over
// 8-connected weighted grids built with gridpath/gridgraph.
//
// Overview:
//
//   - Movement is allowed in 8 directions. Orthogonal moves cost 1.0, diagonal
//     moves cost DiagonalCost (1.414), and both are scaled by the cost of
//     *entering* the destination cell (gridgraph.GridGraph.EnterCost, always ≥ 1).
//   - The default heuristic is the octile distance, which is admissible and
//     consistent for these move costs, so the first goal pop is cost-optimal.
//   - The frontier is a binary min-heap ordered by (estimated total cost,
//     insertion sequence); equal estimates are popped in FIFO order, which makes
//     results reproducible.
//   - Improvements are handled by lazy decrease-key: a better cost pushes a fresh
//     entry and stale entries are discarded at pop time using the settled map.
//
// Entry points:
//
//   - FindPath: the forgiving API. Never errors; returns (nil, false) for invalid
//     input or an unreachable goal.
//   - Search:   the strict API. Returns a Result with path, cost and counters, or
//     a sentinel error telling malformed input apart from unreachability.
//   - PathCost: re-computes the cost of any 8-connected path on a grid.
//
// Options:
//
//   - WithHeuristic(h):        Octile (default) or Zero (uniform-cost / Dijkstra order).
//   - WithMaxExpansions(n):    abort after n settled cells with ErrExpansionLimit.
//   - WithReachabilityCheck(): reject disconnected endpoints before searching.
//   - WithOnExpand / WithOnPush: synchronous observation hooks.
//
// Errors (sentinel):
//
//   - ErrNilGrid          the grid pointer is nil.
//   - ErrOutOfBounds      start or goal lies outside the grid.
//   - ErrBlockedEndpoint  start or goal is an obstacle.
//   - ErrNoPath           the frontier was exhausted without reaching the goal.
//   - ErrExpansionLimit   WithMaxExpansions bound was hit.
//   - ErrOptionViolation  an invalid option was supplied.
//   - ErrInvalidStep      PathCost found two consecutive cells that are not neighbors.
//   - ErrBlockedStep      PathCost found an obstacle inside the path.
//
// Complexity:
//
//   - Time:  O(N log N) for N = rows×cols open cells (each cell pushes at most
//     once per improvement, at most 8 improvements per expansion).
//   - Space: O(N) for the cost, predecessor and settled maps plus the heap.
//
// Thread safety:
//
//   - A search owns all of its state and runs synchronously on the caller's
//     goroutine. A *gridgraph.GridGraph is immutable, so independent searches may
//     share one grid concurrently.
package astar
