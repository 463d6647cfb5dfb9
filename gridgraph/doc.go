// Package gridgraph treats a 2D obstacle map with optional terrain costs as an
// 8-connected graph, the input model for weighted grid path finding.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int obstacle map (0 = open, anything else = blocked)
//     and an optional [][]float64 cost map giving the cost to *enter* each cell.
//   - EnterCost clamps every cost below 1 up to 1, so the octile heuristic stays admissible.
//   - Identifies connected components of open cells under 8-connectivity.
//   - Computes minimal obstacle breaches (0-1 BFS) between two cells.
//
// Why:
//
//   - Game maps, robotics simulators, office-layout routing.
//   - Fast reachability pre-checks before running a full A* search.
//   - Diagnostics: how many walls separate two disconnected rooms.
//
// Complexity:
//
//   - NewGridGraph:        O(R×C) time and memory (deep copy).
//   - ConnectedComponents: O(R×C×8), Memory: O(R×C).
//   - Breach:              O(R×C×8), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrCostShape: cost map dimensions differ from the grid.
//   - ErrOutOfBounds: a cell lies outside the grid.
//   - ErrNoPath: no breach path exists between two cells.
package gridgraph
