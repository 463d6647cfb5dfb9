// Package gridpath finds cheapest 8-connected paths on 2-D occupancy grids.
//
// What is gridpath?
//
//	A small, pure-Go toolkit built around one A* search:
//		• Grids: rectangular occupancy grids with optional per-cell terrain costs
//		• Search: A* with an octile heuristic, deterministic tie-breaking and hooks
//		• Analysis: connected regions of open cells, fewest-walls breach between cells
//		• Scenarios: YAML scenario files, the built-in office floor plan, random grids
//		• Rendering: styled terminal grids and Graphviz DOT
//
// Layout:
//
//	gridgraph/      grid model, neighbor offsets, components, breach
//	astar/          FindPath, Search, heuristics, path cost
//	scenario/       YAML scenarios, built-in runs, random generation, reports
//	render/         lipgloss text view and gographviz DOT export
//	cmd/gridpath/   command-line front end (cobra)
//	examples/       runnable programs
//
// Quick example:
//
//	path, ok := astar.FindPath(grid, costs, gridgraph.C(0, 0), gridgraph.C(4, 4))
//
// returns the cheapest cell sequence from the top-left to the bottom-right
// corner, or ok == false when no route exists.
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
