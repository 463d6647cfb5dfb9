// Package render turns a grid and a returned path into human-readable output.
// It is a pure post-processing step: nothing in the search depends on it.
//
//   - Grid:  text map, S = start, G = goal, * = path, # = wall, . = open floor.
//   - Costs: the raw terrain cost table.
//   - DOT:   a Graphviz graph of the open cells with the path highlighted.
package render
