// Package scenario describes path-finding problems: an obstacle grid, an
// optional terrain cost map, start and goal cells and optional extra obstacles.
//
// Scenarios are stored as YAML:
//
//	name: office
//	grid:
//	  - [0, 0, 0, 1, 0]
//	  - [0, 1, 0, 1, 0]
//	costs:
//	  - [1, 2, 1, 1, 1]
//	  - [1, 1, 1, 1, 1]
//	start: [0, 0]
//	goal: [1, 4]
//	obstacles:
//	  - [0, 2]
//
// The package also ships the built-in office floor plan used by the demo and
// a seeded random scenario generator.
package scenario
