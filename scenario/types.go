package scenario

import (
	"errors"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors for scenario validation.
var (
	// ErrMissingGrid indicates a scenario without grid rows.
	ErrMissingGrid = errors.New("scenario: grid is missing")

	// ErrBadCoordinate indicates a coordinate that is not a [row, col] pair.
	ErrBadCoordinate = errors.New("scenario: coordinate must be a [row, col] pair")

	// ErrBadDimensions indicates random-generation options with non-positive size,
	// density outside [0,100] or MaxCost below 1.
	ErrBadDimensions = errors.New("scenario: invalid random scenario options")
)

// Scenario is one path-finding problem.
type Scenario struct {
	Name      string      `yaml:"name"`
	Grid      [][]int     `yaml:"grid"`
	Costs     [][]float64 `yaml:"costs,omitempty"`
	Start     []int       `yaml:"start"`
	Goal      []int       `yaml:"goal"`
	Obstacles [][]int     `yaml:"obstacles,omitempty"`
}

// Report is the serializable outcome of running a scenario.
type Report struct {
	Name     string  `yaml:"name"`
	Found    bool    `yaml:"found"`
	Error    string  `yaml:"error,omitempty"`
	Cost     float64 `yaml:"cost"`
	Steps    int     `yaml:"steps"`
	Expanded int     `yaml:"expanded"`
	Pushed   int     `yaml:"pushed"`
	Path     [][]int `yaml:"path,omitempty"`
}

// RandomOptions controls Random.
type RandomOptions struct {
	// Rows and Cols are the grid dimensions (≥ 1).
	Rows, Cols int
	// Density is the percentage of cells turned into obstacles, 0..100.
	Density int
	// MaxCost is the largest terrain cost drawn, ≥ 1. 1 means uniform terrain.
	MaxCost int
	// Seed makes generation reproducible. 0 picks a random seed.
	Seed int64
}

// DefaultRandomOptions returns a 10×10 grid with 25% obstacles and costs up to 3.
func DefaultRandomOptions() RandomOptions {
	return RandomOptions{Rows: 10, Cols: 10, Density: 25, MaxCost: 3, Seed: 0}
}

// cellOf converts a validated [row, col] pair.
func cellOf(p []int) gridgraph.Cell {
	return gridgraph.C(p[0], p[1])
}

// pairOf converts a cell to a [row, col] pair.
func pairOf(c gridgraph.Cell) []int {
	return []int{c.Row, c.Col}
}
