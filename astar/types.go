// Package astar defines core types, options and sentinel errors for A*
// search over weighted 8-connected grids.
package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by Search and PathCost.
var (
	// ErrNilGrid indicates that a nil *gridgraph.GridGraph was passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOutOfBounds indicates that start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("astar: cell out of bounds")

	// ErrBlockedEndpoint indicates that start or goal is an obstacle.
	ErrBlockedEndpoint = errors.New("astar: endpoint is blocked")

	// ErrNoPath indicates that the goal is unreachable from the start.
	ErrNoPath = errors.New("astar: no path found")

	// ErrExpansionLimit indicates that the search stopped after MaxExpansions settled cells.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrInvalidStep indicates two consecutive path cells that are not 8-neighbors.
	ErrInvalidStep = errors.New("astar: consecutive cells are not neighbors")

	// ErrBlockedStep indicates an interior path cell that is an obstacle.
	ErrBlockedStep = errors.New("astar: path crosses a blocked cell")
)

const (
	// OrthogonalCost is the base cost of a horizontal or vertical move.
	OrthogonalCost = 1.0

	// DiagonalCost is the base cost of a diagonal move (≈√2).
	DiagonalCost = 1.414
)

// Result holds the outcome of a search. Path and Cost are set only when a path
// was found; the counters are filled on failures too (ErrNoPath, ErrExpansionLimit):
//   - Path:     cells from start to goal inclusive.
//   - Cost:     accumulated cost of Path.
//   - Expanded: number of cells settled (popped and expanded, goal excluded).
//   - Pushed:   number of frontier insertions, including the start entry.
type Result struct {
	Path     []gridgraph.Cell
	Cost     float64
	Expanded int
	Pushed   int
}

// Steps returns the number of moves in the path (0 for a single-cell path).
func (r Result) Steps() int {
	return Steps(r.Path)
}

// Option configures Search via functional arguments.
// If an Option is invalid (e.g. negative limit), it is recorded internally
// and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks that customize Search.
type Options struct {
	// Heuristic estimates the remaining cost to the goal. Default Octile.
	Heuristic Heuristic

	// MaxExpansions, if > 0, aborts the search with ErrExpansionLimit once this
	// many cells have been settled. Zero disables the limit.
	MaxExpansions int

	// ReachabilityCheck rejects endpoints in different components of open
	// cells with ErrNoPath before any heap work is done.
	ReachabilityCheck bool

	// OnExpand is called when a cell is settled, with its accumulated cost.
	OnExpand func(c gridgraph.Cell, g float64)

	// OnPush is called when a cell enters the frontier, with its estimated total cost.
	OnPush func(c gridgraph.Cell, f float64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Octile heuristic
//   - no expansion limit
//   - no reachability pre-check
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Heuristic:         Octile,
		MaxExpansions:     0,
		ReachabilityCheck: false,
		OnExpand:          func(gridgraph.Cell, float64) {},
		OnPush:            func(gridgraph.Cell, float64) {},
	}
}

// WithHeuristic replaces the octile heuristic. A nil heuristic is an option violation.
// Non-admissible heuristics void the optimality guarantee.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic is nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithMaxExpansions bounds the number of settled cells.
//
//	n > 0: limit to n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithReachabilityCheck enables the connected-component pre-check.
func WithReachabilityCheck() Option {
	return func(o *Options) {
		o.ReachabilityCheck = true
	}
}

// WithOnExpand registers a callback to run when a cell is settled.
func WithOnExpand(fn func(c gridgraph.Cell, g float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnPush registers a callback to run when a cell is pushed onto the frontier.
func WithOnPush(fn func(c gridgraph.Cell, f float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}
