package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// Parse decodes and validates a YAML scenario.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}

	return s, nil
}

// Marshal encodes the scenario as YAML.
func (s *Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// Save writes the scenario to path as YAML.
func (s *Scenario) Save(path string) error {
	data, err := s.Marshal()
	if err != nil {
		return fmt.Errorf("scenario: encode: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// Validate checks the structural fields. Grid shape, bounds and obstacle
// checks are left to Graph and the search itself.
func (s *Scenario) Validate() error {
	if len(s.Grid) == 0 {
		return ErrMissingGrid
	}
	if len(s.Start) != 2 {
		return fmt.Errorf("%w: start %v", ErrBadCoordinate, s.Start)
	}
	if len(s.Goal) != 2 {
		return fmt.Errorf("%w: goal %v", ErrBadCoordinate, s.Goal)
	}
	for i, o := range s.Obstacles {
		if len(o) != 2 {
			return fmt.Errorf("%w: obstacles[%d] %v", ErrBadCoordinate, i, o)
		}
	}

	return nil
}

// StartCell returns the start coordinate. The scenario must be valid.
func (s *Scenario) StartCell() gridgraph.Cell { return cellOf(s.Start) }

// GoalCell returns the goal coordinate. The scenario must be valid.
func (s *Scenario) GoalCell() gridgraph.Cell { return cellOf(s.Goal) }

// Graph builds the immutable grid with every extra obstacle applied.
func (s *Scenario) Graph() (*gridgraph.GridGraph, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	gg, err := gridgraph.NewGridGraph(s.Grid, s.Costs)
	if err != nil {
		return nil, err
	}
	if len(s.Obstacles) == 0 {
		return gg, nil
	}
	extra := make([]gridgraph.Cell, len(s.Obstacles))
	for i, o := range s.Obstacles {
		extra[i] = cellOf(o)
	}

	return gg.WithObstacles(extra...)
}

// Run builds the grid and searches it. Search failures (blocked endpoints,
// unreachable goal, expansion limit) are reported in the Report; only
// malformed scenarios return an error.
func (s *Scenario) Run(opts ...astar.Option) (*gridgraph.GridGraph, astar.Result, Report, error) {
	gg, err := s.Graph()
	if err != nil {
		return nil, astar.Result{}, Report{}, err
	}
	res, err := astar.Search(gg, s.StartCell(), s.GoalCell(), opts...)
	if errors.Is(err, astar.ErrOptionViolation) {
		return nil, astar.Result{}, Report{}, err
	}

	return gg, res, NewReport(s.Name, res, err), nil
}

// NewReport summarizes a search outcome.
func NewReport(name string, res astar.Result, err error) Report {
	rep := Report{
		Name:     name,
		Found:    err == nil,
		Expanded: res.Expanded,
		Pushed:   res.Pushed,
	}
	if err != nil {
		rep.Error = err.Error()
		return rep
	}
	rep.Cost = res.Cost
	rep.Steps = res.Steps()
	rep.Path = make([][]int, len(res.Path))
	for i, c := range res.Path {
		rep.Path[i] = pairOf(c)
	}

	return rep
}
