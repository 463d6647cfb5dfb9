package scenario_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/scenario"
)

const corridorYAML = `
name: corridor
grid:
  - [0, 0, 0]
  - [1, 1, 0]
  - [0, 0, 0]
costs:
  - [1, 1, 1]
  - [1, 1, 3]
  - [1, 1, 1]
start: [0, 0]
goal: [2, 0]
`

func TestParse(t *testing.T) {
	s, err := scenario.Parse([]byte(corridorYAML))
	require.NoError(t, err)

	assert.Equal(t, "corridor", s.Name)
	assert.Equal(t, gridgraph.C(0, 0), s.StartCell())
	assert.Equal(t, gridgraph.C(2, 0), s.GoalCell())
	assert.Equal(t, 3.0, s.Costs[1][2])
	assert.Empty(t, s.Obstacles)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		err  error
	}{
		{"NoGrid", "start: [0, 0]\ngoal: [0, 0]\n", scenario.ErrMissingGrid},
		{"ShortStart", "grid: [[0]]\nstart: [0]\ngoal: [0, 0]\n", scenario.ErrBadCoordinate},
		{"LongGoal", "grid: [[0]]\nstart: [0, 0]\ngoal: [0, 0, 0]\n", scenario.ErrBadCoordinate},
		{"BadObstacle", "grid: [[0]]\nstart: [0, 0]\ngoal: [0, 0]\nobstacles: [[1]]\n", scenario.ErrBadCoordinate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenario.Parse([]byte(tc.yaml))
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := scenario.Parse([]byte("grid: [[0]]\nstart: [0, 0]\ngoal: [0, 0]\nwalls: []\n"))
	assert.Error(t, err, "unknown fields are rejected")

	_, err = scenario.Parse([]byte("grid: {"))
	assert.Error(t, err)
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "office.yaml")

	require.NoError(t, scenario.Office().Save(path))
	loaded, err := scenario.Load(path)
	require.NoError(t, err)
	assert.Equal(t, scenario.Office(), loaded)

	// Unnamed scenarios are named after their file.
	unnamed := filepath.Join(dir, "unnamed.yaml")
	require.NoError(t, os.WriteFile(unnamed, []byte("grid: [[0]]\nstart: [0, 0]\ngoal: [0, 0]\n"), 0o644))
	s, err := scenario.Load(unnamed)
	require.NoError(t, err)
	assert.Equal(t, unnamed, s.Name)

	_, err = scenario.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGraph(t *testing.T) {
	s := scenario.Office()
	s.Obstacles = [][]int{{3, 1}}

	gg, err := s.Graph()
	require.NoError(t, err)
	assert.True(t, gg.Blocked(gridgraph.C(3, 1)))
	assert.Equal(t, 0, s.Grid[3][1], "scenario grid is not mutated")

	s.Obstacles = [][]int{{9, 9}}
	_, err = s.Graph()
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)

	s = scenario.Office()
	s.Grid = [][]int{{0, 0}, {0}}
	_, err = s.Graph()
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)
}

func TestOfficeSuite(t *testing.T) {
	want := map[string]struct {
		path [][]int
		cost float64
	}{
		"office":         {[][]int{{0, 0}, {1, 0}, {2, 0}, {3, 1}, {4, 2}, {4, 3}, {4, 4}}, 8.242},
		"office-reuse":   {[][]int{{0, 0}, {1, 0}, {2, 0}, {3, 1}, {4, 2}, {4, 3}, {4, 4}}, 8.242},
		"office-blocked": {[][]int{{2, 0}, {3, 0}, {4, 1}, {4, 2}, {4, 3}, {4, 4}}, 6.414},
	}

	suite := scenario.OfficeSuite()
	require.Len(t, suite, 3)
	for _, s := range suite {
		t.Run(s.Name, func(t *testing.T) {
			gg, res, rep, err := s.Run()
			require.NoError(t, err)
			require.NotNil(t, gg)
			require.True(t, rep.Found, rep.Error)

			w := want[s.Name]
			assert.Equal(t, w.path, rep.Path)
			assert.InDelta(t, w.cost, rep.Cost, 1e-9)
			assert.Equal(t, len(w.path)-1, rep.Steps)
			assert.Equal(t, res.Expanded, rep.Expanded)
		})
	}
}

func TestRun_Failures(t *testing.T) {
	s := scenario.Office()
	s.Goal = []int{0, 3} // wall

	_, _, rep, err := s.Run()
	require.NoError(t, err)
	assert.False(t, rep.Found)
	assert.Contains(t, rep.Error, "blocked")
	assert.Nil(t, rep.Path)

	_, _, _, err = scenario.Office().Run(astar.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, astar.ErrOptionViolation)

	_, _, rep, err = scenario.Office().Run(astar.WithMaxExpansions(1))
	require.NoError(t, err)
	assert.False(t, rep.Found)
	assert.Equal(t, 1, rep.Expanded)
}
