package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

func TestPathCost(t *testing.T) {
	gg := mustGrid(t, officeGrid(), officeCosts())

	cases := []struct {
		name string
		path []gridgraph.Cell
		want float64
	}{
		{"Empty", nil, 0},
		{"Single", []gridgraph.Cell{{Row: 0, Col: 0}}, 0},
		{"OrthogonalSlow", []gridgraph.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, 2},
		{"Diagonal", []gridgraph.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 3, Col: 1}}, 2 + astar.DiagonalCost},
		{"DiagonalSlow", []gridgraph.Cell{{Row: 3, Col: 1}, {Row: 4, Col: 2}}, 2 * astar.DiagonalCost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := astar.PathCost(gg, tc.path)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestPathCost_Errors(t *testing.T) {
	gg := mustGrid(t, officeGrid(), officeCosts())

	_, err := astar.PathCost(nil, nil)
	assert.ErrorIs(t, err, astar.ErrNilGrid)

	_, err = astar.PathCost(gg, []gridgraph.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 2}})
	assert.ErrorIs(t, err, astar.ErrInvalidStep)

	_, err = astar.PathCost(gg, []gridgraph.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 0}})
	assert.ErrorIs(t, err, astar.ErrInvalidStep)

	_, err = astar.PathCost(gg, []gridgraph.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 1}})
	assert.ErrorIs(t, err, astar.ErrBlockedEndpoint)

	_, err = astar.PathCost(gg, []gridgraph.Cell{{Row: 1, Col: 1}, {Row: 1, Col: 2}})
	assert.ErrorIs(t, err, astar.ErrBlockedEndpoint)

	_, err = astar.PathCost(gg, []gridgraph.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}})
	assert.ErrorIs(t, err, astar.ErrBlockedStep)
	assert.NotErrorIs(t, err, astar.ErrBlockedEndpoint)
	assert.Contains(t, err.Error(), "path[1] (1,1)")

	_, err = astar.PathCost(gg, []gridgraph.Cell{{Row: 0, Col: 0}, {Row: -1, Col: 0}, {Row: 0, Col: 1}})
	assert.ErrorIs(t, err, astar.ErrOutOfBounds)

	_, err = astar.PathCost(gg, []gridgraph.Cell{{Row: 0, Col: 0}, {Row: -1, Col: 0}})
	assert.ErrorIs(t, err, astar.ErrOutOfBounds)
}

func TestSteps(t *testing.T) {
	assert.Equal(t, 0, astar.Steps(nil))
	assert.Equal(t, 0, astar.Steps([]gridgraph.Cell{{Row: 0, Col: 0}}))
	assert.Equal(t, 2, astar.Steps([]gridgraph.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}}))
}

func TestHeuristics(t *testing.T) {
	cases := []struct {
		a, b gridgraph.Cell
		want float64
	}{
		{gridgraph.C(0, 0), gridgraph.C(0, 0), 0},
		{gridgraph.C(0, 0), gridgraph.C(0, 4), 4},
		{gridgraph.C(0, 0), gridgraph.C(3, 3), 3 * astar.DiagonalCost},
		{gridgraph.C(4, 1), gridgraph.C(0, 0), astar.DiagonalCost + 3},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, astar.Octile(tc.a, tc.b), 1e-9, "%v → %v", tc.a, tc.b)
		assert.InDelta(t, tc.want, astar.Octile(tc.b, tc.a), 1e-9, "symmetry %v → %v", tc.b, tc.a)
		assert.Zero(t, astar.Zero(tc.a, tc.b))
	}
}
