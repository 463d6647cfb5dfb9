package gridgraph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty, ragged or mismatched inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name  string
		grid  [][]int
		costs [][]float64
		err   error
	}{
		{"NilRows", nil, nil, gridgraph.ErrEmptyGrid},
		{"EmptyRows", [][]int{}, nil, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, nil, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{0, 0}, {0}}, nil, gridgraph.ErrNonRectangular},
		{"CostRows", [][]int{{0, 0}, {0, 0}}, [][]float64{{1, 1}}, gridgraph.ErrCostShape},
		{"CostCols", [][]int{{0, 0}, {0, 0}}, [][]float64{{1, 1}, {1}}, gridgraph.ErrCostShape},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gg, err := gridgraph.NewGridGraph(tc.grid, tc.costs)
			assert.Nil(t, gg)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNewGridGraph_DeepCopy ensures later mutation of the inputs does not leak into the graph.
func TestNewGridGraph_DeepCopy(t *testing.T) {
	grid := [][]int{{0, 0}, {0, 0}}
	costs := [][]float64{{1, 1}, {1, 1}}
	gg, err := gridgraph.NewGridGraph(grid, costs)
	require.NoError(t, err)

	grid[0][1] = 1
	costs[1][1] = 9

	assert.False(t, gg.Blocked(gridgraph.C(0, 1)))
	assert.Equal(t, 1.0, gg.EnterCost(gridgraph.C(1, 1)))
	assert.Equal(t, 2, gg.Rows())
	assert.Equal(t, 2, gg.Cols())
	assert.True(t, gg.HasCosts())
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{0, 1, 0},
		{1, 0, 1},
	})
	require.NoError(t, err)

	for _, c := range []gridgraph.Cell{{0, 0}, {1, 2}, {1, 1}} {
		assert.True(t, gg.InBounds(c), "InBounds(%v)", c)
	}
	for _, c := range []gridgraph.Cell{{-1, 0}, {0, 3}, {2, 1}, {1, -1}} {
		assert.False(t, gg.InBounds(c), "InBounds(%v)", c)
		assert.False(t, gg.Passable(c), "Passable(%v)", c)
	}
}

// TestBlocked treats every non-zero value as an obstacle.
func TestBlocked(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{0, 1, 2, -1}})
	require.NoError(t, err)

	assert.False(t, gg.Blocked(gridgraph.C(0, 0)))
	assert.True(t, gg.Blocked(gridgraph.C(0, 1)))
	assert.True(t, gg.Blocked(gridgraph.C(0, 2)))
	assert.True(t, gg.Blocked(gridgraph.C(0, 3)))
	assert.Equal(t, 2, gg.Value(gridgraph.C(0, 2)))
}

//----------------------------------------------------------------------------//
// Cost accessor Tests
//----------------------------------------------------------------------------//

// TestEnterCost_Clamp verifies values below 1 (and NaN) are normalized to 1.
func TestEnterCost_Clamp(t *testing.T) {
	costs := [][]float64{{0, -3, 0.5, 1, 2.5, math.NaN()}}
	gg, err := gridgraph.NewGridGraph([][]int{{0, 0, 0, 0, 0, 0}}, costs)
	require.NoError(t, err)

	want := []float64{1, 1, 1, 1, 2.5, 1}
	for col, w := range want {
		assert.Equal(t, w, gg.EnterCost(gridgraph.C(0, col)), "col %d", col)
	}
	// Raw values are preserved for display.
	assert.Equal(t, -3.0, gg.Cost(gridgraph.C(0, 1)))
}

// TestEnterCost_Uniform verifies a nil cost map yields cost 1 everywhere.
func TestEnterCost_Uniform(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{0, 0}, {0, 0}})
	require.NoError(t, err)

	assert.False(t, gg.HasCosts())
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			assert.Equal(t, 1.0, gg.EnterCost(gridgraph.C(r, c)))
		}
	}
}

//----------------------------------------------------------------------------//
// Offsets and obstacles
//----------------------------------------------------------------------------//

// TestNeighborOffsets pins the fixed search order: orthogonal first, then diagonal.
func TestNeighborOffsets(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{0}})
	require.NoError(t, err)

	offs := gg.NeighborOffsets()
	want := [8]gridgraph.Offset{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	assert.Equal(t, want, offs)
	for i, o := range offs {
		assert.Equal(t, i >= 4, o.Diagonal(), "offset %v", o)
	}
	assert.Equal(t, gridgraph.C(3, 1), gridgraph.C(2, 2).Add(gridgraph.Offset{1, -1}))
}

// TestWithObstacles adds obstacles on a copy and leaves the original untouched.
func TestWithObstacles(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{0, 0}, {0, 0}})
	require.NoError(t, err)

	blocked, err := gg.WithObstacles(gridgraph.C(1, 0))
	require.NoError(t, err)
	assert.True(t, blocked.Blocked(gridgraph.C(1, 0)))
	assert.False(t, gg.Blocked(gridgraph.C(1, 0)))

	_, err = gg.WithObstacles(gridgraph.C(2, 0))
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "(4,2)", gridgraph.C(4, 2).String())
	gg, err := gridgraph.From2D([][]int{{0, 0, 0}, {0, 0, 0}})
	require.NoError(t, err)
	assert.Equal(t, gridgraph.C(1, 2), gg.Coordinate(5))
	assert.Equal(t, [][]int{{0, 0, 0}, {0, 0, 0}}, gg.Values())
}
