package exact_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IanMeirellesDuraes/AntColonyOptimization-ACO-TSP/instance"
	"github.com/IanMeirellesDuraes/AntColonyOptimization-ACO-TSP/internal/exact"
	"github.com/IanMeirellesDuraes/AntColonyOptimization-ACO-TSP/matrix"
)

func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// closed checks shape and recomputes the cost of tour.
func closed(t *testing.T, dist matrix.Matrix, tour []int, start int) float64 {
	t.Helper()
	n := dist.Rows()
	require.Len(t, tour, n+1)
	require.Equal(t, start, tour[0])
	require.Equal(t, start, tour[n])
	seen := make(map[int]bool, n)
	var cost float64
	for i := 0; i < n; i++ {
		require.False(t, seen[tour[i]], "node %d repeated", tour[i])
		seen[tour[i]] = true
		d, err := dist.At(tour[i], tour[i+1])
		require.NoError(t, err)
		cost += d
	}

	return cost
}

func TestHeldKarp_Builtins(t *testing.T) {
	for name, want := range map[string]float64{"ref5": 9} {
		inst, err := instance.Builtin(name)
		require.NoError(t, err)
		for start := 0; start < inst.Size(); start++ {
			res, err := exact.HeldKarp(inst.Distances, start)
			require.NoError(t, err)
			assert.Equal(t, want, res.Cost)
			assert.Equal(t, res.Cost, closed(t, inst.Distances, res.Tour, start))
		}
	}
}

func TestHeldKarp_Square(t *testing.T) {
	dist := dense(t, [][]float64{
		{0, 2, 9, 10},
		{2, 0, 6, 4},
		{9, 6, 0, 3},
		{10, 4, 3, 0},
	})
	res, err := exact.HeldKarp(dist, 2)
	require.NoError(t, err)
	assert.Equal(t, 18.0, res.Cost)
	assert.Equal(t, 18.0, closed(t, dist, res.Tour, 2))
}

func TestHeldKarp_Asymmetric(t *testing.T) {
	// 0→1→2→0 costs 3, the reverse direction 30.
	dist := dense(t, [][]float64{
		{0, 1, 10},
		{10, 0, 1},
		{1, 10, 0},
	})
	res, err := exact.HeldKarp(dist, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 0}, res.Tour)
	assert.Equal(t, 3.0, res.Cost)
}

func TestHeldKarp_TwoNodes(t *testing.T) {
	res, err := exact.HeldKarp(dense(t, [][]float64{{math.Inf(1), 3}, {5, math.Inf(1)}}), 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 1}, res.Tour)
	assert.Equal(t, 8.0, res.Cost)
}

func TestHeldKarp_Errors(t *testing.T) {
	inf := math.Inf(1)
	_, err := exact.HeldKarp(dense(t, [][]float64{
		{0, inf, 1},
		{inf, 0, inf},
		{1, inf, 0},
	}), 0)
	require.ErrorIs(t, err, exact.ErrNoTour)

	_, err = exact.HeldKarp(dense(t, [][]float64{{0, -1}, {1, 0}}), 0)
	require.ErrorIs(t, err, exact.ErrInvalidMatrix)

	_, err = exact.HeldKarp(dense(t, [][]float64{{0, 1}, {1, 0}}), 2)
	require.ErrorIs(t, err, exact.ErrInvalidMatrix)

	_, err = exact.HeldKarp(dense(t, [][]float64{{0, 1, 2}, {1, 0, 3}}), 0)
	require.ErrorIs(t, err, exact.ErrInvalidMatrix)

	_, err = exact.HeldKarp(nil, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	big, err := matrix.NewFilled(exact.MaxNodes+1, exact.MaxNodes+1, 1)
	require.NoError(t, err)
	_, err = exact.HeldKarp(big, 0)
	require.ErrorIs(t, err, exact.ErrTooLarge)
}
