// Package aco_test provides small helpers shared across *_test.go files:
// the two reference instances and a brute-force optimum for tiny matrices.
package aco_test

import (
	"math"
	"testing"

	"github.com/IanMeirellesDuraes/AntColonyOptimization-ACO-TSP/aco"
	"github.com/IanMeirellesDuraes/AntColonyOptimization-ACO-TSP/matrix"
	"github.com/stretchr/testify/require"
)

// inf is the "no self-loop" diagonal sentinel.
var inf = math.Inf(1)

const (
	// seedDet is a deterministic seed for RNG-based tests.
	seedDet = int64(42)

	// ref5Optimum is the shortest closed tour of ref5 (0→2→3→4→1→0).
	ref5Optimum = 9.0
)

// ref5 is the symmetric 5-node scenario matrix.
func ref5(t testing.TB) *matrix.Dense {
	t.Helper()

	return mustDense(t, [][]float64{
		{inf, 2, 2, 5, 7},
		{2, inf, 4, 8, 2},
		{2, 4, inf, 1, 3},
		{5, 8, 1, inf, 2},
		{7, 2, 3, 2, inf},
	})
}

// ref7 is the symmetric 7-node reference matrix.
func ref7(t testing.TB) *matrix.Dense {
	t.Helper()

	return mustDense(t, [][]float64{
		{inf, 2, 3, 4, 5, 6, 7},
		{2, inf, 1, 3, 4, 5, 6},
		{3, 1, inf, 2, 3, 4, 5},
		{4, 3, 2, inf, 1, 2, 3},
		{5, 4, 3, 1, inf, 1, 2},
		{6, 5, 4, 2, 1, inf, 1},
		{7, 6, 5, 3, 2, 1, inf},
	})
}

// mustDense builds a *matrix.Dense or fails the test.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// requireValidTour checks shape, closure and interior uniqueness.
func requireValidTour(t testing.TB, tour []int, n, start int) {
	t.Helper()
	require.NoError(t, aco.ValidateTour(tour, n, start), "tour %v", tour)
}

// recomputeCost sums consecutive edges directly from the matrix.
func recomputeCost(t testing.TB, dist matrix.Matrix, tour []int) float64 {
	t.Helper()
	var sum float64
	for i := 0; i+1 < len(tour); i++ {
		w, err := dist.At(tour[i], tour[i+1])
		require.NoError(t, err)
		sum += w
	}

	return sum
}

// bruteForceOptimum enumerates every tour from start (n ≤ 8).
func bruteForceOptimum(t testing.TB, dist matrix.Matrix, start int) float64 {
	t.Helper()
	n := dist.Rows()
	rest := make([]int, 0, n-1)
	for v := 0; v < n; v++ {
		if v != start {
			rest = append(rest, v)
		}
	}

	best := math.Inf(1)
	var permute func(k int)
	permute = func(k int) {
		if k == len(rest) {
			tour := append(append([]int{start}, rest...), start)
			if c := recomputeCost(t, dist, tour); c < best {
				best = c
			}
			return
		}
		for i := k; i < len(rest); i++ {
			rest[k], rest[i] = rest[i], rest[k]
			permute(k + 1)
			rest[k], rest[i] = rest[i], rest[k]
		}
	}
	permute(0)

	return best
}
