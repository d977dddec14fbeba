// Package aco — cost utilities.
//
// Small, allocation-free helpers computing the length of a closed tour. They
// are pure: no logging, no state, sentinel errors only.
package aco

import (
	"fmt"
	"math"

	"github.com/IanMeirellesDuraes/AntColonyOptimization-ACO-TSP/matrix"
)

// TourCost returns the sum of dist[tour[i]][tour[i+1]] over consecutive pairs.
//
// Contract:
//   - dist is square; tour has at least 2 entries, all within [0..n-1].
//   - Every traversed edge must be finite and ≥ 0. A tour that steps from a
//     node to itself reads the diagonal sentinel and fails with
//     ErrIncompleteGraph.
//
// The sum is not rounded, so it matches an independent recomputation exactly.
//
// Complexity: O(len(tour)).
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	if err := matrix.ValidateNotNil(dist); err != nil {
		return 0, ErrNilMatrix
	}
	if len(tour) < 2 {
		return 0, fmt.Errorf("%w: tour has %d entries", ErrDimensionMismatch, len(tour))
	}

	var (
		sum float64
		w   float64
		err error
		i   int
	)
	for i = 0; i+1 < len(tour); i++ {
		if w, err = edgeCost(dist, tour[i], tour[i+1]); err != nil {
			return 0, err
		}
		sum += w
	}

	return sum, nil
}

// edgeCost fetches the weight for a single directed edge u→v with strict validation.
//
// Complexity: O(1).
func edgeCost(m matrix.Matrix, u, v int) (float64, error) {
	var (
		nr = m.Rows()
		nc = m.Cols()
	)
	if nr != nc {
		return 0, ErrNonSquare
	}
	if u < 0 || u >= nr || v < 0 || v >= nr {
		return 0, fmt.Errorf("%w: edge %d→%d outside [0,%d)", ErrDimensionMismatch, u, v, nr)
	}

	w, err := m.At(u, v)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDimensionMismatch, err)
	}
	switch {
	case math.IsNaN(w):
		return 0, fmt.Errorf("%w: edge %d→%d", ErrInvalidWeight, u, v)
	case math.IsInf(w, 0):
		return 0, fmt.Errorf("%w: edge %d→%d", ErrIncompleteGraph, u, v)
	case w < 0:
		return 0, fmt.Errorf("%w: edge %d→%d", ErrNegativeWeight, u, v)
	}

	return w, nil
}
