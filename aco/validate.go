// Package aco - validation utilities.
//
// This file contains small, side-effect free helpers that:
//  1. Validate Options (counts, exponents, rates).
//  2. Validate the distance matrix (shape, NaN, negativity, ∞ off the diagonal).
//  3. Validate the start node once N is known.
//
// No logging, no panics on user input - only the ErrInvalidParameter family
// from types.go, wrapped with the offending value.
package aco

import (
	"fmt"
	"math"

	"github.com/IanMeirellesDuraes/AntColonyOptimization-ACO-TSP/matrix"
)

// validateAll verifies Options + distance matrix + start node.
// It returns n (matrix order) on success.
//
// Complexity: O(n²).
func validateAll(dist matrix.Matrix, opts Options) (int, error) {
	// Stage 1: Options-only sanity.
	if err := validateOptionsStandalone(opts); err != nil {
		return 0, err
	}

	// Stage 2: matrix shape and values.
	n, err := validateDistMatrix(dist)
	if err != nil {
		return 0, err
	}

	// Stage 3: start node range (after n is known).
	if err = validateStartVertex(n, opts.Start); err != nil {
		return 0, err
	}

	return n, nil
}

// validateOptionsStandalone checks the hyperparameters without looking at the matrix.
//
// Complexity: O(1).
func validateOptionsStandalone(opts Options) error {
	if opts.Ants < 1 {
		return fmt.Errorf("%w (got %d)", ErrBadAnts, opts.Ants)
	}
	if opts.Iterations < 1 {
		return fmt.Errorf("%w (got %d)", ErrBadIterations, opts.Iterations)
	}
	if !finiteNonNegative(opts.Alpha) {
		return fmt.Errorf("%w (got %g)", ErrBadAlpha, opts.Alpha)
	}
	if !finiteNonNegative(opts.Beta) {
		return fmt.Errorf("%w (got %g)", ErrBadBeta, opts.Beta)
	}
	// ρ=1 would wipe the field and make the next batch depend on deposits only;
	// ρ<0 would grow it. Both are outside the evaporation model.
	if math.IsNaN(opts.Rho) || opts.Rho < 0 || opts.Rho >= 1 {
		return fmt.Errorf("%w (got %g)", ErrBadRho, opts.Rho)
	}
	if !finiteNonNegative(opts.Q) {
		return fmt.Errorf("%w (got %g)", ErrBadQ, opts.Q)
	}
	if opts.Workers < 0 {
		return fmt.Errorf("%w (got %d)", ErrBadWorkers, opts.Workers)
	}

	return nil
}

// finiteNonNegative reports whether x is a finite number ≥ 0.
func finiteNonNegative(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x >= 0
}

// validateDistMatrix performs full matrix validation:
//   - non-nil, square, n ≥ 2,
//   - off-diagonal entries finite and ≥ 0,
//   - the diagonal is not inspected (it holds the "no self-loop" sentinel).
//
// Returns n (matrix order) on success.
//
// Complexity: O(n²).
func validateDistMatrix(dist matrix.Matrix) (int, error) {
	// Stage 1: shape checks.
	if err := matrix.ValidateNotNil(dist); err != nil {
		return 0, ErrNilMatrix
	}
	var (
		nr = dist.Rows()
		nc = dist.Cols()
	)
	if nr != nc {
		return 0, fmt.Errorf("%w (%d×%d)", ErrNonSquare, nr, nc)
	}
	if nr < 2 {
		return 0, fmt.Errorf("%w (got %d)", ErrTooFewNodes, nr)
	}
	n := nr

	// Stage 2: off-diagonal scan.
	var (
		i, j int
		w    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if w, err = dist.At(i, j); err != nil {
				return 0, fmt.Errorf("%w: %v", ErrDimensionMismatch, err)
			}
			switch {
			case math.IsNaN(w):
				return 0, fmt.Errorf("%w at (%d,%d)", ErrInvalidWeight, i, j)
			case math.IsInf(w, 0):
				return 0, fmt.Errorf("%w at (%d,%d)", ErrIncompleteGraph, i, j)
			case w < 0:
				return 0, fmt.Errorf("%w at (%d,%d): %g", ErrNegativeWeight, i, j, w)
			}
		}
	}

	return n, nil
}

// validateStartVertex verifies that start ∈ [0..n-1].
//
// Complexity: O(1).
func validateStartVertex(n int, start int) error {
	if start < 0 || start >= n {
		return fmt.Errorf("%w (start=%d, n=%d)", ErrStartOutOfRange, start, n)
	}

	return nil
}
