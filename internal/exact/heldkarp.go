// Package exact computes optimal tours for small instances with the
// Held–Karp dynamic program. It is the yardstick the solver's results are
// measured against (CLI --exact, tests).
package exact

import (
	"errors"
	"fmt"
	"math"

	"github.com/IanMeirellesDuraes/AntColonyOptimization-ACO-TSP/matrix"
)

// MaxNodes bounds the instance size: memory is O(n·2ⁿ).
const MaxNodes = 16

var (
	// ErrTooLarge is returned for instances with more than MaxNodes nodes.
	ErrTooLarge = errors.New("exact: instance too large")
	// ErrNoTour is returned when +Inf edges leave no Hamiltonian cycle.
	ErrNoTour = errors.New("exact: no closed tour exists")
	// ErrInvalidMatrix is returned for non-square, tiny, negative or NaN input.
	ErrInvalidMatrix = errors.New("exact: invalid distance matrix")
)

// Result is an optimal closed tour from the requested start.
type Result struct {
	Tour []int
	Cost float64
}

// HeldKarp returns a minimum-cost closed tour starting and ending at start.
// The diagonal is ignored and +Inf off-diagonal entries mean "no edge".
//
// dp[mask*n+j] is the cheapest path that leaves start, visits exactly the
// nodes in mask (start included) and ends at j.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory.
func HeldKarp(dist matrix.Matrix, start int) (Result, error) {
	w, n, err := weights(dist)
	if err != nil {
		return Result{}, err
	}
	if start < 0 || start >= n {
		return Result{}, fmt.Errorf("%w: start %d outside [0,%d)", ErrInvalidMatrix, start, n)
	}

	var (
		full     = 1<<n - 1
		startBit = 1 << start
		dp       = make([]float64, (full+1)*n)
		parent   = make([]int8, (full+1)*n)
		mask     int
		j, k     int
	)
	for i := range dp {
		dp[i] = math.Inf(1)
		parent[i] = -1
	}
	dp[startBit*n+start] = 0

	for mask = startBit; mask <= full; mask++ {
		if mask&startBit == 0 {
			continue
		}
		for j = 0; j < n; j++ {
			if j == start || mask&(1<<j) == 0 {
				continue
			}
			prev := mask ^ 1<<j
			for k = 0; k < n; k++ {
				if prev&(1<<k) == 0 || math.IsInf(dp[prev*n+k], 1) {
					continue
				}
				if cand := dp[prev*n+k] + w[k*n+j]; cand < dp[mask*n+j] {
					dp[mask*n+j] = cand
					parent[mask*n+j] = int8(k)
				}
			}
		}
	}

	best, last := math.Inf(1), -1
	for j = 0; j < n; j++ {
		if j == start {
			continue
		}
		if total := dp[full*n+j] + w[j*n+start]; total < best {
			best, last = total, j
		}
	}
	if last < 0 {
		return Result{}, ErrNoTour
	}

	tour := make([]int, n+1)
	tour[0], tour[n] = start, start
	for i, mask := n-1, full; i >= 1; i-- {
		tour[i] = last
		p := int(parent[mask*n+last])
		mask ^= 1 << last
		last = p
	}

	return Result{Tour: tour, Cost: best}, nil
}

// weights copies dist into a flat row-major buffer, validating it on the way.
func weights(dist matrix.Matrix) ([]float64, int, error) {
	if err := matrix.ValidateSquareNonNil(dist); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidMatrix, err)
	}
	n := dist.Rows()
	if n < 2 {
		return nil, 0, fmt.Errorf("%w: need at least 2 nodes, got %d", ErrInvalidMatrix, n)
	}
	if n > MaxNodes {
		return nil, 0, fmt.Errorf("%w: %d nodes (limit %d)", ErrTooLarge, n, MaxNodes)
	}

	w := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v, err := dist.At(i, j)
			if err != nil {
				return nil, 0, err
			}
			if math.IsNaN(v) || v < 0 {
				return nil, 0, fmt.Errorf("%w: d[%d][%d]=%v", ErrInvalidMatrix, i, j, v)
			}
			w[i*n+j] = v
		}
	}

	return w, n, nil
}
