// Package aco — tour utilities.
//
// Helpers that operate purely on tour structure (index sequences):
//   - ValidateTour: enforce closed-tour invariants.
//   - CopyTour: independent copy of a tour slice.
//   - FormatTour: printable "0 → 2 → 3 → 0" representation.
package aco

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidateTour enforces the closed-tour invariants:
//
//	len(tour) == n+1, tour[0]==tour[n]==start,
//	each node v∈[0..n-1] appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 {
		return fmt.Errorf("%w: n=%d", ErrDimensionMismatch, n)
	}
	if len(tour) != n+1 {
		return fmt.Errorf("%w: tour length %d, want %d", ErrDimensionMismatch, len(tour), n+1)
	}
	if start < 0 || start >= n {
		return fmt.Errorf("%w (start=%d, n=%d)", ErrStartOutOfRange, start, n)
	}
	if tour[0] != start || tour[n] != start {
		return fmt.Errorf("%w: tour is not closed at %d", ErrDimensionMismatch, start)
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return fmt.Errorf("%w: node %d outside [0,%d)", ErrDimensionMismatch, v, n)
		}
		if seen[v] {
			return fmt.Errorf("%w: node %d visited twice", ErrDimensionMismatch, v)
		}
		seen[v] = true
	}

	return nil
}

// CopyTour returns an independent copy of tour (nil stays nil).
//
// Complexity: O(n).
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// FormatTour renders a tour as "0 → 2 → 3 → 4 → 1 → 0".
//
// Complexity: O(n).
func FormatTour(tour []int) string {
	parts := make([]string, len(tour))
	for i, v := range tour {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " → ")
}
