// Package aco - tour construction.
//
// A tourBuilder is one ant: it owns its RNG stream and scratch buffers and
// reads the pheromone field and heuristic table without modifying them, so
// several builders may run at once over the same batch.
package aco

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/IanMeirellesDuraes/AntColonyOptimization-ACO-TSP/matrix"
)

// tourBuilder constructs tours for one ant.
type tourBuilder struct {
	field *PheromoneField // read-only during construction
	eta   *matrix.Dense   // eta[i][j] = (1/d[i][j])^β, read-only
	alpha float64
	rng   *rand.Rand

	visited  []bool
	scores   []float64
	dominant []int
}

// newTourBuilder wires a builder to shared read-only state and its own RNG.
func newTourBuilder(field *PheromoneField, eta *matrix.Dense, alpha float64, rng *rand.Rand) *tourBuilder {
	n := field.Size()

	return &tourBuilder{
		field:    field,
		eta:      eta,
		alpha:    alpha,
		rng:      rng,
		visited:  make([]bool, n),
		scores:   make([]float64, n),
		dominant: make([]int, 0, n),
	}
}

// constructTour builds one closed tour from start:
// [start, v1, …, v(n−1), start], every node exactly once in the interior.
//
// Complexity: O(n²).
func (b *tourBuilder) constructTour(start int) ([]int, error) {
	n := b.field.Size()
	tour := make([]int, 0, n+1)
	tour = append(tour, start)

	clear(b.visited)
	b.visited[start] = true

	var (
		current = start
		next    int
		err     error
	)
	for step := 0; step < n-1; step++ {
		if next, err = b.pickNext(current, b.visited); err != nil {
			return nil, err
		}
		tour = append(tour, next)
		b.visited[next] = true
		current = next
	}

	return append(tour, start), nil
}

// pickNext samples the next node from current.
//
// Every node j gets the weight τ[current][j]^α · η[current][j]; visited nodes
// get 0 and are never chosen. Weights are normalised by their sum and one
// node is drawn. Special cases:
//   - exactly one unvisited node with a finite positive weight, or at zero
//     distance: it is returned without drawing;
//   - N=2: the other node is returned whatever its weight;
//   - +Inf weights (zero distance with β>0): one of them is drawn uniformly;
//   - a sum that is not a finite positive number: ErrDegenerateDistribution,
//     also for a lone candidate whose weight vanished when N>2.
//
// Complexity: O(n).
func (b *tourBuilder) pickNext(current int, visited []bool) (int, error) {
	var (
		n      = b.field.Size()
		sum    float64
		last   = -1
		remain int
		j      int
	)
	b.dominant = b.dominant[:0]

	for j = 0; j < n; j++ {
		b.scores[j] = 0
		if visited[j] {
			continue
		}
		remain++
		last = j
		s, dom, err := b.score(current, j)
		if err != nil {
			return 0, err
		}
		if dom {
			b.dominant = append(b.dominant, j)
			continue
		}
		b.scores[j] = s
		sum += s
	}

	switch {
	case remain == 0:
		return 0, fmt.Errorf("%w: no unvisited node left at %d", ErrDegenerateDistribution, current)
	case remain == 1 && (n == 2 || len(b.dominant) == 1 || (sum > 0 && !math.IsInf(sum, 0))):
		return last, nil
	case len(b.dominant) > 0:
		return b.dominant[b.rng.Intn(len(b.dominant))], nil
	}

	if !(sum > 0) || math.IsInf(sum, 0) {
		return 0, fmt.Errorf("%w: weights from node %d sum to %g", ErrDegenerateDistribution, current, sum)
	}

	// Roulette wheel over the normalised probabilities.
	var (
		u   = b.rng.Float64()
		acc float64
	)
	last = -1
	for j = 0; j < n; j++ {
		if b.scores[j] == 0 {
			continue
		}
		acc += b.scores[j] / sum
		last = j
		if u < acc {
			return j, nil
		}
	}
	// Rounding left acc just below u: the last positive candidate absorbs it.
	return last, nil
}

// score returns τ[i][j]^α · η[i][j]. dominant is true when η is infinite
// (zero distance) and τ^α > 0; the weight is then meaningless and the
// candidate outranks every finite one. An overflowing product stays +Inf
// without being dominant, so the sum check rejects it.
func (b *tourBuilder) score(i, j int) (w float64, dominant bool, err error) {
	tau, err := b.field.At(i, j)
	if err != nil {
		return 0, false, err
	}
	eta, err := b.eta.At(i, j)
	if err != nil {
		return 0, false, err
	}
	tp := math.Pow(tau, b.alpha)
	if tp == 0 || eta == 0 {
		return 0, false, nil
	}
	if math.IsInf(eta, 1) {
		return 0, true, nil
	}

	return tp * eta, false, nil
}

// heuristicTable precomputes η[i][j] = (1/d[i][j])^β for every edge.
// The diagonal is set to 0; it is never read by construction.
//
// Complexity: O(n²).
func heuristicTable(dist matrix.Matrix, n int, beta float64) (*matrix.Dense, error) {
	eta, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if d, err = dist.At(i, j); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrDimensionMismatch, err)
			}
			// 1/0 = +Inf; Pow(+Inf, 0) = 1 and Pow(+Inf, β>0) = +Inf.
			if err = eta.Set(i, j, math.Pow(1/d, beta)); err != nil {
				return nil, err
			}
		}
	}

	return eta, nil
}
