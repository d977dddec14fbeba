package aco

import (
	"fmt"
	"math"

	"github.com/IanMeirellesDuraes/AntColonyOptimization-ACO-TSP/matrix"
)

// PheromoneField holds the learned desirability τ[i][j] of every directed edge.
//
// Invariant: every entry is ≥ 0. Evaporation multiplies by (1−ρ) with
// ρ ∈ [0,1) and deposits only add non-negative amounts.
//
// A field is read concurrently while a batch is built and written only by
// EvaporateAndDeposit, between batches.
type PheromoneField struct {
	tau *matrix.Dense
	n   int
}

// NewPheromoneField returns an n×n field with every entry 1/n.
//
// Errors: ErrTooFewNodes if n < 1.
// Complexity: O(n²).
func NewPheromoneField(n int) (*PheromoneField, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrTooFewNodes, n)
	}
	tau, err := matrix.NewFilled(n, n, 1/float64(n))
	if err != nil {
		return nil, err
	}

	return &PheromoneField{tau: tau, n: n}, nil
}

// Size returns N.
func (f *PheromoneField) Size() int { return f.n }

// At returns τ[i][j].
func (f *PheromoneField) At(i, j int) (float64, error) { return f.tau.At(i, j) }

// Snapshot returns a copy of the whole field.
//
// Complexity: O(n²).
func (f *PheromoneField) Snapshot() [][]float64 { return f.tau.ToRows() }

// reset puts every entry back to 1/n.
func (f *PheromoneField) reset() { f.tau.Fill(1 / float64(f.n)) }

// EvaporateAndDeposit applies one iteration's update in place:
//
//  1. τ ← (1−ρ)·τ on every entry;
//  2. for each ant and each consecutive pair (a,b) of its tour, τ[a][b] += Q/cost.
//
// Deposits of ants sharing an edge accumulate; nothing decays between ants of
// the same batch. An ant with zero cost deposits nothing (Q/0 is not a
// pheromone amount).
//
// Errors: ErrBadRho / ErrBadQ for out-of-model parameters, ErrDimensionMismatch
// for a tour stepping outside the field. The field is left untouched on any
// error: the whole batch is checked before evaporation.
//
// Complexity: O(n² + Σ len(tour)).
func (f *PheromoneField) EvaporateAndDeposit(batch []Ant, rho, q float64) error {
	if math.IsNaN(rho) || rho < 0 || rho >= 1 {
		return fmt.Errorf("%w (got %g)", ErrBadRho, rho)
	}
	if !finiteNonNegative(q) {
		return fmt.Errorf("%w (got %g)", ErrBadQ, q)
	}

	if err := f.checkBatch(batch); err != nil {
		return err
	}

	// Stage 1: evaporation.
	f.tau.Scale(1 - rho)

	// Stage 2: deposit.
	var (
		k, i    int
		deposit float64
		err     error
	)
	for k = range batch {
		if !deposits(batch[k]) {
			continue
		}
		deposit = q / batch[k].Cost
		if deposit == 0 {
			continue
		}
		for i = 0; i+1 < len(batch[k].Tour); i++ {
			if err = f.tau.AddAt(batch[k].Tour[i], batch[k].Tour[i+1], deposit); err != nil {
				return fmt.Errorf("%w: ant %d: %v", ErrDimensionMismatch, k, err)
			}
		}
	}

	return nil
}

// deposits reports whether ant a contributes pheromone: its cost must be a
// finite positive number.
func deposits(a Ant) bool {
	return a.Cost > 0 && !math.IsInf(a.Cost, 0)
}

// checkBatch verifies that every depositing tour stays inside the field.
//
// Complexity: O(Σ len(tour)).
func (f *PheromoneField) checkBatch(batch []Ant) error {
	for k := range batch {
		if !deposits(batch[k]) {
			continue
		}
		for i, v := range batch[k].Tour {
			if v < 0 || v >= f.n {
				return fmt.Errorf("%w: ant %d: tour[%d]=%d outside [0,%d)", ErrDimensionMismatch, k, i, v, f.n)
			}
		}
	}

	return nil
}
