package aco

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/IanMeirellesDuraes/AntColonyOptimization-ACO-TSP/matrix"
)

// Colony owns one search: the distance matrix (read-only), the pheromone
// field and the best-so-far record. It is not safe for concurrent use; Run
// itself may fan tour construction out to Options.Workers goroutines.
type Colony struct {
	dist  matrix.Matrix
	n     int
	opts  Options
	eta   *matrix.Dense
	field *PheromoneField
	rng   *rand.Rand
	ants  []*tourBuilder

	best     []int
	bestCost float64
	bestIter int
	history  []float64
}

// NewColony validates dist and the options and prepares a colony.
// Nothing is searched until Run.
//
// Errors: the ErrInvalidParameter family (see types.go).
// Complexity: O(n² + ants·n).
func NewColony(dist matrix.Matrix, opts ...Option) (*Colony, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n, err := validateAll(dist, cfg)
	if err != nil {
		return nil, err
	}

	eta, err := heuristicTable(dist, n, cfg.Beta)
	if err != nil {
		return nil, err
	}
	field, err := NewPheromoneField(n)
	if err != nil {
		return nil, err
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rngFromSeed(cfg.Seed)
	}

	c := &Colony{
		dist:     dist,
		n:        n,
		opts:     cfg,
		eta:      eta,
		field:    field,
		rng:      rng,
		ants:     make([]*tourBuilder, cfg.Ants),
		bestCost: math.Inf(1),
	}
	for k := range c.ants {
		// Streams are reseeded before every batch; the initial seed is irrelevant.
		c.ants[k] = newTourBuilder(field, eta, cfg.Alpha, rand.New(rand.NewSource(defaultRNGSeed)))
	}

	return c, nil
}

// Size returns the number of nodes N.
func (c *Colony) Size() int { return c.n }

// Field exposes the pheromone field for inspection. Callers must not read it
// while Run is in progress on another goroutine.
func (c *Colony) Field() *PheromoneField { return c.field }

// Best returns a copy of the best-so-far tour and its cost
// ((nil, +Inf) before the first iteration).
func (c *Colony) Best() ([]int, float64) { return CopyTour(c.best), c.bestCost }

// Run performs one complete search:
//
//  1. the pheromone field and the best-so-far record are reset;
//  2. exactly Options.Iterations times: build Options.Ants tours from
//     Options.Start, cost them, evaporate and deposit with the whole batch,
//     then keep the batch's first cheapest tour if it strictly improves on
//     the best so far;
//  3. the best-so-far tour is returned.
//
// ctx is checked between iterations only; a cancelled context aborts the run
// with ctx.Err() wrapped. Calling Run again starts a new search that
// continues the colony's random stream.
//
// Errors: ErrDegenerateDistribution, context errors.
// Complexity: O(iterations · ants · n²).
func (c *Colony) Run(ctx context.Context) (Result, error) {
	c.field.reset()
	c.best, c.bestCost, c.bestIter = nil, math.Inf(1), -1
	c.history = make([]float64, 0, c.opts.Iterations)

	var (
		batch = make([]Ant, c.opts.Ants)
		it    int
		k     int
		err   error
	)
	for it = 0; it < c.opts.Iterations; it++ {
		if err = ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("aco: run aborted before iteration %d: %w", it, err)
		}

		// a+b) build and cost the batch against an unchanged field.
		if err = c.constructBatch(batch); err != nil {
			return Result{}, fmt.Errorf("iteration %d: %w", it, err)
		}

		// c) single serialized update with the full batch.
		if err = c.field.EvaporateAndDeposit(batch, c.opts.Rho, c.opts.Q); err != nil {
			return Result{}, fmt.Errorf("iteration %d: %w", it, err)
		}

		// d+e) stable minimum, strict improvement.
		k = iterationBest(batch)
		improved := batch[k].Cost < c.bestCost
		if improved {
			c.best = CopyTour(batch[k].Tour)
			c.bestCost = batch[k].Cost
			c.bestIter = it
		}
		c.history = append(c.history, c.bestCost)

		if c.opts.OnIteration != nil {
			c.opts.OnIteration(IterationStats{
				Iteration:         it,
				IterationBestTour: batch[k].Tour,
				IterationBestCost: batch[k].Cost,
				BestCost:          c.bestCost,
				Improved:          improved,
			})
		}
	}

	return Result{
		Tour:          CopyTour(c.best),
		Cost:          c.bestCost,
		BestIteration: c.bestIter,
		History:       append([]float64(nil), c.history...),
	}, nil
}

// constructBatch fills batch with one costed tour per ant. Every ant stream
// is reseeded from the colony stream first, in ant order, so the batch is
// the same whether it is built serially or by several workers.
func (c *Colony) constructBatch(batch []Ant) error {
	for k, ant := range c.ants {
		reseedStream(ant.rng, c.rng, uint64(k))
	}

	if c.opts.Workers <= 1 {
		for k := range c.ants {
			if err := c.buildOne(k, batch); err != nil {
				return err
			}
		}

		return nil
	}

	var g errgroup.Group
	g.SetLimit(c.opts.Workers)
	for k := range c.ants {
		k := k
		g.Go(func() error { return c.buildOne(k, batch) })
	}

	return g.Wait()
}

// buildOne runs ant k and stores its tour and cost in batch[k].
func (c *Colony) buildOne(k int, batch []Ant) error {
	tour, err := c.ants[k].constructTour(c.opts.Start)
	if err != nil {
		return fmt.Errorf("ant %d: %w", k, err)
	}
	cost, err := TourCost(c.dist, tour)
	if err != nil {
		return fmt.Errorf("ant %d: %w", k, err)
	}
	batch[k] = Ant{Tour: tour, Cost: cost}

	return nil
}

// iterationBest returns the index of the first ant with the minimum cost.
//
// Complexity: O(len(batch)).
func iterationBest(batch []Ant) int {
	best := 0
	for k := 1; k < len(batch); k++ {
		if batch[k].Cost < batch[best].Cost {
			best = k
		}
	}

	return best
}

// Solve is the one-shot entry point: NewColony followed by Run.
//
// Example:
//
//	res, err := aco.Solve(dist, aco.WithStart(0), aco.WithSeed(42))
func Solve(dist matrix.Matrix, opts ...Option) (Result, error) {
	return SolveContext(context.Background(), dist, opts...)
}

// SolveContext is Solve with a context checked between iterations.
func SolveContext(ctx context.Context, dist matrix.Matrix, opts ...Option) (Result, error) {
	c, err := NewColony(dist, opts...)
	if err != nil {
		return Result{}, err
	}

	return c.Run(ctx)
}
