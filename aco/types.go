package aco

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors returned by the solver.
//
// The Err* refinements below all wrap ErrInvalidParameter, so callers can
// test either the broad class or the exact cause with errors.Is.
var (
	// ErrInvalidParameter is the class of every input-validation failure.
	ErrInvalidParameter = errors.New("aco: invalid parameter")

	// ErrDegenerateDistribution indicates that the move probabilities for some
	// step could not be normalised (all candidate weights were zero, or their
	// sum was not a finite positive number).
	ErrDegenerateDistribution = errors.New("aco: degenerate move distribution")

	// ErrNilMatrix indicates a nil distance matrix.
	ErrNilMatrix = fmt.Errorf("%w: distance matrix is nil", ErrInvalidParameter)

	// ErrNonSquare indicates a distance matrix with Rows != Cols.
	ErrNonSquare = fmt.Errorf("%w: distance matrix is not square", ErrInvalidParameter)

	// ErrTooFewNodes indicates a distance matrix smaller than 2×2.
	ErrTooFewNodes = fmt.Errorf("%w: at least 2 nodes are required", ErrInvalidParameter)

	// ErrDimensionMismatch indicates a tour whose shape does not match the matrix.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrInvalidParameter)

	// ErrStartOutOfRange indicates a start node outside [0, N).
	ErrStartOutOfRange = fmt.Errorf("%w: start node out of range", ErrInvalidParameter)

	// ErrNegativeWeight indicates a negative off-diagonal distance.
	ErrNegativeWeight = fmt.Errorf("%w: negative distance", ErrInvalidParameter)

	// ErrInvalidWeight indicates a NaN off-diagonal distance.
	ErrInvalidWeight = fmt.Errorf("%w: NaN distance", ErrInvalidParameter)

	// ErrIncompleteGraph indicates an infinite off-diagonal distance; the graph
	// must be fully connected.
	ErrIncompleteGraph = fmt.Errorf("%w: infinite off-diagonal distance", ErrInvalidParameter)

	// ErrBadAnts indicates Ants < 1.
	ErrBadAnts = fmt.Errorf("%w: ants must be >= 1", ErrInvalidParameter)

	// ErrBadIterations indicates Iterations < 1.
	ErrBadIterations = fmt.Errorf("%w: iterations must be >= 1", ErrInvalidParameter)

	// ErrBadAlpha indicates a negative or non-finite α.
	ErrBadAlpha = fmt.Errorf("%w: alpha must be finite and >= 0", ErrInvalidParameter)

	// ErrBadBeta indicates a negative or non-finite β.
	ErrBadBeta = fmt.Errorf("%w: beta must be finite and >= 0", ErrInvalidParameter)

	// ErrBadRho indicates ρ outside [0, 1).
	ErrBadRho = fmt.Errorf("%w: rho must be in [0, 1)", ErrInvalidParameter)

	// ErrBadQ indicates a negative or non-finite deposit constant.
	ErrBadQ = fmt.Errorf("%w: Q must be finite and >= 0", ErrInvalidParameter)

	// ErrBadWorkers indicates Workers < 0.
	ErrBadWorkers = fmt.Errorf("%w: workers must be >= 0", ErrInvalidParameter)
)

// Reference hyperparameters.
const (
	DefaultAnts       = 10
	DefaultIterations = 100
	DefaultAlpha      = 1.0
	DefaultBeta       = 1.0
	DefaultRho        = 0.01
	DefaultQ          = 10.0
)

// Ant is one constructed tour together with its cost.
type Ant struct {
	// Tour has length N+1 with Tour[0] == Tour[N] == start.
	Tour []int

	// Cost is the sum of consecutive edge weights along Tour.
	Cost float64
}

// Result holds the outcome of a colony run.
type Result struct {
	// Tour is the best tour found. For n nodes, len(Tour) == n+1 and
	// Tour[0] == Tour[n] == start.
	Tour []int

	// Cost is the total distance of Tour.
	Cost float64

	// BestIteration is the 0-based iteration that produced Tour.
	BestIteration int

	// History[i] is the best-so-far cost after iteration i.
	// It is monotonically non-increasing.
	History []float64
}

// IterationStats is passed to the iteration hook after every iteration.
type IterationStats struct {
	Iteration         int     // 0-based iteration index
	IterationBestTour []int   // cheapest tour of this batch (first on ties)
	IterationBestCost float64 // its cost
	BestCost          float64 // best-so-far cost after this iteration
	Improved          bool    // true if this iteration replaced the best-so-far tour
}

// Options configures a colony.
//
// Start       – start (and end) node of every tour.
// Ants        – tours built per iteration (≥ 1).
// Iterations  – number of iterations (≥ 1); there is no early stop.
// Alpha, Beta – exponents on pheromone and inverse distance (finite, ≥ 0).
// Rho         – evaporation rate in [0, 1).
// Q           – deposit constant (finite, ≥ 0).
// Seed        – seed for the default RNG; 0 means the fixed default seed.
// Rand        – explicit random source; takes precedence over Seed.
// Workers     – tours built concurrently per batch; 0 or 1 means serial.
// OnIteration – optional hook called after every iteration.
type Options struct {
	Start       int
	Ants        int
	Iterations  int
	Alpha       float64
	Beta        float64
	Rho         float64
	Q           float64
	Seed        int64
	Rand        *rand.Rand
	Workers     int
	OnIteration func(IterationStats)
}

// Option represents a functional option for configuring a colony.
type Option func(*Options)

// DefaultOptions returns the reference configuration: 10 ants, 100
// iterations, α=β=1, ρ=0.01, Q=10, start node 0, serial construction.
func DefaultOptions() Options {
	return Options{
		Start:      0,
		Ants:       DefaultAnts,
		Iterations: DefaultIterations,
		Alpha:      DefaultAlpha,
		Beta:       DefaultBeta,
		Rho:        DefaultRho,
		Q:          DefaultQ,
	}
}

// WithStart sets the start node.
func WithStart(start int) Option {
	return func(o *Options) { o.Start = start }
}

// WithAnts sets the number of ants per iteration.
func WithAnts(n int) Option {
	return func(o *Options) { o.Ants = n }
}

// WithIterations sets the number of iterations.
func WithIterations(n int) Option {
	return func(o *Options) { o.Iterations = n }
}

// WithAlpha sets the pheromone exponent α.
func WithAlpha(alpha float64) Option {
	return func(o *Options) { o.Alpha = alpha }
}

// WithBeta sets the inverse-distance exponent β.
func WithBeta(beta float64) Option {
	return func(o *Options) { o.Beta = beta }
}

// WithRho sets the evaporation rate ρ.
func WithRho(rho float64) Option {
	return func(o *Options) { o.Rho = rho }
}

// WithQ sets the deposit constant Q.
func WithQ(q float64) Option {
	return func(o *Options) { o.Q = q }
}

// WithSeed seeds the colony's default random source.
// Ignored when WithRand is also given.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand injects the random source. The colony takes ownership: r must not
// be used concurrently by the caller while a run is in progress.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// WithWorkers sets how many tours of a batch may be built concurrently.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithIterationHook registers fn to be called after every iteration, on the
// goroutine running the colony.
func WithIterationHook(fn func(IterationStats)) Option {
	return func(o *Options) { o.OnIteration = fn }
}
