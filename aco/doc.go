// Package aco provides an Ant Colony Optimization (Ant System) solver for the
// shortest closed tour over a weighted, fully connected graph.
//
// The solver works on a distance matrix (matrix.Matrix, N×N):
//
//   - A distance of math.Inf(1) on the diagonal means "no self-loop"; the
//     diagonal is never read. Off-diagonal entries must be finite and ≥ 0.
//   - Every returned tour has length N+1 and starts and ends at the start node.
//
// Algorithm (one run):
//
//  1. The pheromone field τ is initialised to 1/N on every directed edge.
//  2. For a fixed number of iterations, a batch of ants each builds a tour.
//     From node i an ant moves to an unvisited node j with probability
//     proportional to τ[i][j]^α · (1/d[i][j])^β.
//  3. After the whole batch is built and costed, τ evaporates by (1−ρ) and
//     every ant deposits Q/cost on each edge of its tour.
//  4. The cheapest tour of the batch (first one on ties) replaces the
//     best-so-far tour when it is strictly cheaper.
//
// Complexity:
//
//   - Time:   O(iterations · ants · N²)
//   - Memory: O(N²) for τ and the heuristic table, O(ants · N) per batch.
//
// Determinism: all randomness flows from one *rand.Rand (WithRand) or a seed
// (WithSeed). Each ant draws from its own stream derived from it before the
// batch starts, so a fixed seed yields identical results for any WithWorkers
// value.
//
// Errors: every validation failure matches ErrInvalidParameter via errors.Is
// and is reported before the first iteration. A move distribution whose
// weights sum to zero (or overflow) fails with ErrDegenerateDistribution
// instead of sampling from NaN probabilities.
package aco
