// Package acotsp is a small, deterministic Ant Colony Optimization toolkit
// for the travelling salesman problem.
//
// 🚀 What is in the box?
//
//   - aco/      — the Ant System kernel: pheromone field, tour construction,
//     colony controller, functional options
//   - matrix/   — dense row-major float64 matrices + validators
//   - instance/ — YAML/JSON instance files and built-in reference instances
//   - cmd/aco   — command-line solver (solve, instances, version)
//
// ✨ Guarantees
//
//   - Seeded runs are reproducible, also with parallel tour construction.
//   - Invalid input fails before the first iteration with errors that match
//     aco.ErrInvalidParameter.
//   - A distribution that cannot be sampled is reported as
//     aco.ErrDegenerateDistribution, never sampled through NaN.
//
// Quick example:
//
//	dist, _ := matrix.NewDenseFromRows([][]float64{
//		{0, 2, 9, 10},
//		{2, 0, 6, 4},
//		{9, 6, 0, 3},
//		{10, 4, 3, 0},
//	})
//	res, err := aco.Solve(dist, aco.WithStart(0), aco.WithSeed(42))
//	// res.Tour is [0 1 3 2 0] or its reverse, res.Cost == 18
//
//	go install github.com/IanMeirellesDuraes/AntColonyOptimization-ACO-TSP/cmd/aco@latest
package acotsp
