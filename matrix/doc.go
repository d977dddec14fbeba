// Package matrix provides the dense float64 matrix used for distance and
// pheromone tables.
//
// What & Why:
//
//	The Matrix interface is a uniform abstraction over two-dimensional mutable
//	arrays of float64 values. Dense is the row-major implementation; it keeps
//	its elements in a single flat slice so that whole-matrix kernels
//	(Fill, Scale) are one tight loop.
//
// Numeric policy:
//
//	NaN is rejected on ingestion (NewDenseFromRows, Set). ±Inf is accepted,
//	because a distance matrix marks its diagonal with +Inf ("no self-loop").
//
// Complexity:
//
//	Rows, Cols, At, Set and AddAt run in O(1) and return errors on invalid
//	indices instead of panicking. Clone, Fill, Scale and ToRows are O(r*c).
package matrix
