// Package aco - RNG utilities.
//
// All randomness of a colony flows from a single *rand.Rand. Before a batch
// is built, one value is drawn from it per ant and mixed into that ant's own
// stream, so the outcome does not depend on how many goroutines build the
// batch.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each ant owns its stream; the
//     colony stream is only touched between batches.
package aco

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64 finalizer, so neighbouring streams are uncorrelated.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// reseedStream draws one value from base and reseeds child with it mixed with
// stream. child keeps its allocation across batches.
//
// Complexity: O(1) amortised (rand.Source seeding is a fixed-size loop).
func reseedStream(child, base *rand.Rand, stream uint64) {
	child.Seed(deriveSeed(base.Int63(), stream))
}
