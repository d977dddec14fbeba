// Package matrix_test provides benchmarks for the Dense kernels used by the
// pheromone update, using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/IanMeirellesDuraes/AntColonyOptimization-ACO-TSP/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{32, 128, 512}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkF float64
)

func mustDense(b *testing.B, r, c int) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func fillDenseRand(b *testing.B, d *matrix.Dense, seed int64) {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < d.Rows(); i++ {
		for j := 0; j < d.Cols(); j++ {
			if err := d.Set(i, j, rng.Float64()); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkScale(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			fillDenseRand(b, A, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				A.Scale(0.99)
			}
		})
	}
}

// BenchmarkAddAtTour deposits along a closed tour, the per-ant update pattern.
func BenchmarkAddAtTour(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			tour := rand.New(rand.NewSource(7)).Perm(n)
			tour = append(tour, tour[0])
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for k := 0; k < n; k++ {
					if err := A.AddAt(tour[k], tour[k+1], 0.5); err != nil {
						b.Fatal(err)
					}
				}
			}
		})
	}
}

func BenchmarkAtRowScan(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			fillDenseRand(b, A, 42)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				var s float64
				for j := 0; j < n; j++ {
					v, err := A.At(i%n, j)
					if err != nil {
						b.Fatal(err)
					}
					s += v
				}
				sinkF = s
			}
		})
	}
}

func BenchmarkClone(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			fillDenseRand(b, A, 3)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = A.Clone()
			}
		})
	}
}
