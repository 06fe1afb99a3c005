// Package rpca_test benchmarks the solvers on tall time × group matrices with
// a fixed rank-2 background and a sprinkle of spikes.
package rpca_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lowrank/matrix"
	"github.com/katalvlaran/lowrank/rpca"
)

var benchShapes = [][2]int{{100, 6}, {250, 12}}

// sinks to defeat dead-code elimination
var (
	sinkR *rpca.Result
	sinkD *matrix.Dense
)

// benchInput returns a rows×cols rank-2 matrix with ~2% spikes, from a fixed seed.
func benchInput(b *testing.B, rows, cols int) *matrix.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(7))
	u1, u2 := make([]float64, rows), make([]float64, rows)
	for i := range u1 {
		u1[i], u2[i] = rng.Float64()*10, rng.NormFloat64()
	}
	v1, v2 := make([]float64, cols), make([]float64, cols)
	for j := range v1 {
		v1[j], v2[j] = 1+rng.Float64(), rng.NormFloat64()
	}
	m := mustDense(b, rows, cols)
	if err := m.Apply(func(i, j int, _ float64) float64 {
		v := u1[i]*v1[j] + u2[i]*v2[j]
		if rng.Float64() < 0.02 {
			v += 50
		}
		return v
	}); err != nil {
		b.Fatal(err)
	}

	return m
}

func benchmarkSolver(b *testing.B, solve func(matrix.Matrix, ...rpca.Option) (*rpca.Result, error)) {
	b.ReportAllocs()
	for _, s := range benchShapes {
		b.Run(fmt.Sprintf("%dx%d", s[0], s[1]), func(b *testing.B) {
			m := benchInput(b, s[0], s[1])
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				res, err := solve(m, rpca.WithMaxIter(200))
				if err != nil {
					b.Fatal(err)
				}
				sinkR = res
			}
		})
	}
}

func BenchmarkPCP(b *testing.B)  { benchmarkSolver(b, rpca.PCP) }
func BenchmarkIRLS(b *testing.B) { benchmarkSolver(b, rpca.IRLS) }

func BenchmarkSVT(b *testing.B) {
	b.ReportAllocs()
	for _, s := range benchShapes {
		b.Run(fmt.Sprintf("%dx%d", s[0], s[1]), func(b *testing.B) {
			m := benchInput(b, s[0], s[1])
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				l, err := rpca.SVT(m, 1)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = l
			}
		})
	}
}
