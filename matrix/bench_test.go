// Package matrix_test provides benchmarks for the kernels on the hot path of
// the decomposition solvers, using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lowrank/matrix"
)

// benchShapes mirror the solver workload: tall time × group matrices.
var benchShapes = [][2]int{{100, 6}, {250, 12}, {500, 30}}

// sinks to defeat dead-code elimination
var (
	sinkD *matrix.Dense
	sinkF float64
)

func BenchmarkAddScaled(b *testing.B) {
	b.ReportAllocs()
	for _, s := range benchShapes {
		b.Run(fmt.Sprintf("%dx%d", s[0], s[1]), func(b *testing.B) {
			x := mustDense(b, s[0], s[1])
			y := mustDense(b, s[0], s[1])
			fillDenseRand(b, x, 1337)
			fillDenseRand(b, y, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.AddScaled(x, y, 0.5)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = d
			}
		})
	}
}

func BenchmarkSVDReconstruct(b *testing.B) {
	b.ReportAllocs()
	for _, s := range benchShapes {
		b.Run(fmt.Sprintf("%dx%d", s[0], s[1]), func(b *testing.B) {
			x := mustDense(b, s[0], s[1])
			fillDenseRand(b, x, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f, err := matrix.SVD(x)
				if err != nil {
					b.Fatal(err)
				}
				d, err := matrix.Reconstruct(f.U, f.Values, f.VT)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = d
			}
		})
	}
}

func BenchmarkFrobeniusNorm(b *testing.B) {
	x := mustDense(b, 500, 30)
	fillDenseRand(b, x, 99)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f, err := matrix.FrobeniusNorm(x)
		if err != nil {
			b.Fatal(err)
		}
		sinkF = f
	}
}
