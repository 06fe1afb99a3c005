// SPDX-License-Identifier: MIT

package rpca

import "github.com/katalvlaran/lowrank/matrix"

// Result is the outcome of one decomposition M ≈ Low + Sparse.
//
// A Result is always complete: when the iteration budget runs out before the
// tolerance is met, Converged is false but Low and Sparse are still the last
// iterate and satisfy M ≈ Low + Sparse to within Residual.
type Result struct {
	Low    *matrix.Dense // L, low-rank component
	Sparse *matrix.Dense // S, sparse component

	Method     Method
	Iterations int     // iterations executed (≥ 1)
	Residual   float64 // ‖M−L−S‖_F / ‖M‖_F after the last iteration
	Converged  bool

	Lambda float64 // effective sparsity weight
	Mu0    float64 // effective initial penalty

	Rank    int // number of non-zero singular values kept in Low
	NonZero int // number of non-zero entries in Sparse

	Trace []float64 // per-iteration residuals, only with WithResidualTrace
}

// IterationStat is the per-iteration snapshot passed to an Observer.
type IterationStat struct {
	Method    Method
	Iteration int // 0-based
	Residual  float64
	Mu        float64 // penalty used by this iteration
	Rank      int
	NonZero   int
}
