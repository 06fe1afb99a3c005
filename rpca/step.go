// SPDX-License-Identifier: MIT

package rpca

import "github.com/katalvlaran/lowrank/matrix"

// LowRankStep is the L-update of one augmented-Lagrangian iteration:
//
//	L ← prox_{τ·‖·‖}(X)
//
// It is the only place where PCP and IRLS differ. Update receives the shifted
// argument X = M − S + Y/μ, the threshold τ = 1/μ and the spectrum returned by
// the previous call (nil on the first iteration). It returns the new L and the
// thresholded singular values, which the solver threads into the next call.
//
// Implementations must be stateless; all iteration state lives in the solver.
type LowRankStep interface {
	Update(x *matrix.Dense, tau float64, prev []float64) (*matrix.Dense, []float64, error)
}

// uniformSVT applies the convex nuclear-norm prox with one threshold for all
// singular values. The previous spectrum is ignored.
type uniformSVT struct{}

func (uniformSVT) Update(x *matrix.Dense, tau float64, _ []float64) (*matrix.Dense, []float64, error) {
	return thresholdSpectrum(opSVT, x, func(values []float64) []float64 {
		return ShrinkValues(values, tau)
	})
}

// reweightedSVT applies per-value thresholds derived from the previous spectrum.
type reweightedSVT struct {
	eps float64
}

func (r reweightedSVT) Update(x *matrix.Dense, tau float64, prev []float64) (*matrix.Dense, []float64, error) {
	return weightedSVT(x, tau, prev, r.eps)
}
