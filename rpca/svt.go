// SPDX-License-Identifier: MIT

package rpca

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lowrank/matrix"
)

// SVT is the singular value thresholding operator, the proximal operator of
// τ‖·‖_* (nuclear norm).
// Implementation:
//   - Stage 1: economy SVD X = U·diag(σ)·Vᵗ.
//   - Stage 2: σ' = max(σ − τ, 0); singular vectors are left untouched.
//   - Stage 3: reconstruct U·diag(σ')·Vᵗ.
//
// Behavior highlights:
//   - τ ≥ σ₁ yields the zero matrix; τ = 0 reproduces X up to rounding.
//
// Errors:
//   - ErrInvalidInput for nil X, zero-sized X, or τ < 0 / non-finite.
//   - ErrComputation (+ matrix.ErrSVDFailed) when the SVD does not converge.
//
// Complexity:
//   - Time O(min(m,n)·m·n), Space O(m·n).
func SVT(x matrix.Matrix, tau float64) (*matrix.Dense, error) {
	if err := validateTau(tau); err != nil {
		return nil, invalidInput(opSVT, err)
	}
	if err := matrix.ValidateFinite(x); err != nil {
		return nil, invalidInput(opSVT, err)
	}
	out, _, err := thresholdSpectrum(opSVT, x, func(values []float64) []float64 {
		return ShrinkValues(values, tau)
	})

	return out, err
}

// WeightedSVT thresholds each singular value with its own τ_i.
// MAIN DESCRIPTION:
//   - sPrev == nil: uniform τ_i = baseTau (identical to SVT).
//   - otherwise w_i = 1/(|sPrev_i| + eps), rescaled so that mean(w) = 1,
//     and τ_i = baseTau·w_i. Large previous singular values get a smaller
//     threshold, small ones a larger threshold.
//
// Returns:
//   - the reconstruction and the thresholded singular values σ'. The caller
//     passes σ' as sPrev on the next call.
//
// Errors:
//   - ErrInvalidInput (+ matrix.ErrDimensionMismatch) when len(sPrev) != min(m,n).
//   - ErrInvalidInput (+ ErrInvalidOption) for baseTau < 0 or eps ≤ 0 / non-finite.
//   - ErrComputation when the SVD does not converge.
func WeightedSVT(x matrix.Matrix, baseTau float64, sPrev []float64, eps float64) (*matrix.Dense, []float64, error) {
	if err := validateTau(baseTau); err != nil {
		return nil, nil, invalidInput(opWeightedSVT, err)
	}
	if !positiveFinite(eps) {
		return nil, nil, invalidInput(opWeightedSVT, optionErrorf("weight epsilon=%g must be finite and > 0", eps))
	}
	if err := matrix.ValidateFinite(x); err != nil {
		return nil, nil, invalidInput(opWeightedSVT, err)
	}
	if sPrev != nil {
		if err := matrix.ValidateVecLen(sPrev, min(x.Rows(), x.Cols())); err != nil {
			return nil, nil, invalidInput(opWeightedSVT, err)
		}
	}

	return weightedSVT(x, baseTau, sPrev, eps)
}

// weightedSVT is WeightedSVT without argument checks.
func weightedSVT(x matrix.Matrix, baseTau float64, sPrev []float64, eps float64) (*matrix.Dense, []float64, error) {
	return thresholdSpectrum(opWeightedSVT, x, func(values []float64) []float64 {
		if sPrev == nil {
			return ShrinkValues(values, baseTau)
		}
		w := reweight(sPrev, eps)
		out := make([]float64, len(values))
		for i, s := range values {
			out[i] = math.Max(s-baseTau*w[i], 0)
		}

		return out
	})
}

// reweight returns w_i = 1/(|s_i|+eps) normalized to mean 1.
func reweight(s []float64, eps float64) []float64 {
	w := make([]float64, len(s))
	var sum float64
	for i, v := range s {
		w[i] = 1 / (math.Abs(v) + eps)
		sum += w[i]
	}
	if sum == 0 {
		return w
	}
	mean := sum / float64(len(w))
	for i := range w {
		w[i] /= mean
	}

	return w
}

// thresholdSpectrum factors x, maps its singular values through fn and
// reconstructs. fn receives σ in decreasing order and must return a slice of
// the same length.
func thresholdSpectrum(op string, x matrix.Matrix, fn func([]float64) []float64) (*matrix.Dense, []float64, error) {
	f, err := matrix.SVD(x)
	if err != nil {
		return nil, nil, computationFailed(op, err)
	}
	values := fn(f.Values)
	if len(values) != f.Rank() {
		return nil, nil, computationFailed(op, fmt.Errorf("%d thresholded values for rank %d: %w",
			len(values), f.Rank(), matrix.ErrDimensionMismatch))
	}
	out, err := matrix.Reconstruct(f.U, values, f.VT)
	if err != nil {
		return nil, nil, computationFailed(op, err)
	}

	return out, values, nil
}
