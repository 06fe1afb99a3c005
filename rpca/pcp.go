// SPDX-License-Identifier: MIT

package rpca

import "github.com/katalvlaran/lowrank/matrix"

// PCP decomposes m into a low-rank L and a sparse S by Principal Component
// Pursuit, solved with the inexact augmented Lagrange multiplier method:
//
//	minimize ‖L‖_* + λ‖S‖₁  subject to  L + S = M
//
// Defaults (override with options):
//   - λ  = 1/sqrt(max(rows, cols))       WithLambda
//   - μ₀ = 1.25/‖M‖₂                     WithMu
//   - μ̄  = μ₀·1e7, ρ = 1.5               WithMuBarFactor, WithRho
//   - 1000 iterations, tolerance 1e-7    WithMaxIter, WithTolerance
//
// m is read-only; the result matrices are freshly allocated.
// Errors: ErrInvalidInput, ErrComputation (see errors.go).
func PCP(m matrix.Matrix, opts ...Option) (*Result, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, invalidInput(opPCP, err)
	}

	return solve(opPCP, MethodPCP, m, uniformSVT{}, o)
}
