// SPDX-License-Identifier: MIT

package rpca

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lowrank/matrix"
)

const (
	opShrink       = "Shrink"
	opSVT          = "SVT"
	opWeightedSVT  = "WeightedSVT"
	opPCP          = "PCP"
	opIRLS         = "IRLS"
	opDecompose    = "Decompose"
	opLabeled      = "DecomposeLabeled"
	opBatch        = "RunBatch"
	opParseConfig  = "ParseConfig"
	opValidateConf = "Config.Validate"
)

// Shrink applies the soft-thresholding operator element-wise:
//
//	out[i,j] = sign(x) · max(|x| − τ, 0)
//
// MAIN DESCRIPTION:
//   - Proximal operator of τ‖·‖₁; produces the sparse component update.
//
// Behavior highlights:
//   - Pure: X is never modified; the result is a fresh Dense of the same shape.
//   - τ = 0 is the identity; entries with |x| ≤ τ become exactly 0.
//
// Errors:
//   - ErrInvalidInput (+ matrix.ErrNilMatrix) for a nil X.
//   - ErrInvalidInput (+ ErrInvalidOption) for τ < 0 or non-finite τ.
//
// Complexity:
//   - Time O(m·n), Space O(m·n).
func Shrink(x matrix.Matrix, tau float64) (*matrix.Dense, error) {
	if err := validateTau(tau); err != nil {
		return nil, invalidInput(opShrink, err)
	}
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, invalidInput(opShrink, err)
	}

	return shrink(x, tau)
}

// shrink is Shrink without argument checks; the solver loop calls it with
// thresholds it derived itself.
func shrink(x matrix.Matrix, tau float64) (*matrix.Dense, error) {
	out, err := matrix.Copy(x)
	if err != nil {
		return nil, invalidInput(opShrink, err)
	}
	if tau == 0 {
		return out, nil
	}
	if err = out.Apply(func(_, _ int, v float64) float64 {
		return softThreshold(v, tau)
	}); err != nil {
		return nil, computationFailed(opShrink, err)
	}

	return out, nil
}

// ShrinkValues soft-thresholds a vector, returning a new slice.
// Negative τ is treated as 0.
func ShrinkValues(values []float64, tau float64) []float64 {
	tau = math.Max(tau, 0)
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = softThreshold(v, tau)
	}

	return out
}

func softThreshold(v, tau float64) float64 {
	switch {
	case v > tau:
		return v - tau
	case v < -tau:
		return v + tau
	default:
		return 0
	}
}

func validateTau(tau float64) error {
	if math.IsNaN(tau) || math.IsInf(tau, 0) || tau < 0 {
		return fmt.Errorf("%w: threshold=%g must be finite and >= 0", ErrInvalidOption, tau)
	}

	return nil
}
