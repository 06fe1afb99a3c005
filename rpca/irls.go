// SPDX-License-Identifier: MIT

package rpca

import "github.com/katalvlaran/lowrank/matrix"

// IRLS is the non-convex variant of PCP: identical initialization, penalty
// schedule and stopping rule, but the L-update is a weighted SVT whose
// per-value thresholds come from the previous iteration's singular values
// (iteratively reweighted nuclear norm). Directions that were already small
// are penalized harder, which sharpens the rank separation.
//
// Accepts every PCP option plus WithWeightEpsilon.
func IRLS(m matrix.Matrix, opts ...Option) (*Result, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, invalidInput(opIRLS, err)
	}

	return solve(opIRLS, MethodIRLS, m, reweightedSVT{eps: o.eps}, o)
}
