// SPDX-License-Identifier: MIT

package rpca

import "github.com/katalvlaran/lowrank/matrix"

// LabeledResult carries L and S with the input's row/column labels.
// Result holds the unlabeled components and the solve diagnostics.
type LabeledResult struct {
	Low    *matrix.Labeled
	Sparse *matrix.Labeled
	Result *Result
}

// DecomposeLabeled runs method on the numeric payload of lm and relabels both
// components with lm's labels, unchanged. Labels are opaque to the math.
func DecomposeLabeled(lm *matrix.Labeled, method Method, opts ...Option) (*LabeledResult, error) {
	if lm == nil {
		return nil, invalidInput(opLabeled, matrix.ErrNilMatrix)
	}
	res, err := Decompose(lm.Dense(), method, opts...)
	if err != nil {
		return nil, err
	}
	low, err := lm.Relabel(res.Low)
	if err != nil {
		return nil, computationFailed(opLabeled, err)
	}
	sparse, err := lm.Relabel(res.Sparse)
	if err != nil {
		return nil, computationFailed(opLabeled, err)
	}

	return &LabeledResult{Low: low, Sparse: sparse, Result: res}, nil
}
