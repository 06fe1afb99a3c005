// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Per-column statistics and scaling, for putting groups of very different
//     magnitude (a small region next to a large one) on a comparable scale
//     before a decomposition, and mapping the components back afterwards.
//
// Exposed API:
//   - ColumnMeans(X)         -> means   // Σ_i X[i,j] / r
//   - ScaleColumns(X, scale) -> Y       // Y[i,j] = X[i,j]·scale[j]
//
// Determinism:
//   - Fixed i→j traversal; Dense fast path on the flat buffer, At fallback otherwise.

package matrix

import "math"

const (
	opColumnMeans  = "ColumnMeans"
	opScaleColumns = "ScaleColumns"
)

// ColumnMeans returns the mean of every column.
// Implementation:
//   - Stage 1: validate X non-nil and non-empty.
//   - Stage 2: accumulate column sums in row order, then divide by r.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (zero rows or columns).
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColumnMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	r, c := X.Rows(), X.Cols()
	if r == 0 || c == 0 {
		return nil, matrixErrorf(opColumnMeans, ErrInvalidDimensions)
	}
	d, err := denseOf(X)
	if err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}

	means := make([]float64, c)
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			means[j] += d.data[base+j]
		}
	}
	invR := 1.0 / float64(r)
	for j = range means {
		means[j] *= invR
	}

	return means, nil
}

// ScaleColumns computes out[i,j] = X[i,j]·scale[j] into a fresh Dense.
// Use 1/mean (or 1/std) to normalize and the plain factors to undo it.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(scale) != c), ErrNaNInf (non-finite factor).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ScaleColumns(X Matrix, scale []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opScaleColumns, err)
	}
	if err := ValidateVecLen(scale, X.Cols()); err != nil {
		return nil, matrixErrorf(opScaleColumns, err)
	}
	for _, s := range scale {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, matrixErrorf(opScaleColumns, ErrNaNInf)
		}
	}
	out, err := Copy(X)
	if err != nil {
		return nil, matrixErrorf(opScaleColumns, err)
	}

	var i, j, base int
	for i = 0; i < out.r; i++ {
		base = i * out.c
		for j = 0; j < out.c; j++ {
			out.data[base+j] *= scale[j]
		}
	}

	return out, nil
}
