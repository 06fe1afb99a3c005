// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Economy singular value decomposition backed by gonum's LAPACK port.
//   - Rank-k reconstruction U·diag(σ)·Vᵗ on the package's own Dense type.
//
// Determinism:
//   - gonum's Gesvd is deterministic for a given input; only the basis of a
//     degenerate singular subspace (tied σ) is implementation-defined.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opSVD         = "SVD"
	opReconstruct = "Reconstruct"
	opSingular    = "SingularValues"
)

// SVDFactors holds an economy decomposition X = U·diag(Values)·VT.
//   - U:      m×k, orthonormal columns.
//   - Values: k singular values in decreasing order, all ≥ 0.
//   - VT:     k×n, orthonormal rows.
//
// where k = min(m, n).
type SVDFactors struct {
	U      *Dense
	Values []float64
	VT     *Dense
}

// Rank reports k = len(Values), the size of the economy factorization.
func (f *SVDFactors) Rank() int { return len(f.Values) }

// toGonum copies a Dense into a freshly allocated gonum matrix.
func toGonum(d *Dense) *mat.Dense {
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return mat.NewDense(d.r, d.c, buf)
}

// fromGonum copies any gonum matrix into a Dense with the default policy.
func fromGonum(g mat.Matrix) (*Dense, error) {
	r, c := g.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[i*c+j] = g.At(i, j)
		}
	}

	return out, nil
}

// ToGonum exports m as a *mat.Dense for interop with the wider gonum ecosystem.
// The result shares no storage with m.
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	d, err := denseOf(m)
	if err != nil {
		return nil, err
	}

	return toGonum(d), nil
}

// FromGonum imports any gonum matrix as a Dense copy.
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, ErrNilMatrix
	}

	return fromGonum(g)
}

// SVD computes the economy (thin) singular value decomposition of m.
// MAIN DESCRIPTION:
//   - Full-precision SVD with k = min(m,n) singular triplets; the workhorse
//     of singular value thresholding.
//
// Implementation:
//   - Stage 1: validate non-nil; materialize the operand as Dense.
//   - Stage 2: gonum mat.SVD.Factorize(SVDThin); copy U, σ, Vᵗ back into Dense.
//
// Errors:
//   - ErrNilMatrix; ErrSVDFailed when the LAPACK routine does not converge.
//
// Complexity:
//   - Time O(min(m,n)·m·n), Space O(m·k + k·n).
func SVD(m Matrix) (*SVDFactors, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}

	var svd mat.SVD
	if ok := svd.Factorize(toGonum(d), mat.SVDThin); !ok {
		return nil, matrixErrorf(opSVD, fmt.Errorf("%d×%d input: %w", d.r, d.c, ErrSVDFailed))
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	U, err := fromGonum(&u)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	VT, err := fromGonum(v.T())
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}

	return &SVDFactors{U: U, Values: svd.Values(nil), VT: VT}, nil
}

// SingularValues returns σ₁ ≥ σ₂ ≥ … ≥ σ_k without forming U or V.
// Errors: ErrNilMatrix, ErrSVDFailed.
func SingularValues(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSingular, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opSingular, err)
	}

	var svd mat.SVD
	if ok := svd.Factorize(toGonum(d), mat.SVDNone); !ok {
		return nil, matrixErrorf(opSingular, ErrSVDFailed)
	}

	return svd.Values(nil), nil
}

// Reconstruct forms U·diag(values)·VT.
// Implementation:
//   - Stage 1: validate U is m×k, VT is k×n, len(values) == k.
//   - Stage 2: accumulate rank-1 terms σ_r·u_r·v_rᵗ, skipping σ_r == 0.
//
// Behavior highlights:
//   - Zeroed singular values drop out entirely, which is how thresholding lowers the rank.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(k·m·n), Space O(m·n).
func Reconstruct(u Matrix, values []float64, vt Matrix) (*Dense, error) {
	if err := ValidateNotNil(u); err != nil {
		return nil, matrixErrorf(opReconstruct, err)
	}
	if err := ValidateNotNil(vt); err != nil {
		return nil, matrixErrorf(opReconstruct, err)
	}
	k := len(values)
	if u.Cols() != k || vt.Rows() != k {
		return nil, matrixErrorf(opReconstruct, ErrDimensionMismatch)
	}
	du, err := denseOf(u)
	if err != nil {
		return nil, matrixErrorf(opReconstruct, err)
	}
	dv, err := denseOf(vt)
	if err != nil {
		return nil, matrixErrorf(opReconstruct, err)
	}

	m, n := du.r, dv.c
	out, err := NewDense(m, n)
	if err != nil {
		return nil, matrixErrorf(opReconstruct, err)
	}

	var i, j, r int
	var sr, coef float64
	for r = 0; r < k; r++ {
		sr = values[r]
		if sr == 0 {
			continue
		}
		for i = 0; i < m; i++ {
			coef = du.data[i*k+r] * sr
			if coef == 0 {
				continue
			}
			for j = 0; j < n; j++ {
				out.data[i*n+j] += coef * dv.data[r*n+j]
			}
		}
	}

	return out, nil
}
