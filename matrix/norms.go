// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Norms and element statistics consumed by iterative decompositions:
//     Frobenius (residuals), ∞-norm and spectral norm (dual initialization),
//     non-zero counts and numerical rank (diagnostics), AllClose (comparisons).
//
// Determinism & Performance:
//   - Flat single-pass loops over *Dense; O(r*c) except SpectralNorm (one SVD).

package matrix

import (
	"math"
)

const (
	opFrobenius = "FrobeniusNorm"
	opInfNorm   = "InfNorm"
	opMaxAbs    = "MaxAbs"
	opSpectral  = "SpectralNorm"
	opNonZero   = "CountNonZero"
	opAllClose  = "AllClose"
)

// FrobeniusNorm returns ‖m‖_F = √(Σ m[i,j]²).
// Implementation: scaled sum of squares (LAPACK dlassq style) so that very
// large or very small entries neither overflow nor underflow.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func FrobeniusNorm(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}

	scale, ssq := 0.0, 1.0
	var a, q float64
	for _, v := range d.data {
		if v == 0 {
			continue
		}
		a = math.Abs(v)
		if scale < a {
			q = scale / a
			ssq = 1 + ssq*q*q
			scale = a
		} else {
			q = a / scale
			ssq += q * q
		}
	}

	return scale * math.Sqrt(ssq), nil
}

// InfNorm returns the induced ∞-norm: the maximum absolute row sum
// max_i Σ_j |m[i,j]|.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func InfNorm(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opInfNorm, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return 0, matrixErrorf(opInfNorm, err)
	}

	best := 0.0
	var i, j int
	var sum float64
	for i = 0; i < d.r; i++ {
		sum = 0
		for j = 0; j < d.c; j++ {
			sum += math.Abs(d.data[i*d.c+j])
		}
		if sum > best {
			best = sum
		}
	}

	return best, nil
}

// MaxAbs returns max |m[i,j]| (the element-wise max norm).
// Errors: ErrNilMatrix. Complexity: O(r*c).
func MaxAbs(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opMaxAbs, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return 0, matrixErrorf(opMaxAbs, err)
	}

	best := 0.0
	for _, v := range d.data {
		if a := math.Abs(v); a > best {
			best = a
		}
	}

	return best, nil
}

// SpectralNorm returns ‖m‖₂, the largest singular value.
// Errors: ErrNilMatrix, ErrSVDFailed. Complexity: one SVD, O(min(m,n)·m·n).
func SpectralNorm(m Matrix) (float64, error) {
	s, err := SingularValues(m)
	if err != nil {
		return 0, matrixErrorf(opSpectral, err)
	}
	if len(s) == 0 {
		return 0, nil
	}

	return s[0], nil
}

// CountNonZero counts entries with |m[i,j]| > tol.
// tol is treated as |tol|; tol = 0 counts exact non-zeros.
// Errors: ErrNilMatrix, ErrNaNInf (non-finite tol). Complexity: O(r*c).
func CountNonZero(m Matrix, tol float64) (int, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return 0, matrixErrorf(opNonZero, ErrNaNInf)
	}
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNonZero, err)
	}
	d, err := denseOf(m)
	if err != nil {
		return 0, matrixErrorf(opNonZero, err)
	}

	tol = math.Abs(tol)
	n := 0
	for _, v := range d.data {
		if math.Abs(v) > tol {
			n++
		}
	}

	return n, nil
}

// NumericalRank counts singular values strictly greater than tol·σ₁.
// values must be sorted in decreasing order (as returned by SVD).
// An empty or all-zero spectrum has rank 0.
func NumericalRank(values []float64, tol float64) int {
	if len(values) == 0 || values[0] <= 0 {
		return 0
	}
	cut := math.Abs(tol) * values[0]
	rank := 0
	for _, s := range values {
		if s > cut {
			rank++
		}
	}

	return rank
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//
// Time: O(r*c). Space: O(1). Deterministic.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := denseOf(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := denseOf(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	for k := range da.data {
		if math.Abs(da.data[k]-db.data[k]) > atol+rtol*math.Abs(db.data[k]) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}
