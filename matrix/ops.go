// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition, subtraction, scaled accumulation (axpy), scalar
// scaling, multiplication and transpose. All functions perform fail-fast
// validation and return wrapped sentinels on misuse.
//
// Determinism & Performance:
//   - Every kernel allocates exactly one fresh *Dense result; operands are never mutated.
//   - *Dense operands are read through their flat buffer; other Matrix
//     implementations are materialized once via denseOf (fixed i→j order).

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opAddScaled = "AddScaled"
	opScale     = "Scale"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opCopy      = "Copy"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("matrix.%s: %w", tag, err)
}

// denseOf returns m itself when it is a *Dense, otherwise a materialized copy.
// Callers MUST treat the returned value as read-only.
// Complexity: O(1) fast path, O(r*c) fallback.
func denseOf(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	r, c := m.Rows(), m.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, e := m.At(i, j)
			if e != nil {
				return nil, e
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// Copy returns an independent *Dense with the same shape and values as m.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Copy(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCopy, err)
	}
	if d, ok := m.(*Dense); ok {
		return d.copyDense(), nil
	}
	d, err := denseOf(m) // fallback already materializes a fresh copy
	if err != nil {
		return nil, matrixErrorf(opCopy, err)
	}

	return d, nil
}

// combine computes out = alpha*a + beta*b for same-shape operands.
// Shared by Add, Sub and AddScaled so that validation and the flat loop live once.
func combine(a, b Matrix, alpha, beta float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := denseOf(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := denseOf(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out.validateNaNInf = da.validateNaNInf

	// Single flat loop 0..n-1.
	for k := range out.data {
		out.data[k] = alpha*da.data[k] + beta*db.data[k]
	}

	return out, nil
}

// Add computes the element-wise sum C = A + B.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Add(a, b Matrix) (*Dense, error) { return combine(a, b, 1, 1, opAdd) }

// Sub computes the element-wise difference C = A - B.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return combine(a, b, 1, -1, opSub) }

// AddScaled computes C = A + alpha·B (the classic axpy update).
// MAIN DESCRIPTION:
//   - Used by the augmented-Lagrangian solvers for the shifted arguments
//     M − S + Y/μ and for the dual ascent Y + μ·R in a single pass.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func AddScaled(a, b Matrix, alpha float64) (*Dense, error) {
	return combine(a, b, 1, alpha, opAddScaled)
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	dm, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := dm.copyDense()
	for k := range out.data {
		out.data[k] *= alpha
	}

	return out, nil
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: i→k→j loop order so the inner loop walks both B and C rows contiguously.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := denseOf(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := denseOf(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	r, n, c := da.r, da.c, db.c
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, k, j int
	var aik float64
	for i = 0; i < r; i++ {
		for k = 0; k < n; k++ {
			aik = da.data[i*n+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < c; j++ {
				out.data[i*c+j] += aik * db.data[k*c+j]
			}
		}
	}

	return out, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := denseOf(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, err := NewDense(dm.c, dm.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < dm.r; i++ {
		for j = 0; j < dm.c; j++ {
			out.data[j*dm.r+i] = dm.data[i*dm.c+j]
		}
	}

	return out, nil
}
