// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/finite checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Finite).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is treated as nil as well.
// Returns ErrNilMatrix. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Returns ErrDimensionMismatch. Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite checks that m is non-nil, non-empty and contains only finite values.
// MAIN DESCRIPTION:
//   - Gatekeeper for iterative solvers: a single NaN/Inf entry propagates
//     through an SVD and poisons every later iterate, so it is rejected up front.
//
// Implementation:
//   - Stage 1: NotNil; Rows()>0 && Cols()>0.
//   - Stage 2: scan the flat buffer (*Dense) or At() in i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrNaNInf (with the first offending coordinates).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func ValidateFinite(m Matrix) error {
	const tag = "ValidateFinite"
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	r, c := m.Rows(), m.Cols()
	if r <= 0 || c <= 0 {
		return validatorErrorf(tag, ErrInvalidDimensions)
	}

	if d, ok := m.(*Dense); ok {
		for k, v := range d.data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%s(%d,%d): %w", tag, k/c, k%c, ErrNaNInf)
			}
		}
		return nil
	}

	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return validatorErrorf(tag, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%s(%d,%d): %w", tag, i, j, ErrNaNInf)
			}
		}
	}

	return nil
}
