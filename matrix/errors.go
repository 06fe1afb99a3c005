// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels return these sentinels (possibly wrapped with an
// operation tag) and tests check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Kernels wrap with matrixErrorf("<Op>", ErrX); callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> dimension mismatch -> NaN/Inf -> numerical failure.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// or that a row slice is ragged.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub of different shapes, Mul where a.Cols != b.Rows, or a label
	// set whose length does not match the matrix side it annotates.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrUnknownLabel indicates that a referenced row or column label is not
	// present in a Labeled matrix.
	ErrUnknownLabel = errors.New("matrix: unknown label")

	// ErrDuplicateLabel indicates that a label appears twice on the same axis.
	ErrDuplicateLabel = errors.New("matrix: duplicate label")

	// ErrSVDFailed indicates that the singular value decomposition routine did
	// not converge. It depends on the numerical routine, not on the caller's shape.
	ErrSVDFailed = errors.New("matrix: singular value decomposition failed")
)
