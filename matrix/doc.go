// Package matrix offers the dense linear-algebra primitives behind the
// lowrank decomposition engine.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and a
//     finite-only numeric policy (NaN/±Inf are rejected, never coerced).
//   - Element-wise kernels (Add, Sub, AddScaled, Scale) and Mul/Transpose,
//     all returning fresh results and never mutating operands.
//   - Norms used by iterative solvers: FrobeniusNorm, InfNorm, MaxAbs,
//     SpectralNorm, plus CountNonZero and NumericalRank for diagnostics.
//   - Economy SVD and rank-k Reconstruct, backed by gonum's LAPACK port.
//   - Labeled, a Dense with opaque row/column labels carried through unchanged.
//   - ColumnMeans and ScaleColumns for per-group rescaling.
//
// Errors are package sentinels (ErrNilMatrix, ErrDimensionMismatch,
// ErrNaNInf, ErrSVDFailed, …) wrapped with an operation tag; match them with
// errors.Is.
//
// See example_test.go for usage patterns.
package matrix
