// Package rpca splits a dense matrix M into a low-rank part L and a sparse
// part S, M ≈ L + S (Robust Principal Component Analysis).
//
// 🚀 What is RPCA?
//
//	Classic PCA is wrecked by a handful of gross errors.  RPCA separates them:
//	  • L captures the smooth, structured background (trend, seasonality)
//	  • S captures rare, large deviations (spikes, outages, data errors)
//	Typical input: rows = time index (weeks), columns = groups (regions).
//
// ✨ Solvers:
//   - PCP:  convex Principal Component Pursuit, minimize ‖L‖_* + λ‖S‖₁
//   - IRLS: non-convex variant with reweighted singular value thresholds
//
// Both run one inexact augmented Lagrange multiplier loop; they differ only in
// the L-update (SVT vs. weighted SVT). The building blocks Shrink, SVT and
// WeightedSVT are exported as well.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lowrank/rpca"
//
//	res, err := rpca.PCP(m,
//	  rpca.WithMaxIter(500),       // iteration budget
//	  rpca.WithTolerance(1e-6),    // relative residual target
//	  rpca.WithLogger(logger),     // zerolog progress events
//	)
//	if err != nil { … }            // ErrInvalidInput / ErrComputation
//	if !res.Converged { … }        // budget exhausted, res is still complete
//
// Independent solves (one per group, or PCP vs. IRLS on the same matrix) can
// run concurrently with RunBatch; settings can come from YAML via ParseConfig.
//
// Performance:
//
//   - Time:   O(iter · min(m,n) · m · n), one dense SVD per iteration
//   - Memory: O(m·n)
//
// See example_test.go for runnable examples.
package rpca
