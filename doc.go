// Package lowrank is an in-memory Robust PCA engine: it splits a dense
// matrix M into a low-rank background L and a sparse anomaly matrix S,
// M ≈ L + S.
//
// 🚀 What is lowrank?
//
//	A small, deterministic library for "trend vs. outlier" separation on
//	time × group tables (weeks × regions, days × sensors):
//		• Dense matrix primitives, norms and economy SVD (gonum backed)
//		• Shrinkage and singular value thresholding operators
//		• PCP (convex) and IRLS (non-convex) IALM solvers
//		• Labeled results, concurrent batches, YAML settings
//		• zerolog progress events and Prometheus metrics
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/  : Dense, Labeled, Add/Sub/AddScaled/Mul, norms, SVD/Reconstruct
//	rpca/    : Shrink, SVT, WeightedSVT, PCP, IRLS, Decompose, RunBatch, Config
//	metrics/ : Prometheus Collector for solve outcomes and iterations
//
// A runnable scenario lives in examples/weekly.
package lowrank
