// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lowrank/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels through their generic (non-*Dense) path.
type hide struct{ matrix.Matrix }

// mustRows builds a *Dense from literal rows or fails the test.
func mustRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	d, err := matrix.NewDenseFromRows(rows)
	require.NoError(tb, err)

	return d
}

// mustDense allocates an r×c zero *Dense or fails the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	d, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return d
}

// fillDenseRand fills d with values in [-1,1) from a fixed seed.
func fillDenseRand(tb testing.TB, d *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	require.NoError(tb, d.Apply(func(_, _ int, _ float64) float64 {
		return rng.Float64()*2 - 1
	}))
}

// outer returns the rank-1 matrix u·vᵗ.
func outer(tb testing.TB, u, v []float64) *matrix.Dense {
	tb.Helper()
	d := mustDense(tb, len(u), len(v))
	require.NoError(tb, d.Apply(func(i, j int, _ float64) float64 {
		return u[i] * v[j]
	}))

	return d
}

// at reads (i,j) or fails the test.
func at(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}
