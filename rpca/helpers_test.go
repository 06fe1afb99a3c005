// SPDX-License-Identifier: MIT

package rpca_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lowrank/matrix"
)

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

// maxAbsDiff returns max |a−b| over all entries.
func maxAbsDiff(tb testing.TB, a, b matrix.Matrix) float64 {
	tb.Helper()
	d, err := matrix.Sub(a, b)
	require.NoError(tb, err)
	v, err := matrix.MaxAbs(d)
	require.NoError(tb, err)

	return v
}

// relResidual returns ‖M−L−S‖_F / ‖M‖_F.
func relResidual(tb testing.TB, m, l, s matrix.Matrix) float64 {
	tb.Helper()
	r, err := matrix.Sub(m, l)
	require.NoError(tb, err)
	r, err = matrix.Sub(r, s)
	require.NoError(tb, err)
	nr, err := matrix.FrobeniusNorm(r)
	require.NoError(tb, err)
	nm, err := matrix.FrobeniusNorm(m)
	require.NoError(tb, err)

	return nr / nm
}

var (
	weeklyTrend  = []float64{2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	regionWeight = []float64{3, 4, 5}
)

const (
	spikeRow   = 4
	spikeCol   = 1
	spikeValue = 100.0
)

// spiked returns the 10×3 rank-1 baseline and a copy with one +100 spike.
func spiked(tb testing.TB) (base, m *matrix.Dense) {
	tb.Helper()
	base = outer(tb, weeklyTrend, regionWeight)
	m, err := matrix.Copy(base)
	require.NoError(tb, err)
	require.NoError(tb, m.Set(spikeRow, spikeCol, at(tb, base, spikeRow, spikeCol)+spikeValue))

	return base, m
}

// singleEntry returns a 10×3 zero matrix with 7 at (3,2).
func singleEntry(tb testing.TB) *matrix.Dense {
	tb.Helper()
	m := mustDense(tb, 10, 3)
	require.NoError(tb, m.Set(3, 2, 7))

	return m
}
