// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lowrank/matrix"
	"github.com/stretchr/testify/require"
)

func TestNorms(t *testing.T) {
	m := mustRows(t, [][]float64{{3, -4}, {0, 1}})

	fro, err := matrix.FrobeniusNorm(m)
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt(26), fro, 1e-12)

	inf, err := matrix.InfNorm(m)
	require.NoError(t, err)
	require.Equal(t, 7.0, inf) // |3| + |-4|

	mx, err := matrix.MaxAbs(hide{m})
	require.NoError(t, err)
	require.Equal(t, 4.0, mx)

	nz, err := matrix.CountNonZero(m, 0)
	require.NoError(t, err)
	require.Equal(t, 3, nz)

	nz, err = matrix.CountNonZero(m, 1)
	require.NoError(t, err)
	require.Equal(t, 2, nz)
}

func TestFrobeniusNormExtremeScales(t *testing.T) {
	big := mustRows(t, [][]float64{{1e200, 1e200}})
	fro, err := matrix.FrobeniusNorm(big)
	require.NoError(t, err)
	require.InEpsilon(t, math.Sqrt2*1e200, fro, 1e-12)

	zero := mustDense(t, 3, 2)
	fro, err = matrix.FrobeniusNorm(zero)
	require.NoError(t, err)
	require.Zero(t, fro)
}

func TestSpectralNorm(t *testing.T) {
	// diag(5, 2) embedded in a 3×2 matrix
	m := mustRows(t, [][]float64{{5, 0}, {0, -2}, {0, 0}})
	s, err := matrix.SpectralNorm(m)
	require.NoError(t, err)
	require.InDelta(t, 5.0, s, 1e-12)

	_, err = matrix.SpectralNorm(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestNumericalRank(t *testing.T) {
	require.Equal(t, 0, matrix.NumericalRank(nil, 1e-9))
	require.Equal(t, 0, matrix.NumericalRank([]float64{0, 0}, 1e-9))
	require.Equal(t, 2, matrix.NumericalRank([]float64{10, 1, 1e-12}, 1e-9))
}

func TestAllClose(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}})
	b := mustRows(t, [][]float64{{1 + 1e-10, 2}})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-12)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.AllClose(a, mustDense(t, 2, 1), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
