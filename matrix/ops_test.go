// SPDX-License-Identifier: MIT
// Package matrix_test covers element-wise kernels, Mul and Transpose,
// including the generic (non-*Dense) path and error priority.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lowrank/matrix"
	"github.com/stretchr/testify/require"
)

func TestCombineKernels(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]float64{{10, 20}, {30, 40}})

	tests := []struct {
		name string
		run  func(x, y matrix.Matrix) (*matrix.Dense, error)
		want [][]float64
	}{
		{"Add", matrix.Add, [][]float64{{11, 22}, {33, 44}}},
		{"Sub", matrix.Sub, [][]float64{{-9, -18}, {-27, -36}}},
		{"AddScaled", func(x, y matrix.Matrix) (*matrix.Dense, error) {
			return matrix.AddScaled(x, y, 0.5)
		}, [][]float64{{6, 12}, {18, 24}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.run(a, b)
			require.NoError(t, err)
			require.Equal(t, tc.want, got.ToRows())

			// generic path must agree with the fast path
			slow, err := tc.run(hide{a}, hide{b})
			require.NoError(t, err)
			require.Equal(t, tc.want, slow.ToRows())
		})
	}

	// operands untouched
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, a.ToRows())
}

func TestCombineErrors(t *testing.T) {
	a := mustDense(t, 2, 2)
	b := mustDense(t, 2, 3)

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Sub(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = matrix.AddScaled(a, typedNil, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestScale(t *testing.T) {
	a := mustRows(t, [][]float64{{1, -2}})
	got, err := matrix.Scale(a, -3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-3, 6}}, got.ToRows())
	require.Equal(t, [][]float64{{1, -2}}, a.ToRows())

	_, err = matrix.Scale(nil, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMulTranspose(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{58, 64}, {139, 154}}, p.ToRows())

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	tr, err := matrix.Transpose(hide{a})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr.ToRows())
}

func TestCopy(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}})
	for _, src := range []matrix.Matrix{a, hide{a}} {
		cp, err := matrix.Copy(src)
		require.NoError(t, err)
		require.NoError(t, cp.Set(0, 0, 9))
		require.Equal(t, 1.0, at(t, a, 0, 0))
	}

	_, err := matrix.Copy(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
