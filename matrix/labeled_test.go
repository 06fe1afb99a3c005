// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lowrank/matrix"
	"github.com/stretchr/testify/require"
)

func TestLabeled(t *testing.T) {
	d := mustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	weeks := []string{"2021-W01", "2021-W02", "2021-W03"}
	regions := []string{"AFRO", "EURO"}

	lm, err := matrix.NewLabeled(d, weeks, regions)
	require.NoError(t, err)
	require.Same(t, d, lm.Dense())

	weeks[0] = "mutated" // labels are copied in
	require.Equal(t, "2021-W01", lm.RowLabels()[0])
	require.Equal(t, regions, lm.ColLabels())

	v, err := lm.Value("2021-W02", "EURO")
	require.NoError(t, err)
	require.Equal(t, 4.0, v)

	col, err := lm.Column("AFRO")
	require.NoError(t, err)
	require.Equal(t, []float64{1, 3, 5}, col)

	_, err = lm.Value("2021-W09", "EURO")
	require.ErrorIs(t, err, matrix.ErrUnknownLabel)
	_, err = lm.Column("SEARO")
	require.ErrorIs(t, err, matrix.ErrUnknownLabel)
}

func TestLabeledErrors(t *testing.T) {
	d := mustDense(t, 2, 2)

	_, err := matrix.NewLabeled(nil, nil, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.NewLabeled(d, []string{"a"}, []string{"x", "y"})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewLabeled(d, []string{"a", "a"}, []string{"x", "y"})
	require.ErrorIs(t, err, matrix.ErrDuplicateLabel)
}

func TestLabeledRelabel(t *testing.T) {
	lm, err := matrix.NewLabeled(mustDense(t, 1, 2), []string{"r"}, []string{"x", "y"})
	require.NoError(t, err)

	other := mustRows(t, [][]float64{{7, 8}})
	out, err := lm.Relabel(other)
	require.NoError(t, err)
	v, err := out.Value("r", "y")
	require.NoError(t, err)
	require.Equal(t, 8.0, v)

	_, err = lm.Relabel(mustDense(t, 2, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
