// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/seqmem/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDense_InvalidDimensions ensures negative rows and non-positive cols are rejected.
func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(-1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDense_ZeroRows: a checkpoint with no windows is a legal 0×c matrix.
func TestNewDense_ZeroRows(t *testing.T) {
	m, err := matrix.NewDense(0, 12)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 12, m.Cols())

	_, err = m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

func TestAtSet_OutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrIndexOutOfBounds)
}

func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestRowAndRowView: Row copies, RowView aliases storage.
func TestRowAndRowView(t *testing.T) {
	m := mustDenseRows(t, 2, []float64{1, 2}, []float64{3, 4})

	row, err := m.Row(1)
	require.NoError(t, err)
	row[0] = 99
	v, _ := m.At(1, 0)
	require.Equal(t, 3.0, v, "Row must return a copy")

	view, err := m.RowView(0)
	require.NoError(t, err)
	require.Equal(t, 2, cap(view))
	view[1] = -2
	v, _ = m.At(0, 1)
	require.Equal(t, -2.0, v, "RowView writes through")

	_, err = m.RowView(2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	_, err = m.Row(-1)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

func TestNewDenseFromRows_Ragged(t *testing.T) {
	_, err := matrix.NewDenseFromRows(2, [][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := mustDenseRows(t, 2, []float64{1, 0}, []float64{0, 2})
	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, orig)
	require.Equal(t, "[1, 0]\n[0, 2]\n", m.String())
}
