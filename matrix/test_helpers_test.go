// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/seqmem/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their At/Set fallback path.
type hide struct{ matrix.Matrix }

// mustDenseRows builds a *Dense from row literals or fails the test.
func mustDenseRows(t *testing.T, cols int, rows ...[]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(cols, rows)
	require.NoError(t, err)

	return m
}
