// SPDX-License-Identifier: MIT

package memory_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/seqmem/harmonic"
	"github.com/katalvlaran/seqmem/matrix"
	"github.com/katalvlaran/seqmem/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prototype(t *testing.T, n int) []float64 {
	t.Helper()
	layers, err := harmonic.Layers(528, harmonic.Phi, n)
	require.NoError(t, err)
	proto, err := harmonic.Prototype(layers)
	require.NoError(t, err)

	return proto
}

func TestScore_ZeroRows(t *testing.T) {
	m, err := matrix.NewDense(0, 4)
	require.NoError(t, err)

	s, err := memory.Score(m, prototype(t, 4))
	require.NoError(t, err)
	assert.Equal(t, 0.0, s)
}

func TestScore_AlignedAndOpposed(t *testing.T) {
	proto := prototype(t, 4)
	neg := make([]float64, len(proto))
	for i, v := range proto {
		neg[i] = -v
	}

	m, err := matrix.NewDenseFromRows(4, [][]float64{proto, proto})
	require.NoError(t, err)
	s, err := memory.Score(m, proto)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s, 1e-8)

	m, err = matrix.NewDenseFromRows(4, [][]float64{neg})
	require.NoError(t, err)
	s, err = memory.Score(m, proto)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, s, 1e-8)
}

// TestScore_Bounded: arbitrary finite matrices score inside [-1, 1].
func TestScore_Bounded(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	proto := prototype(t, 6)

	for trial := 0; trial < 200; trial++ {
		rows := 1 + rng.Intn(8)
		m, err := matrix.NewDense(rows, 6)
		require.NoError(t, err)
		for i := 0; i < rows; i++ {
			for j := 0; j < 6; j++ {
				require.NoError(t, m.Set(i, j, (rng.Float64()*2-1)*1e3))
			}
		}

		s, err := memory.Score(m, proto)
		require.NoError(t, err)
		assert.False(t, math.IsNaN(s))
		assert.GreaterOrEqual(t, s, -1.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}

func TestScore_NonFiniteMatrixIsZero(t *testing.T) {
	m, err := matrix.NewDenseFromRows(2, [][]float64{{math.Inf(1), math.Inf(-1)}})
	require.NoError(t, err)

	s, err := memory.Score(m, []float64{1, 0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, s)
}

func TestScore_Errors(t *testing.T) {
	m, err := matrix.NewDense(1, 3)
	require.NoError(t, err)

	_, err = memory.Score(m, []float64{1, 0})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = memory.Score(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = memory.Score(typedNil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
