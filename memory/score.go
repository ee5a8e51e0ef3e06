// SPDX-License-Identifier: MIT

package memory

import (
	"math"

	"github.com/katalvlaran/seqmem/matrix"
)

const opScore = "Score"

// Score reduces m to its column-wise mean and returns the cosine similarity
// of that aggregate against prototype:
//
//	dot(agg, proto) / (‖agg‖·‖proto‖ + ε), clamped to [-1, 1].
//
// A 0-row matrix aggregates to the zero vector and scores 0.
// The result is always finite.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch when
// m.Cols() != len(prototype).
func Score(m matrix.Matrix, prototype []float64) (float64, error) {
	return score(m, prototype, DefaultEpsilon)
}

func score(m matrix.Matrix, prototype []float64, eps float64) (float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, memoryErrorf(opScore, "matrix", err)
	}
	if err := matrix.ValidateVecLen(prototype, m.Cols()); err != nil {
		return 0, memoryErrorf(opScore, "prototype", err)
	}

	agg, err := matrix.ColumnMeans(m)
	if err != nil {
		return 0, memoryErrorf(opScore, "", err)
	}
	dot, err := matrix.Dot(agg, prototype)
	if err != nil {
		return 0, memoryErrorf(opScore, "", err)
	}

	s := dot / (matrix.NormL2(agg)*matrix.NormL2(prototype) + eps)
	switch {
	case math.IsNaN(s):
		return 0, nil
	case s > 1:
		return 1, nil
	case s < -1:
		return -1, nil
	}

	return s, nil
}
