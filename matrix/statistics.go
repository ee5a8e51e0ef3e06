// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column-wise aggregation (ColumnMeans) used to collapse a memory matrix
//     into one vector.
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on the row-major flat buffer.
//   - Zero-size matrices (0×N) are treated as no-ops.

package matrix

import "math"

const opColumnMeans = "ColumnMeans"

// columnMeans returns the arithmetic mean of every column.
// Implementation:
//   - Stage 1: Validate X (non-nil); a 0-row matrix yields zero means.
//   - Stage 2: Accumulate column sums (Dense fast-path; At fallback).
//   - Stage 3: Scale sums by 1/r.
//
// Returns: []float64 of length Cols().
// Errors: ErrNilMatrix; wrapped At errors from the fallback path.
// Complexity: Time O(r*c), Space O(c).
func columnMeans(X Matrix) ([]float64, error) {
	// Stage 1 (Validate): ensure X is present.
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}

	r, c := X.Rows(), X.Cols()
	means := make([]float64, c) // always return correct length for callers
	if r == 0 || c == 0 {
		return means, nil
	}

	// Stage 2 (Execute): Dense fast-path uses the row-major flat buffer directly.
	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				means[j] += d.data[base+j]
			}
		}
	} else {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				v, err := X.At(i, j)
				if err != nil {
					return nil, matrixErrorf(opColumnMeans, err)
				}
				means[j] += v
			}
		}
	}

	// Stage 3 (Finalize): divide sums by r.
	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	return means, nil
}

// normL2 is the Euclidean norm with plain accumulation (no scaling).
func normL2(x []float64) float64 {
	var ss float64
	for _, v := range x {
		ss += v * v
	}

	return math.Sqrt(ss)
}
