// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Facades delegate to the canonical kernels; they never change loop order
// or numeric policy.

package matrix

// ColumnMeans returns the per-column arithmetic mean of X (len = Cols()).
// A 0-row matrix yields all zeros. O(r*c).
func ColumnMeans(X Matrix) ([]float64, error) { return columnMeans(X) }

// Dot returns the inner product of two equal-length vectors. O(n).
func Dot(a, b []float64) (float64, error) { return dot(a, b) }

// NormL2 returns the Euclidean norm of x. O(n).
func NormL2(x []float64) float64 { return normL2(x) }
