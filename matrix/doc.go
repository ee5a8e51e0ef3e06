// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric storage behind memory matrices
// and the handful of kernels the recognition scorer needs.
//
// What & Why:
//
//	A memory matrix is a stack of per-window memory vectors: one row per
//	window, one column per harmonic layer. Dense stores it row-major in a
//	flat slice; ColumnMeans reduces it to the aggregate vector; Dot and
//	NormL2 feed cosine similarity.
//
// Zero-size policy:
//
//	A 0×c matrix is legal (a checkpoint with no windows). Every kernel treats
//	it as a no-op and returns correctly-sized zero results.
//
// Complexity:
//
//	At/Set/Rows/Cols are O(1); kernels are O(r·c) with fixed i→j order, so
//	results are bit-for-bit reproducible.
package matrix
