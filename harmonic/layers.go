// SPDX-License-Identifier: MIT
// Package: harmonic
//
// layers.go — geometric layer generator and prototype normalisation.
//
// Determinism & Precision:
//   - Plain float64 arithmetic; growthᵏ is accumulated by repeated
//     multiplication so layer[k+1]/layer[k] == growth up to one rounding.
//   - Strict monotonicity holds for every growth > 1 until overflow; a
//     count whose top layer would overflow is rejected as ErrBadCount
//     before anything is allocated (see MaxLayers).

package harmonic

import (
	"math"
)

// Phi is the default growth constant (golden ratio).
const Phi = 1.618033988749895

const (
	opLayers    = "Layers"
	opPrototype = "Prototype"
)

// MaxCount bounds the layer count regardless of anchor and growth.
const MaxCount = 1 << 16

// MaxLayers returns the largest n for which Layers(anchor, growth, n)
// keeps every layer finite, capped at MaxCount. It returns 0 when anchor or
// growth is invalid.
func MaxLayers(anchor, growth float64) int {
	if !(anchor > 0) || math.IsInf(anchor, 1) || !(growth > 1) || math.IsInf(growth, 1) {
		return 0
	}

	// anchor·growthⁿ⁻¹ ≤ MaxFloat64  ⇔  n−1 ≤ (ln Max − ln anchor) / ln growth.
	k := math.Floor((math.Log(math.MaxFloat64) - math.Log(anchor)) / math.Log(growth))
	if k >= MaxCount-1 {
		return MaxCount
	}
	n := int(max(k, 0)) + 1
	for n > 1 && math.IsInf(anchor*math.Pow(growth, float64(n-1)), 1) {
		n--
	}

	return n
}

// Layers returns n harmonics of anchor: anchor·growthᵏ for k in [0, n).
//
// Errors:
//   - ErrBadAnchor  — anchor ≤ 0 or non-finite.
//   - ErrBadGrowth  — growth ≤ 1 or non-finite.
//   - ErrBadCount   — n < 1, or n > MaxLayers(anchor, growth).
//
// Complexity: O(n).
func Layers(anchor, growth float64, n int) ([]float64, error) {
	// Stage 1 (Validate).
	if !(anchor > 0) || math.IsInf(anchor, 1) {
		return nil, harmonicErrorf(opLayers, ErrBadAnchor)
	}
	if !(growth > 1) || math.IsInf(growth, 1) {
		return nil, harmonicErrorf(opLayers, ErrBadGrowth)
	}
	if n < 1 || n > MaxLayers(anchor, growth) {
		return nil, harmonicErrorf(opLayers, ErrBadCount)
	}

	// Stage 2 (Execute).
	out := make([]float64, n)
	v := anchor
	for k := 0; k < n; k++ {
		if math.IsInf(v, 1) {
			return nil, harmonicErrorf(opLayers, ErrBadCount)
		}
		out[k] = v
		v *= growth
	}

	return out, nil
}

// Prototype returns layers scaled to unit L2 norm.
// The input slice is not modified.
//
// Errors: ErrDegenerate for an empty slice, a zero norm or a non-finite norm.
func Prototype(layers []float64) ([]float64, error) {
	// Scale by the largest magnitude first so long ladders do not overflow ss.
	var peak float64
	for _, v := range layers {
		peak = math.Max(peak, math.Abs(v))
	}
	if len(layers) == 0 || peak == 0 || math.IsInf(peak, 0) || math.IsNaN(peak) {
		return nil, harmonicErrorf(opPrototype, ErrDegenerate)
	}

	out := make([]float64, len(layers))
	var ss float64
	for i, v := range layers {
		out[i] = v / peak
		ss += out[i] * out[i]
	}
	inv := 1.0 / math.Sqrt(ss)
	for i := range out {
		out[i] *= inv
	}

	return out, nil
}
