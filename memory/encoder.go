// SPDX-License-Identifier: MIT
// Package: memory
//
// encoder.go — window → memory vector.
//
// Numeric policy:
//   - raw = stack·sim, result = raw/(‖raw‖+ε) is evaluated in the equal form
//     sim/(‖sim‖ + ε/stack). A stacking scalar that overflows to +Inf or
//     underflows to 0 therefore still yields a finite vector.
//   - Zero-variance windows use denom = ε; their similarities usually
//     underflow to 0 and the vector is (finite) zero.
//   - No path can produce NaN: a zero or non-finite denominator yields the
//     zero vector.

package memory

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/seqmem/alphabet"
	"github.com/katalvlaran/seqmem/matrix"
)

const (
	opNewEncoder = "NewEncoder"
	opEncode     = "Encoder.Encode"
)

// Encoder turns windows into memory vectors against a fixed layer set.
// It holds no mutable state and is safe for concurrent use.
type Encoder struct {
	layers []float64
	table  *alphabet.Table
	scale  float64
	eps    float64
}

// NewEncoder validates its inputs and copies layers.
//
// Errors: ErrBadLayers (empty layers), ErrBadScale, ErrBadEpsilon;
// a nil table selects alphabet.DNA().
func NewEncoder(layers []float64, table *alphabet.Table, scale, eps float64) (*Encoder, error) {
	if len(layers) == 0 {
		return nil, memoryErrorf(opNewEncoder, "layers", ErrBadLayers)
	}
	if !(scale > 0) || math.IsInf(scale, 1) {
		return nil, memoryErrorf(opNewEncoder, fmt.Sprintf("scale=%v", scale), ErrBadScale)
	}
	if !(eps > 0) || math.IsInf(eps, 1) {
		return nil, memoryErrorf(opNewEncoder, fmt.Sprintf("epsilon=%v", eps), ErrBadEpsilon)
	}
	if table == nil {
		table = alphabet.DNA()
	}

	return &Encoder{
		layers: slices.Clone(layers),
		table:  table,
		scale:  scale,
		eps:    eps,
	}, nil
}

// Dim is the length of every memory vector (the number of layers).
func (e *Encoder) Dim() int { return len(e.layers) }

// Layers returns a copy of the layer set.
func (e *Encoder) Layers() []float64 { return slices.Clone(e.layers) }

// Encode returns the memory vector of w. An empty window encodes to zeros.
func (e *Encoder) Encode(w alphabet.Sequence) ([]float64, error) {
	dst := make([]float64, len(e.layers))
	if err := e.EncodeInto(dst, w); err != nil {
		return nil, err
	}

	return dst, nil
}

// EncodeInto writes the memory vector of w into dst without allocating.
// Stage 1 (Validate): len(dst) == Dim().
// Stage 2 (Moments): μ and population σ of the window frequencies.
// Stage 3 (Similarity): simₖ = exp(-|μ-Lₖ|/(σ+ε)).
// Stage 4 (Stack & normalise): dst = sim/(‖sim‖ + ε/stack).
//
// Errors: matrix.ErrDimensionMismatch on a wrong-sized dst.
// Complexity: O(len(w) + Dim()).
func (e *Encoder) EncodeInto(dst []float64, w alphabet.Sequence) error {
	// Stage 1 (Validate).
	if err := matrix.ValidateVecLen(dst, len(e.layers)); err != nil {
		return memoryErrorf(opEncode, "dst", err)
	}
	if len(w) == 0 {
		clear(dst)
		return nil
	}

	// Stage 2 (Moments).
	n := float64(len(w))
	var sum float64
	for _, s := range w {
		sum += e.table.Frequency(s)
	}
	mu := sum / n

	var ss float64
	for _, s := range w {
		d := e.table.Frequency(s) - mu
		ss += d * d
	}
	denom := math.Sqrt(ss/n) + e.eps

	// Stage 3 (Similarity).
	var simSS float64
	for k, layer := range e.layers {
		v := math.Exp(-math.Abs(mu-layer) / denom)
		dst[k] = v
		simSS += v * v
	}

	// Stage 4 (Stack & normalise).
	stack, err := e.table.StackingScalar(w, e.scale)
	if err != nil {
		return memoryErrorf(opEncode, "", err)
	}
	den := math.Sqrt(simSS) + e.eps/stack
	if den == 0 || math.IsNaN(den) || math.IsInf(den, 0) {
		clear(dst)
		return nil
	}
	inv := 1.0 / den
	for k := range dst {
		dst[k] *= inv
	}

	return nil
}
