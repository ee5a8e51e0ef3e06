// SPDX-License-Identifier: MIT
// Package: memory
//
// options.go — engine configuration and fail-fast validation.
//
// Defaults (single source of truth, see DefaultOptions):
//   • Anchor        = harmonic.DefaultAnchor ("solfeggio", 528 Hz)
//   • Growth        = harmonic.Phi
//   • Layers        = 12
//   • StackingScale = 10
//   • Step          = 1
//   • Checkpoints   = harmonic.DefaultCheckpoints() (1, 2, 3, 5, … 987)
//   • Epsilon       = 1e-9
//   • Table         = alphabet.DNA()
//
// The growth and scale constants have no derivation behind them; they are
// defaults, not invariants, and every one of them may be substituted.

package memory

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"unicode"

	"github.com/katalvlaran/seqmem/alphabet"
	"github.com/katalvlaran/seqmem/harmonic"
)

const (
	// DefaultLayers is the default number of harmonic layers.
	DefaultLayers = 12

	// DefaultStackingScale is the default stacking-scalar divisor.
	DefaultStackingScale = 10.0

	// DefaultStep is the default window step.
	DefaultStep = 1

	// DefaultEpsilon guards every division in the encoder and scorer.
	DefaultEpsilon = 1e-9
)

const opValidate = "Options.Validate"

// Options configures Run.
//
// Fields:
//   - Anchor        — anchor id: a registered name ("solfeggio"), a numeric
//     literal ("540"), or a single table symbol ("A"). Empty selects
//     harmonic.DefaultAnchor.
//   - Growth        — harmonic growth constant, > 1.
//   - Layers        — number of harmonic layers, in [1, harmonic.MaxLayers].
//   - StackingScale — divisor of the stacking exponent, > 0.
//   - Step          — window step, ≥ 1.
//   - Checkpoints   — window lengths, each ≥ 1; order and duplicates are
//     irrelevant (Run sorts and de-duplicates a copy).
//   - Epsilon       — division guard, > 0.
//   - Table         — frequency/weight table; nil selects alphabet.DNA().
type Options struct {
	Anchor        string
	Growth        float64
	Layers        int
	StackingScale float64
	Step          int
	Checkpoints   []int
	Epsilon       float64
	Table         *alphabet.Table
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Anchor:        harmonic.DefaultAnchor,
		Growth:        harmonic.Phi,
		Layers:        DefaultLayers,
		StackingScale: DefaultStackingScale,
		Step:          DefaultStep,
		Checkpoints:   harmonic.DefaultCheckpoints(),
		Epsilon:       DefaultEpsilon,
		Table:         alphabet.DNA(),
	}
}

// Validate checks every parameter and reports the first failure, naming it.
// Order: growth → layers → scale → checkpoints → step → epsilon → anchor →
// layer capacity (the upper bound on Layers depends on the anchor).
func (o Options) Validate() error {
	_, err := o.resolve()
	return err
}

// resolved is Options after validation and normalisation.
type resolved struct {
	anchorID    string
	anchor      float64
	table       *alphabet.Table
	checkpoints []int // sorted ascending, distinct
}

// resolve validates o and returns the normalised configuration.
func (o Options) resolve() (resolved, error) {
	var r resolved

	if !(o.Growth > 1) || math.IsInf(o.Growth, 1) {
		return r, memoryErrorf(opValidate, fmt.Sprintf("growth=%v", o.Growth), ErrBadGrowth)
	}
	if o.Layers < 1 {
		return r, memoryErrorf(opValidate, fmt.Sprintf("n_layers=%d", o.Layers), ErrBadLayers)
	}
	if !(o.StackingScale > 0) || math.IsInf(o.StackingScale, 1) {
		return r, memoryErrorf(opValidate, fmt.Sprintf("stacking_scale=%v", o.StackingScale), ErrBadScale)
	}
	if len(o.Checkpoints) == 0 {
		return r, memoryErrorf(opValidate, "checkpoints", ErrNoCheckpoints)
	}
	for _, w := range o.Checkpoints {
		if w < 1 {
			return r, memoryErrorf(opValidate, fmt.Sprintf("checkpoint=%d", w), ErrBadCheckpoint)
		}
	}
	if o.Step < 1 {
		return r, memoryErrorf(opValidate, fmt.Sprintf("step=%d", o.Step), ErrBadStep)
	}
	if !(o.Epsilon > 0) || math.IsInf(o.Epsilon, 1) {
		return r, memoryErrorf(opValidate, fmt.Sprintf("epsilon=%v", o.Epsilon), ErrBadEpsilon)
	}

	r.table = o.Table
	if r.table == nil {
		r.table = alphabet.DNA()
	}

	r.anchorID = o.Anchor
	if r.anchorID == "" {
		r.anchorID = harmonic.DefaultAnchor
	}
	anchor, err := resolveAnchor(r.anchorID, r.table)
	if err != nil {
		return r, memoryErrorf(opValidate, "anchor", err)
	}
	r.anchor = anchor

	if limit := harmonic.MaxLayers(anchor, o.Growth); o.Layers > limit {
		return r, memoryErrorf(opValidate, fmt.Sprintf("n_layers=%d (max %d)", o.Layers, limit), ErrBadLayers)
	}

	r.checkpoints = slices.Clone(o.Checkpoints)
	slices.Sort(r.checkpoints)
	r.checkpoints = slices.Compact(r.checkpoints)

	return r, nil
}

// resolveAnchor looks id up in the harmonic registry, falling back to the
// frequency of a single-symbol id present in table.
func resolveAnchor(id string, table *alphabet.Table) (float64, error) {
	f, err := harmonic.Anchor(id)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, harmonic.ErrUnknownAnchor) {
		return 0, err
	}

	sym := alphabet.Parse(strings.TrimSpace(id))
	if len(sym) != 1 {
		return 0, err
	}
	for _, s := range []alphabet.Symbol{sym[0], alphabet.Symbol(unicode.ToUpper(rune(sym[0])))} {
		if table.Contains(s) {
			if f = table.Frequency(s); f > 0 {
				return f, nil
			}
		}
	}

	return 0, err
}
