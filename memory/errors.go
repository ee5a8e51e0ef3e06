// SPDX-License-Identifier: MIT
// Package memory: sentinel errors.
//
// Error policy:
//   • Configuration errors are detected by Options.Validate before any
//     computation and name the offending parameter in the message.
//   • Several sentinels alias the ones of the lower packages so that
//     errors.Is matches regardless of which layer reported the failure.
//   • Degenerate inputs never produce errors.

package memory

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/seqmem/alphabet"
	"github.com/katalvlaran/seqmem/harmonic"
	"github.com/katalvlaran/seqmem/window"
)

var (
	// ErrBadGrowth — growth constant ≤ 1 or non-finite.
	ErrBadGrowth = harmonic.ErrBadGrowth

	// ErrUnknownAnchor — anchor id is not registered, numeric, or a table symbol.
	ErrUnknownAnchor = harmonic.ErrUnknownAnchor

	// ErrBadScale — stacking scale ≤ 0 or non-finite.
	ErrBadScale = alphabet.ErrBadScale

	// ErrBadStep — window step < 1.
	ErrBadStep = window.ErrBadStep

	// ErrBadLayers — harmonic layer count < 1, or so large that the top
	// layer overflows float64 (see harmonic.MaxLayers).
	ErrBadLayers = harmonic.ErrBadCount

	// ErrNoCheckpoints — the checkpoint list is empty.
	ErrNoCheckpoints = errors.New("memory: no checkpoints")

	// ErrBadCheckpoint — a checkpoint window length is < 1.
	ErrBadCheckpoint = errors.New("memory: checkpoint must be >= 1")

	// ErrBadEpsilon — ε ≤ 0 or non-finite.
	ErrBadEpsilon = errors.New("memory: epsilon must be finite and > 0")
)

// memoryErrorf prefixes err with the operation and the offending parameter.
func memoryErrorf(op, param string, err error) error {
	if param == "" {
		return fmt.Errorf("%s: %w", op, err)
	}

	return fmt.Errorf("%s: %s: %w", op, param, err)
}
