// SPDX-License-Identifier: MIT
// Package: memory
//
// run.go — the checkpoint driver.
//
// Policy for oversized checkpoints:
//   - A checkpoint W > len(sequence) is skipped; callers asking for large
//     checkpoints on short sequences get a shorter list.
//   - A non-empty sequence shorter than every W yields an empty list.
//   - The empty sequence is the one exception: its report carries a single
//     degenerate entry for the smallest requested W, {W, 0 rows, score 0}.
//     RowCount == 0 marks it.

package memory

import (
	"fmt"

	"github.com/katalvlaran/seqmem/alphabet"
	"github.com/katalvlaran/seqmem/harmonic"
)

const opRun = "Run"

// CheckpointResult is the outcome at one window length.
type CheckpointResult struct {
	WindowLength int     `json:"window_length" yaml:"window_length"`
	RowCount     int     `json:"row_count" yaml:"row_count"`
	Score        float64 `json:"score" yaml:"score"`
}

// Report is the full result of Run. It is JSON-serialisable.
type Report struct {
	Anchor          string             `json:"anchor" yaml:"anchor"`
	AnchorFrequency float64            `json:"anchor_frequency" yaml:"anchor_frequency"`
	SequenceLength  int                `json:"sequence_length" yaml:"sequence_length"`
	Checkpoints     []CheckpointResult `json:"checkpoints" yaml:"checkpoints"`
	PrototypeLayers []float64          `json:"prototype_layers" yaml:"prototype_layers"`
}

// Best returns the highest-scoring checkpoint that had at least one window.
// Ties keep the smaller window length. ok is false when no checkpoint had rows.
func (r Report) Best() (best CheckpointResult, ok bool) {
	for _, cp := range r.Checkpoints {
		if cp.RowCount == 0 {
			continue
		}
		if !ok || cp.Score > best.Score {
			best, ok = cp, true
		}
	}

	return best, ok
}

// Run evaluates seq at every configured checkpoint.
//
// Implementation:
//   - Stage 1 (Validate): opts.Validate semantics; nothing is computed on failure.
//   - Stage 2 (Prepare): layers, prototype and encoder, once per call.
//   - Stage 3 (Execute): for each W ≤ len(seq) in ascending order, BuildMatrix + Score.
//   - Stage 4 (Finalize): apply the degenerate-report policy (see file header).
//
// Errors: the sentinels of Options.Validate.
// Complexity: O(Σ_W (L-W+1)·(W+n_layers)).
func Run(seq alphabet.Sequence, opts Options) (Report, error) {
	// Stage 1 (Validate).
	cfg, err := opts.resolve()
	if err != nil {
		return Report{}, err
	}

	// Stage 2 (Prepare).
	layers, err := harmonic.Layers(cfg.anchor, opts.Growth, opts.Layers)
	if err != nil {
		return Report{}, memoryErrorf(opRun, fmt.Sprintf("n_layers=%d", opts.Layers), err)
	}
	proto, err := harmonic.Prototype(layers)
	if err != nil {
		return Report{}, memoryErrorf(opRun, "", err)
	}
	enc, err := NewEncoder(layers, cfg.table, opts.StackingScale, opts.Epsilon)
	if err != nil {
		return Report{}, memoryErrorf(opRun, "", err)
	}

	rep := Report{
		Anchor:          cfg.anchorID,
		AnchorFrequency: cfg.anchor,
		SequenceLength:  len(seq),
		Checkpoints:     make([]CheckpointResult, 0, len(cfg.checkpoints)),
		PrototypeLayers: layers,
	}

	// Stage 3 (Execute).
	for _, w := range cfg.checkpoints {
		if w > len(seq) {
			continue
		}
		m, err := BuildMatrix(seq, w, opts.Step, enc)
		if err != nil {
			return Report{}, memoryErrorf(opRun, fmt.Sprintf("checkpoint=%d", w), err)
		}
		s, err := score(m, proto, opts.Epsilon)
		if err != nil {
			return Report{}, memoryErrorf(opRun, fmt.Sprintf("checkpoint=%d", w), err)
		}
		rep.Checkpoints = append(rep.Checkpoints, CheckpointResult{
			WindowLength: w,
			RowCount:     m.Rows(),
			Score:        s,
		})
	}

	// Stage 4 (Finalize).
	if len(seq) == 0 {
		rep.Checkpoints = append(rep.Checkpoints, CheckpointResult{WindowLength: cfg.checkpoints[0]})
	}

	return rep, nil
}
