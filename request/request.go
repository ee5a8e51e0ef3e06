// SPDX-License-Identifier: MIT

package request

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/katalvlaran/seqmem/align"
	"github.com/katalvlaran/seqmem/alphabet"
	"github.com/katalvlaran/seqmem/memory"
	"github.com/katalvlaran/seqmem/synth"
)

// Request is one recognition run as read from a file or built by the CLI.
// Pointer and slice fields left nil keep the memory.DefaultOptions value;
// an explicit value, even zero, is validated as given.
type Request struct {
	Name          string   `yaml:"name" json:"name"`
	Sequence      string   `yaml:"sequence" json:"sequence"`
	Synth         *Synth   `yaml:"synth" json:"synth"`
	Anchor        string   `yaml:"anchor" json:"anchor"`
	Checkpoints   []int    `yaml:"checkpoints" json:"checkpoints"`
	Growth        *float64 `yaml:"growth" json:"growth"`
	Layers        *int     `yaml:"n_layers" json:"n_layers"`
	StackingScale *float64 `yaml:"stacking_scale" json:"stacking_scale"`
	Step          *int     `yaml:"step" json:"step"`

	// Reference, when set, is aligned against the sequence with DTW over
	// their frequency traces. AlignWindow is the Sakoe–Chiba band (nil or
	// -1 = unbounded).
	Reference   string `yaml:"reference" json:"reference"`
	AlignWindow *int   `yaml:"align_window" json:"align_window"`
}

// Synth asks for a deterministic synthetic sequence instead of inline text.
type Synth struct {
	Seed    string `yaml:"seed" json:"seed"`
	Length  int    `yaml:"length" json:"length"`
	Symbols string `yaml:"symbols" json:"symbols"` // empty = ACGT
}

// Options overlays the request on memory.DefaultOptions and validates it.
func (r Request) Options() (memory.Options, error) {
	o := memory.DefaultOptions()
	if r.Anchor != "" {
		o.Anchor = r.Anchor
	}
	if r.Checkpoints != nil {
		o.Checkpoints = r.Checkpoints
	}
	if r.Growth != nil {
		o.Growth = *r.Growth
	}
	if r.Layers != nil {
		o.Layers = *r.Layers
	}
	if r.StackingScale != nil {
		o.StackingScale = *r.StackingScale
	}
	if r.Step != nil {
		o.Step = *r.Step
	}
	if err := o.Validate(); err != nil {
		return memory.Options{}, fmt.Errorf("request %q: %w", r.Name, err)
	}

	return o, nil
}

// Symbols returns the sequence to analyse: the cleaned inline text or the
// synthetic draw. Exactly one of the two must be present.
func (r Request) Symbols() (alphabet.Sequence, error) {
	hasText := strings.TrimSpace(r.Sequence) != ""
	switch {
	case hasText && r.Synth != nil:
		return nil, fmt.Errorf("request %q: %w", r.Name, ErrAmbiguousSequence)
	case hasText:
		return alphabet.Parse(Clean(r.Sequence)), nil
	case r.Synth != nil:
		seq, err := synth.Generate(r.Synth.Seed, r.Synth.Length, alphabet.Parse(Clean(r.Synth.Symbols)))
		if err != nil {
			return nil, fmt.Errorf("request %q: %w", r.Name, err)
		}
		return seq, nil
	default:
		return nil, fmt.Errorf("request %q: %w", r.Name, ErrNoSequence)
	}
}

// Align compares seq with the cleaned Reference. It returns nil when the
// request has no reference.
func (r Request) Align(seq alphabet.Sequence) (*align.Result, error) {
	ref := alphabet.Parse(Clean(r.Reference))
	if len(ref) == 0 {
		return nil, nil
	}
	opts := align.DefaultOptions()
	if r.AlignWindow != nil {
		opts.Window = *r.AlignWindow
	}
	res, err := align.Sequences(seq, ref, nil, &opts)
	if err != nil {
		return nil, fmt.Errorf("request %q: reference: %w", r.Name, err)
	}

	return &res, nil
}

// Validate checks the request without running it.
func (r Request) Validate() error {
	if _, err := r.Options(); err != nil {
		return err
	}
	if strings.TrimSpace(r.Sequence) != "" && r.Synth != nil {
		return fmt.Errorf("request %q: %w", r.Name, ErrAmbiguousSequence)
	}
	if strings.TrimSpace(r.Sequence) == "" && r.Synth == nil {
		return fmt.Errorf("request %q: %w", r.Name, ErrNoSequence)
	}
	if r.AlignWindow != nil && *r.AlignWindow < -1 {
		return fmt.Errorf("request %q: align_window=%d: %w", r.Name, *r.AlignWindow, align.ErrBadInput)
	}
	if r.Synth != nil && r.Synth.Length < 0 {
		return fmt.Errorf("request %q: synth length=%d: %w", r.Name, r.Synth.Length, synth.ErrBadLength)
	}

	return nil
}

// Clean prepares sequence text: lines starting with '>' (FASTA headers)
// are dropped, whitespace is removed and letters are upper-cased.
func Clean(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), ">") {
			continue
		}
		for _, r := range line {
			if unicode.IsSpace(r) {
				continue
			}
			b.WriteRune(unicode.ToUpper(r))
		}
	}

	return b.String()
}
