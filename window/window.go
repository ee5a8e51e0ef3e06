// SPDX-License-Identifier: MIT

package window

import (
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/seqmem/alphabet"
)

var (
	// ErrBadLength indicates a window length < 1.
	ErrBadLength = errors.New("window: length must be >= 1")

	// ErrBadStep indicates a step < 1.
	ErrBadStep = errors.New("window: step must be >= 1")
)

// validate checks the window geometry shared by All, Count and Collect.
func validate(op string, length, step int) error {
	if length < 1 {
		return fmt.Errorf("%s: length=%d: %w", op, length, ErrBadLength)
	}
	if step < 1 {
		return fmt.Errorf("%s: step=%d: %w", op, step, ErrBadStep)
	}

	return nil
}

// All yields every window seq[i:i+length] for i = 0, step, 2·step, … while
// i+length ≤ len(seq).
//
// Errors: ErrBadLength, ErrBadStep. An oversized length is not an error.
// Complexity: O(1) to build; each full range is O(Count) with no allocation.
func All(seq alphabet.Sequence, length, step int) (iter.Seq2[int, alphabet.Sequence], error) {
	if err := validate("All", length, step); err != nil {
		return nil, err
	}

	return func(yield func(int, alphabet.Sequence) bool) {
		last := len(seq) - length
		for i := 0; i <= last; i += step {
			if !yield(i, seq[i:i+length:i+length]) {
				return
			}
			if step > last-i {
				return
			}
		}
	}, nil
}

// Count returns how many windows All yields for a sequence of n symbols.
// Invalid geometry counts as zero windows.
func Count(n, length, step int) int {
	if length < 1 || step < 1 || length > n {
		return 0
	}

	return (n-length)/step + 1
}

// Window is a materialised (offset, symbols) pair.
type Window struct {
	Offset  int
	Symbols alphabet.Sequence
}

// Collect materialises All into a slice.
func Collect(seq alphabet.Sequence, length, step int) ([]Window, error) {
	it, err := All(seq, length, step)
	if err != nil {
		return nil, err
	}

	out := make([]Window, 0, Count(len(seq), length, step))
	for off, w := range it {
		out = append(out, Window{Offset: off, Symbols: w})
	}

	return out, nil
}
