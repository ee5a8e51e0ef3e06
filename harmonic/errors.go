// SPDX-License-Identifier: MIT

package harmonic

import (
	"errors"
	"fmt"
)

var (
	// ErrBadAnchor indicates an anchor frequency ≤ 0, NaN or ±Inf.
	ErrBadAnchor = errors.New("harmonic: anchor must be finite and > 0")

	// ErrBadGrowth indicates a growth constant ≤ 1, NaN or ±Inf.
	ErrBadGrowth = errors.New("harmonic: growth must be finite and > 1")

	// ErrBadCount indicates a layer count < 1 or one whose top layer overflows.
	ErrBadCount = errors.New("harmonic: layer count out of range")

	// ErrUnknownAnchor indicates an anchor identifier that is neither
	// registered nor a numeric literal.
	ErrUnknownAnchor = errors.New("harmonic: unknown anchor")

	// ErrDegenerate indicates a vector that cannot be normalised (zero norm or non-finite).
	ErrDegenerate = errors.New("harmonic: degenerate vector")
)

func harmonicErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
