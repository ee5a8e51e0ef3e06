// SPDX-License-Identifier: MIT
// Package alphabet: sentinel errors.
// Callers branch with errors.Is; call sites attach context with %w.

package alphabet

import (
	"errors"
	"fmt"
)

var (
	// ErrBadScale is returned when a stacking scale is ≤ 0, NaN or ±Inf.
	ErrBadScale = errors.New("alphabet: stacking scale must be finite and > 0")

	// ErrEmptyTable is returned when a table is built without any symbol frequency.
	ErrEmptyTable = errors.New("alphabet: table has no symbols")

	// ErrNonFinite is returned when a frequency or weight is NaN or ±Inf.
	ErrNonFinite = errors.New("alphabet: NaN or Inf value")
)

// alphabetErrorf prefixes err with the operation name, keeping the sentinel reachable.
func alphabetErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
