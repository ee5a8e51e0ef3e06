// SPDX-License-Identifier: MIT

package synth

import (
	"errors"
	"fmt"
)

var (
	// ErrBadLength indicates a negative sequence length.
	ErrBadLength = errors.New("synth: length must be >= 0")

	// ErrNoSymbols indicates an empty symbol set.
	ErrNoSymbols = errors.New("synth: symbol set is empty")

	// ErrBadRange indicates a base/spread pair that can yield non-positive frequencies.
	ErrBadRange = errors.New("synth: need finite base > 0 and 0 <= spread < base")
)

func synthErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
