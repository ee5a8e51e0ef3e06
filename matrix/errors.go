// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (possibly wrapped with %w); tests and
// callers match them via errors.Is. Kernels never panic on user input.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates a negative row count or a non-positive
	// column count.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible operand shapes or vector lengths.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (or nil vector) was passed.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
