// SPDX-License-Identifier: MIT

package align

import "errors"

var (
	// ErrEmptyInput indicates one or both inputs are empty.
	ErrEmptyInput = errors.New("align: input sequences must be non-empty")

	// ErrBadInput indicates invalid options (Window < -1, negative or
	// non-finite SlopePenalty, unknown MemoryMode) or a non-finite input value.
	ErrBadInput = errors.New("align: invalid input")

	// ErrPathNeedsMatrix indicates ReturnPath without MemoryMode=FullMatrix.
	ErrPathNeedsMatrix = errors.New("align: ReturnPath requires MemoryMode=FullMatrix")
)
