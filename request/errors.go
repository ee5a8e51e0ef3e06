// SPDX-License-Identifier: MIT

package request

import "errors"

var (
	// ErrNoSequence is returned when neither sequence nor synth is given.
	ErrNoSequence = errors.New("request: no sequence or synth section")

	// ErrAmbiguousSequence is returned when both are given.
	ErrAmbiguousSequence = errors.New("request: sequence and synth are mutually exclusive")

	// ErrBadDocument: a YAML document that is neither a request nor a list of requests.
	ErrBadDocument = errors.New("request: document must be a mapping or a sequence of mappings")
)
