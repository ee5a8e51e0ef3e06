// SPDX-License-Identifier: MIT

// Package synth produces deterministic test material for the recognition
// engine: symbol sequences and frequency/pair-weight tables derived from a
// textual seed.
//
// Determinism:
//   - Every output is a pure function of its arguments. The same seed and
//     parameters yield byte-identical sequences and tables on every platform.
//   - The byte source is a SHA-256 counter stream (block i = SHA-256(key‖i)),
//     never math/rand and never the clock.
//   - Symbol choice uses rejection sampling, so every symbol is equally likely
//     regardless of alphabet size.
//
// Typical use:
//
//	seq, _ := synth.Generate("run-42", 10_000, nil) // DNA alphabet
//	tbl, _ := synth.Table("run-42", []alphabet.Symbol{'H', 'P'})
package synth
