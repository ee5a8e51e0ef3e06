// Package seqmem is a deterministic recognition engine for symbol sequences.
//
// What it does:
//
//	A sequence (DNA by default) is cut into sliding windows. Every window
//	becomes a memory vector: its mean canonical frequency is compared with
//	a geometric ladder of harmonic layers, and the result is weighted by a
//	nearest-neighbour stacking scalar. The vectors of one window length form
//	a memory matrix; its column mean is scored against the normalised layer
//	prototype by cosine similarity. The report lists that score for every
//	checkpoint window length.
//
// Layout:
//
//	alphabet/  — symbols, frequency and pair-weight tables, stacking scalar
//	harmonic/  — anchors, layer ladder, prototype, Fibonacci checkpoints
//	window/    — sliding-window iteration
//	matrix/    — dense memory-matrix storage and reduction kernels
//	memory/    — encoder, matrix builder, scorer and the Run driver
//	synth/     — reproducible synthetic sequences and tables
//	align/     — DTW alignment of frequency traces
//	request/   — YAML/JSON request files, batch matching, worker pool
//	cmd/seqmem — command-line front end
//
// Quick start:
//
//	rep, err := memory.Run(alphabet.Parse("GATTACA"), memory.DefaultOptions())
//
// Guarantees:
//
//   - Same inputs and options ⇒ bit-identical reports.
//   - Scores are finite and lie in [-1, 1]; degenerate windows never yield NaN.
//   - Invalid configuration fails before any computation.
package seqmem
