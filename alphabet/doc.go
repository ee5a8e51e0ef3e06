// SPDX-License-Identifier: MIT

// Package alphabet holds the static lookup data of the recognition engine:
// the symbol → frequency table and the ordered-pair → stacking-weight table,
// together with the Sequence type every other package consumes.
//
// 🚀 What lives here?
//
//	• Symbol / Sequence  — a finite-alphabet code, e.g. "ACGT".
//	• Table              — immutable frequency + pair-weight lookups.
//	• StackingScalar     — exp(-Σ w(sᵢ,sᵢ₊₁) / scale) over adjacent pairs.
//
// ✨ Guarantees:
//   - Lookups are total: unknown symbols weigh 0.0 and unknown pairs 0.0,
//     so the pipeline never fails on foreign input.
//   - Tables are immutable after construction; DNA() returns a shared value
//     that is safe for concurrent use.
//
// ⚙️ Usage:
//
//	seq := alphabet.Parse("GATTACA")
//	tbl := alphabet.DNA()
//	f := tbl.Frequency(seq[0])               // 550.0
//	s, err := tbl.StackingScalar(seq[:3], 10) // exp(-(w(G,A)+w(A,T))/10)
//
// The weights of the default table are nearest-neighbour stacking free
// energies (kcal/mol); they are an illustrative heuristic, not a model.
package alphabet
