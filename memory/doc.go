// SPDX-License-Identifier: MIT

// Package memory is the recognition engine: it encodes every window of a
// sequence into a memory vector, stacks them into a memory matrix, and
// scores the matrix against a harmonic prototype at a ladder of window-size
// checkpoints.
//
// 🚀 Pipeline (per checkpoint W):
//
//	sequence ─window.All(W)→ windows ─Encoder→ memory vectors ─BuildMatrix→ matrix
//	matrix ─ColumnMeans→ aggregate ─cosine(prototype)→ score ∈ [-1, 1]
//
// ✨ Encoding one window:
//  1. freqs = table frequencies of the window's symbols.
//  2. μ = mean(freqs), σ = population stddev(freqs), denom = σ + ε.
//  3. simₖ = exp(-|μ - Lₖ| / denom) for every harmonic layer Lₖ.
//  4. stack = exp(-Σ pairWeight / scale) over adjacent pairs.
//  5. rawₖ = stack·simₖ; result = raw / (‖raw‖ + ε).
//
// ⚙️ Usage:
//
//	opts := memory.DefaultOptions()
//	opts.Checkpoints = []int{3, 5, 8}
//	rep, err := memory.Run(alphabet.Parse("GATTACAGATTACA"), opts)
//	for _, cp := range rep.Checkpoints {
//		fmt.Println(cp.WindowLength, cp.RowCount, cp.Score)
//	}
//
// Determinism & Concurrency:
//
//	Run is a pure function of its inputs: no caches, no globals beyond the
//	immutable alphabet tables, no locks. Concurrent calls need no
//	coordination, and identical inputs produce bit-identical reports.
//
// Degenerate inputs (empty sequence, oversized checkpoints, zero-variance
// windows) are not errors; see Run for the exact policy.
package memory
