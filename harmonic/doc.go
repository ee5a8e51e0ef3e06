// SPDX-License-Identifier: MIT

// Package harmonic generates the reference side of recognition: geometric
// harmonic layers of an anchor frequency, the normalised prototype built
// from them, and the Fibonacci checkpoint ladder.
//
//	layer[k] = anchor · growthᵏ,   k = 0 … n-1
//
// The default growth constant is Phi (≈1.618). Nothing here is cached:
// every call recomputes from (anchor, growth, n), so different anchors
// never share state.
package harmonic
