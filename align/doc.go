// SPDX-License-Identifier: MIT

// Package align compares two symbol sequences by their frequency traces.
//
// A trace maps every symbol of a sequence to its canonical frequency.
// Two traces are aligned with Dynamic Time Warping (DTW), which tolerates
// insertions, deletions and local stretching, and reports the cumulative
// frequency distance of the best warping path.
//
// Key features:
//   - FullMatrix mode: O(N·M) memory, supports the alignment path
//   - TwoRows / NoMemory modes: O(M) memory, distance only
//   - optional Sakoe–Chiba band (|i−j| ≤ Window)
//   - slope penalty on non-diagonal steps
//
// Usage:
//
//	opts := align.DefaultOptions()
//	opts.ReturnPath = true
//	res, err := align.Sequences(a, b, nil, &opts) // nil table = DNA
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows, NoMemory)
package align
