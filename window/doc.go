// SPDX-License-Identifier: MIT

// Package window slices a sequence into fixed-length, fixed-step windows.
//
// All returns a lazy iter.Seq2 of (offset, window) pairs. Windows are
// sub-slices of the input and share its storage; they must be treated as
// read-only. The iterator is restartable: each range starts again from
// offset 0.
//
//	seq, _ := window.All(alphabet.Parse("ACGTA"), 3, 1)
//	for off, w := range seq {
//		fmt.Println(off, w) // 0 ACG, 1 CGT, 2 GTA
//	}
//
// A window length larger than the sequence produces no windows; that is how
// oversized checkpoints fall out upstream.
package window
