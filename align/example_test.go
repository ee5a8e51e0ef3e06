// SPDX-License-Identifier: MIT

package align_test

import (
	"fmt"

	"github.com/katalvlaran/seqmem/align"
	"github.com/katalvlaran/seqmem/alphabet"
)

// ExampleDTW aligns a series with a stretched copy of itself.
func ExampleDTW() {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 2, 3}
	opts := align.DefaultOptions()
	opts.ReturnPath = true
	opts.MemoryMode = align.FullMatrix

	dist, path, err := align.DTW(a, b, &opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("distance=%.1f\npath=%v\n", dist, path)
	// Output:
	// distance=0.0
	// path=[{0 0} {1 1} {1 2} {2 3}]
}

// ExampleSequences compares two DNA fragments that differ by one substitution.
func ExampleSequences() {
	res, err := align.Sequences(alphabet.Parse("ACGT"), alphabet.Parse("AGGT"), nil, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("distance=%.1f normalized=%.3f\n", res.Distance, res.Normalized)
	// Output:
	// distance=7.8 normalized=0.975
}
