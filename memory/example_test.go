// SPDX-License-Identifier: MIT

package memory_test

import (
	"fmt"

	"github.com/katalvlaran/seqmem/alphabet"
	"github.com/katalvlaran/seqmem/memory"
)

// ExampleRun evaluates a short sequence on the leading Fibonacci checkpoints.
// Checkpoint 13 is longer than the sequence and is skipped.
func ExampleRun() {
	opts := memory.DefaultOptions()
	opts.Checkpoints = []int{1, 2, 3, 5, 8, 13}

	rep, err := memory.Run(alphabet.Parse("ACGTACGTAC"), opts)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, cp := range rep.Checkpoints {
		fmt.Printf("W=%d rows=%d\n", cp.WindowLength, cp.RowCount)
	}
	// Output:
	// W=1 rows=10
	// W=2 rows=9
	// W=3 rows=8
	// W=5 rows=6
	// W=8 rows=3
}

// ExampleEncoder_Encode shows that a memory vector has one entry per layer.
func ExampleEncoder_Encode() {
	enc, err := memory.NewEncoder([]float64{528, 854.3, 1382.3}, nil, 10, memory.DefaultEpsilon)
	if err != nil {
		fmt.Println(err)
		return
	}
	v, _ := enc.Encode(alphabet.Parse("GATTACA"))
	fmt.Println(len(v), enc.Dim())
	// Output:
	// 3 3
}
