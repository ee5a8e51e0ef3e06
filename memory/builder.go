// SPDX-License-Identifier: MIT

package memory

import (
	"fmt"

	"github.com/katalvlaran/seqmem/alphabet"
	"github.com/katalvlaran/seqmem/matrix"
	"github.com/katalvlaran/seqmem/window"
)

const opBuildMatrix = "BuildMatrix"

// BuildMatrix encodes every window of length windowLen (advancing by step)
// and stacks the vectors into a rows×enc.Dim() matrix in offset order.
//
// A windowLen larger than the sequence yields a 0-row matrix, not an error.
// Errors: window.ErrBadLength / ErrBadStep from the extractor.
// Complexity: O(rows · (windowLen + Dim)) time, O(rows · Dim) memory.
func BuildMatrix(seq alphabet.Sequence, windowLen, step int, enc *Encoder) (*matrix.Dense, error) {
	if enc == nil {
		return nil, memoryErrorf(opBuildMatrix, "encoder", matrix.ErrNilMatrix)
	}

	it, err := window.All(seq, windowLen, step)
	if err != nil {
		return nil, memoryErrorf(opBuildMatrix, "", err)
	}

	rows := window.Count(len(seq), windowLen, step)
	m, err := matrix.NewDense(rows, enc.Dim())
	if err != nil {
		return nil, memoryErrorf(opBuildMatrix, "", err)
	}

	i := 0
	for off, w := range it {
		row, err := m.RowView(i)
		if err != nil {
			return nil, memoryErrorf(opBuildMatrix, "", err)
		}
		if err = enc.EncodeInto(row, w); err != nil {
			return nil, memoryErrorf(opBuildMatrix, fmt.Sprintf("offset=%d", off), err)
		}
		i++
	}

	return m, nil
}
