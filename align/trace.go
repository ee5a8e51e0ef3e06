// SPDX-License-Identifier: MIT

package align

import (
	"github.com/katalvlaran/seqmem/alphabet"
)

// Trace maps seq to its per-symbol frequency series. A nil table selects
// alphabet.DNA(); unknown symbols contribute 0.
func Trace(seq alphabet.Sequence, table *alphabet.Table) []float64 {
	if table == nil {
		table = alphabet.DNA()
	}

	return table.Frequencies(nil, seq)
}

// Sequences aligns the traces of a and b.
//
// Stage 1 (Prepare): Trace both inputs with table.
// Stage 2 (Execute): DTW with opts.
// Stage 3 (Finalize): Normalized = Distance / (len(a)+len(b)).
//
// Errors: those of DTW.
func Sequences(a, b alphabet.Sequence, table *alphabet.Table, opts *Options) (Result, error) {
	dist, path, err := DTW(Trace(a, table), Trace(b, table), opts)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Distance:   dist,
		Normalized: dist / float64(len(a)+len(b)),
		Path:       path,
	}, nil
}
