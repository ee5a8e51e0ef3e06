// SPDX-License-Identifier: MIT

package alphabet

import "math"

const opStackingScalar = "StackingScalar"

// StackingScalar sums PairWeight over every adjacent pair of w and returns
// exp(-sum/scale).
//
// Behavior highlights:
//   - len(w) < 2 has no adjacent pairs and yields exactly 1.0.
//   - Strongly negative sums may overflow to +Inf; callers that divide by the
//     scalar must tolerate that (memory.Encoder does).
//
// Errors: ErrBadScale when scale ≤ 0, NaN or ±Inf.
// Complexity: O(len(w)).
func (t *Table) StackingScalar(w Sequence, scale float64) (float64, error) {
	if !(scale > 0) || math.IsInf(scale, 1) {
		return 0, alphabetErrorf(opStackingScalar, ErrBadScale)
	}
	if len(w) < 2 {
		return 1.0, nil
	}

	var sum float64
	for i := 0; i+1 < len(w); i++ {
		sum += t.pair[Pair{A: w[i], B: w[i+1]}]
	}

	return math.Exp(-sum / scale), nil
}

// StackingScalar evaluates w against the default DNA table.
func StackingScalar(w Sequence, scale float64) (float64, error) {
	return dna.StackingScalar(w, scale)
}
