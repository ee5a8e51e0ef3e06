// SPDX-License-Identifier: MIT

package matrix

const opDot = "Dot"

// dot returns Σ a[i]·b[i].
// Errors: ErrNilMatrix for a nil operand, ErrDimensionMismatch on length mismatch.
func dot(a, b []float64) (float64, error) {
	if err := ValidateVecLen(a, len(b)); err != nil {
		return 0, matrixErrorf(opDot, err)
	}
	if b == nil {
		return 0, matrixErrorf(opDot, ErrNilMatrix)
	}

	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s, nil
}
