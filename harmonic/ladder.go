// SPDX-License-Identifier: MIT

package harmonic

// defaultLadderMax bounds DefaultCheckpoints.
const defaultLadderMax = 987

// Fibonacci returns the distinct Fibonacci numbers 1, 2, 3, 5, 8, … that are
// ≤ limit, in ascending order. limit < 1 yields nil.
func Fibonacci(limit int) []int {
	var out []int
	for a, b := 1, 2; a <= limit; a, b = b, a+b {
		out = append(out, a)
		if b < a { // int overflow
			break
		}
	}

	return out
}

// DefaultCheckpoints is the conventional window ladder 1 … 987.
func DefaultCheckpoints() []int {
	return Fibonacci(defaultLadderMax)
}
