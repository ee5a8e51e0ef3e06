// SPDX-License-Identifier: MIT

package align

import (
	"fmt"
	"math"
)

// DTW computes the Dynamic Time Warping distance between a and b.
//
// Recurrence (1-based, D[0][0]=0, other borders +Inf):
//
//	D[i][j] = |a[i-1]-b[j-1]| + min(D[i-1][j-1], D[i-1][j]+p, D[i][j-1]+p)
//
// Cells outside the band stay +Inf, so a band narrower than |n−m| yields a
// +Inf distance rather than an error. A nil opts uses DefaultOptions.
//
// Errors: ErrEmptyInput, ErrBadInput, ErrPathNeedsMatrix.
// Complexity: O(n·m) time; memory per MemoryMode.
func DTW(a, b []float64, opts *Options) (float64, []Coord, error) {
	// Stage 1 (Validate).
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validate(a, b, o); err != nil {
		return 0, nil, err
	}

	// Stage 2 (Execute).
	switch o.MemoryMode {
	case FullMatrix:
		dp := fullTable(a, b, o)
		dist := dp[len(a)][len(b)]
		if !o.ReturnPath {
			return dist, nil, nil
		}
		if math.IsInf(dist, 1) {
			return dist, nil, nil
		}

		return dist, backtrack(dp, o.SlopePenalty), nil
	case TwoRows:
		return twoRows(a, b, o), nil, nil
	default:
		return singleRow(a, b, o), nil, nil
	}
}

func validate(a, b []float64, o Options) error {
	if len(a) == 0 || len(b) == 0 {
		return ErrEmptyInput
	}
	if o.Window < -1 {
		return fmt.Errorf("DTW: window=%d: %w", o.Window, ErrBadInput)
	}
	if !(o.SlopePenalty >= 0) || math.IsInf(o.SlopePenalty, 1) {
		return fmt.Errorf("DTW: slope penalty=%v: %w", o.SlopePenalty, ErrBadInput)
	}
	if o.MemoryMode < FullMatrix || o.MemoryMode > NoMemory {
		return fmt.Errorf("DTW: memory mode=%d: %w", o.MemoryMode, ErrBadInput)
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return ErrPathNeedsMatrix
	}
	for _, xs := range [2][]float64{a, b} {
		for i, x := range xs {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return fmt.Errorf("DTW: value[%d]=%v: %w", i, x, ErrBadInput)
			}
		}
	}

	return nil
}

// inBand reports whether cell (i, j) lies inside the Sakoe–Chiba band.
func inBand(i, j, window int) bool {
	if window < 0 {
		return true
	}
	d := i - j
	if d < 0 {
		d = -d
	}

	return d <= window
}

func fullTable(a, b []float64, o Options) [][]float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
		for j := range dp[i] {
			dp[i][j] = inf
		}
	}
	dp[0][0] = 0

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if !inBand(i, j, o.Window) {
				continue
			}
			best := min(dp[i-1][j-1], dp[i-1][j]+o.SlopePenalty, dp[i][j-1]+o.SlopePenalty)
			dp[i][j] = math.Abs(a[i-1]-b[j-1]) + best
		}
	}

	return dp
}

// backtrack walks from (n, m) to (1, 1) choosing the cheapest predecessor;
// ties prefer the diagonal, then the insertion step.
func backtrack(dp [][]float64, penalty float64) []Coord {
	i, j := len(dp)-1, len(dp[0])-1
	path := make([]Coord, 0, i+j)
	for {
		path = append(path, Coord{I: i - 1, J: j - 1})
		if i == 1 && j == 1 {
			break
		}
		diag, up, left := dp[i-1][j-1], dp[i-1][j]+penalty, dp[i][j-1]+penalty
		switch {
		case diag <= up && diag <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

func twoRows(a, b []float64, o Options) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if !inBand(i, j, o.Window) {
				curr[j] = inf
				continue
			}
			best := min(prev[j-1], prev[j]+o.SlopePenalty, curr[j-1]+o.SlopePenalty)
			curr[j] = math.Abs(a[i-1]-b[j-1]) + best
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// singleRow keeps one row and carries the diagonal predecessor in a scalar.
func singleRow(a, b []float64, o Options) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	row := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		row[j] = inf
	}

	for i := 1; i <= n; i++ {
		diag := row[0]
		row[0] = inf
		for j := 1; j <= m; j++ {
			up := row[j]
			if !inBand(i, j, o.Window) {
				row[j] = inf
			} else {
				best := min(diag, up+o.SlopePenalty, row[j-1]+o.SlopePenalty)
				row[j] = math.Abs(a[i-1]-b[j-1]) + best
			}
			diag = up
		}
	}

	return row[m]
}
