// SPDX-License-Identifier: MIT

package align

import (
	"encoding/json"
	"math"
)

// MemoryMode controls how DTW stores its DP table.
//
//   - FullMatrix — the entire (n+1)×(m+1) table; supports path recovery.
//   - TwoRows    — previous and current rows only; distance only.
//   - NoMemory   — a single row plus one carried cell; distance only.
type MemoryMode int

const (
	FullMatrix MemoryMode = iota
	TwoRows
	NoMemory
)

// Options configures DTW.
//
//   - Window       — Sakoe–Chiba band: cells with |i−j| > Window are skipped.
//     -1 disables the band. Values below -1 are rejected.
//   - SlopePenalty — cost added to every insertion or deletion step (≥ 0).
//   - ReturnPath   — also return the optimal warping path (FullMatrix only).
//   - MemoryMode   — DP storage strategy.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions: no band, no penalty, no path, TwoRows storage.
func DefaultOptions() Options {
	return Options{
		Window:       -1,
		SlopePenalty: 0,
		ReturnPath:   false,
		MemoryMode:   TwoRows,
	}
}

// Coord is one cell of a warping path: index I of the first input aligned
// with index J of the second.
type Coord struct {
	I int `json:"i"`
	J int `json:"j"`
}

// Result is the outcome of Sequences.
//
// Distance is +Inf when the band makes (len(a), len(b)) unreachable;
// Normalized follows it. In JSON both are written as null and
// "reachable" is false.
type Result struct {
	Distance   float64 // DTW cost
	Normalized float64 // Distance / (len(a) + len(b))
	Path       []Coord // set when Options.ReturnPath was requested
}

// Reachable reports whether the alignment has a finite cost.
func (r Result) Reachable() bool {
	return !math.IsInf(r.Distance, 0) && !math.IsNaN(r.Distance)
}

type resultJSON struct {
	Reachable  bool     `json:"reachable"`
	Distance   *float64 `json:"distance"`
	Normalized *float64 `json:"normalized"`
	Path       []Coord  `json:"path,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (r Result) MarshalJSON() ([]byte, error) {
	w := resultJSON{Reachable: r.Reachable(), Path: r.Path}
	if w.Reachable {
		w.Distance, w.Normalized = &r.Distance, &r.Normalized
	}

	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler; a null distance decodes as +Inf.
func (r *Result) UnmarshalJSON(data []byte) error {
	var w resultJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*r = Result{Distance: math.Inf(1), Normalized: math.Inf(1), Path: w.Path}
	if w.Distance != nil {
		r.Distance = *w.Distance
	}
	if w.Normalized != nil {
		r.Normalized = *w.Normalized
	}

	return nil
}
