// SPDX-License-Identifier: MIT
// Package: alphabet
//
// table.go — immutable frequency and pair-weight lookups.
//
// Contract:
//   - Frequency and PairWeight are total functions (unknown → 0.0).
//   - A *Table never changes after NewTable returns; methods are safe for
//     concurrent use without locks.
//   - Symbols() is reported in ascending order for deterministic iteration.

package alphabet

import (
	"math"
	"slices"
)

const opNewTable = "NewTable"

// Table maps symbols to canonical frequencies and ordered symbol pairs to
// stacking weights.
type Table struct {
	freq    map[Symbol]float64
	pair    map[Pair]float64
	symbols []Symbol // sorted ascending
}

// NewTable copies freqs and pairs into a new immutable Table.
// Stage 1 (Validate): at least one frequency; every value finite.
// Stage 2 (Copy): detach from caller maps so later caller edits are invisible.
// Stage 3 (Finalize): record the sorted symbol list.
//
// pairs may be nil (all weights 0).
// Errors: ErrEmptyTable, ErrNonFinite.
// Complexity: O(F log F + P).
func NewTable(freqs map[Symbol]float64, pairs map[Pair]float64) (*Table, error) {
	if len(freqs) == 0 {
		return nil, alphabetErrorf(opNewTable, ErrEmptyTable)
	}

	t := &Table{
		freq:    make(map[Symbol]float64, len(freqs)),
		pair:    make(map[Pair]float64, len(pairs)),
		symbols: make([]Symbol, 0, len(freqs)),
	}
	for s, f := range freqs {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, alphabetErrorf(opNewTable+": frequency "+s.String(), ErrNonFinite)
		}
		t.freq[s] = f
		t.symbols = append(t.symbols, s)
	}
	for p, w := range pairs {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, alphabetErrorf(opNewTable+": pair "+p.A.String()+p.B.String(), ErrNonFinite)
		}
		t.pair[p] = w
	}
	slices.Sort(t.symbols)

	return t, nil
}

// Frequency returns the canonical frequency of s, or 0.0 for unknown symbols.
func (t *Table) Frequency(s Symbol) float64 {
	return t.freq[s]
}

// PairWeight returns the stacking weight of the ordered pair (a, b), or 0.0
// when the pair is not tabulated.
func (t *Table) PairWeight(a, b Symbol) float64 {
	return t.pair[Pair{A: a, B: b}]
}

// Contains reports whether s has a tabulated frequency.
func (t *Table) Contains(s Symbol) bool {
	_, ok := t.freq[s]
	return ok
}

// Symbols returns a copy of the tabulated symbols in ascending order.
func (t *Table) Symbols() []Symbol {
	return slices.Clone(t.symbols)
}

// Frequencies writes the frequency of every symbol of w into dst and returns
// it; dst is grown when too short.
func (t *Table) Frequencies(dst []float64, w Sequence) []float64 {
	if cap(dst) < len(w) {
		dst = make([]float64, len(w))
	}
	dst = dst[:len(w)]
	for i, s := range w {
		dst[i] = t.freq[s]
	}

	return dst
}

// dna is the shared default table. Built once; never written afterwards.
var dna = mustTable(
	map[Symbol]float64{
		'A': 545.6,
		'C': 537.8,
		'G': 550.0,
		'T': 543.4,
	},
	map[Pair]float64{
		{'A', 'A'}: -1.00, {'T', 'T'}: -1.00,
		{'A', 'T'}: -0.88,
		{'T', 'A'}: -0.58,
		{'C', 'A'}: -1.45, {'T', 'G'}: -1.45,
		{'G', 'T'}: -1.44, {'A', 'C'}: -1.44,
		{'C', 'T'}: -1.28, {'A', 'G'}: -1.28,
		{'G', 'A'}: -1.30, {'T', 'C'}: -1.30,
		{'C', 'G'}: -2.17,
		{'G', 'C'}: -2.24,
		{'G', 'G'}: -1.84, {'C', 'C'}: -1.84,
	},
)

// DNA returns the default four-symbol table (A, C, G, T).
func DNA() *Table { return dna }

// Frequency looks s up in the default DNA table.
func Frequency(s Symbol) float64 { return dna.Frequency(s) }

// PairWeight looks (a, b) up in the default DNA table.
func PairWeight(a, b Symbol) float64 { return dna.PairWeight(a, b) }

// mustTable is for package-level literals only.
func mustTable(freqs map[Symbol]float64, pairs map[Pair]float64) *Table {
	t, err := NewTable(freqs, pairs)
	if err != nil {
		panic(err)
	}

	return t
}
