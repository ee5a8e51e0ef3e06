// SPDX-License-Identifier: MIT

package synth

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/seqmem/alphabet"
)

const (
	opGenerate    = "synth.Generate"
	opFrequencies = "synth.Frequencies"
	opTable       = "synth.Table"

	labelSequence = "seqmem/synth/sequence"
	labelFreq     = "seqmem/synth/frequency"
	labelPair     = "seqmem/synth/pair"

	// Table defaults place synthetic frequencies in the same band as DNA.
	DefaultBase   = 540.0
	DefaultSpread = 15.0

	// Pair weights are drawn from [MinPairWeight, MaxPairWeight).
	MinPairWeight = -2.5
	MaxPairWeight = -0.5
)

// DNASymbols is the symbol set used when a caller passes none.
var DNASymbols = []alphabet.Symbol{'A', 'C', 'G', 'T'}

// Generate returns n symbols drawn uniformly from symbols.
// A nil or empty symbols slice selects DNASymbols. Duplicate entries are
// kept and weigh proportionally.
//
// Errors: ErrBadLength when n < 0.
// Complexity: O(n).
func Generate(seed string, n int, symbols []alphabet.Symbol) (alphabet.Sequence, error) {
	if n < 0 {
		return nil, synthErrorf(fmt.Sprintf("%s n=%d", opGenerate, n), ErrBadLength)
	}
	if len(symbols) == 0 {
		symbols = DNASymbols
	}

	s := newStream(labelSequence, seed)
	out := make(alphabet.Sequence, n)
	for i := range out {
		out[i] = symbols[s.intn(len(symbols))]
	}

	return out, nil
}

// Frequencies assigns every distinct symbol a frequency uniform in
// [base-spread, base+spread). Symbols are visited in ascending order, so the
// result does not depend on the order of the input slice.
//
// Errors: ErrNoSymbols, ErrBadRange.
func Frequencies(seed string, symbols []alphabet.Symbol, base, spread float64) (map[alphabet.Symbol]float64, error) {
	syms := canonical(symbols)
	if len(syms) == 0 {
		return nil, synthErrorf(opFrequencies, ErrNoSymbols)
	}
	if !(base > 0) || math.IsInf(base, 0) || !(spread >= 0) || !(spread < base) {
		return nil, synthErrorf(fmt.Sprintf("%s base=%v spread=%v", opFrequencies, base, spread), ErrBadRange)
	}

	s := newStream(labelFreq, seed)
	out := make(map[alphabet.Symbol]float64, len(syms))
	for _, sym := range syms {
		out[sym] = base + spread*(2*s.float64()-1)
	}

	return out, nil
}

// Table builds a complete alphabet.Table over symbols: frequencies from
// Frequencies(seed, symbols, DefaultBase, DefaultSpread) and a weight for
// every ordered pair in [MinPairWeight, MaxPairWeight).
//
// Errors: ErrNoSymbols.
// Complexity: O(k²) for k distinct symbols.
func Table(seed string, symbols []alphabet.Symbol) (*alphabet.Table, error) {
	freqs, err := Frequencies(seed, symbols, DefaultBase, DefaultSpread)
	if err != nil {
		return nil, synthErrorf(opTable, err)
	}

	syms := canonical(symbols)
	s := newStream(labelPair, seed)
	pairs := make(map[alphabet.Pair]float64, len(syms)*len(syms))
	for _, a := range syms {
		for _, b := range syms {
			pairs[alphabet.Pair{A: a, B: b}] = MinPairWeight + (MaxPairWeight-MinPairWeight)*s.float64()
		}
	}

	return alphabet.NewTable(freqs, pairs)
}

// canonical returns a sorted, duplicate-free copy of symbols.
func canonical(symbols []alphabet.Symbol) []alphabet.Symbol {
	out := slices.Clone(symbols)
	slices.Sort(out)

	return slices.Compact(out)
}
