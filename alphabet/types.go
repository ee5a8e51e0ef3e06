// SPDX-License-Identifier: MIT

package alphabet

// Symbol is a single letter of a finite alphabet.
type Symbol rune

// Sequence is an ordered list of symbols. The engine never mutates a Sequence;
// windows handed out by other packages are sub-slices sharing its storage.
type Sequence []Symbol

// Pair is an ordered (5'→3') pair of adjacent symbols.
type Pair struct {
	A, B Symbol
}

// Parse converts s rune-by-rune into a Sequence. No validation is applied:
// symbols outside the table are legal and weigh 0.
func Parse(s string) Sequence {
	runes := []rune(s)
	seq := make(Sequence, len(runes))
	for i, r := range runes {
		seq[i] = Symbol(r)
	}

	return seq
}

// String renders the sequence back to text.
func (s Sequence) String() string {
	runes := make([]rune, len(s))
	for i, sym := range s {
		runes[i] = rune(sym)
	}

	return string(runes)
}

// Len returns the number of symbols.
func (s Sequence) Len() int { return len(s) }

// String renders a single symbol.
func (s Symbol) String() string { return string(rune(s)) }
