// SPDX-License-Identifier: MIT

package harmonic

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

const opAnchor = "Anchor"

// anchors is the registry of named anchor frequencies (Hz). Read-only.
var anchors = map[string]float64{
	"schumann":  7.83,
	"verdi":     432.0,
	"concert":   440.0,
	"solfeggio": 528.0,
}

// DefaultAnchor is the anchor used when none is configured.
const DefaultAnchor = "solfeggio"

// Anchor resolves id to a frequency. Registered names are matched
// case-insensitively; otherwise id is parsed as a decimal literal ("540").
//
// Errors: ErrUnknownAnchor for anything else, ErrBadAnchor for a literal ≤ 0.
func Anchor(id string) (float64, error) {
	key := strings.ToLower(strings.TrimSpace(id))
	if f, ok := anchors[key]; ok {
		return f, nil
	}

	f, err := strconv.ParseFloat(key, 64)
	if err != nil {
		return 0, harmonicErrorf(opAnchor+" "+strconv.Quote(id), ErrUnknownAnchor)
	}
	if !(f > 0) || math.IsInf(f, 1) {
		return 0, harmonicErrorf(opAnchor+" "+strconv.Quote(id), ErrBadAnchor)
	}

	return f, nil
}

// AnchorNames lists the registered anchor names in ascending order.
func AnchorNames() []string {
	names := make([]string, 0, len(anchors))
	for name := range anchors {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}
