// Copyright 2025 Abydos Authors.
// All rights reserved.

// Package mra implements the Western Airlines Match Rating Approach, a
// surname encoder paired with a comparison rating on a 0 to 6 scale.
package mra

import (
	"slices"
	"strings"

	"github.com/fossabot/abydos/strutil"
)

// Encode returns the personal numeric identifier for a name: the first
// letter, the remaining consonants with doubled letters collapsed, and at
// most six letters kept as the first and last three.
func Encode(name string) string {
	if name == "" {
		return ""
	}
	word := []rune(strings.ReplaceAll(strutil.Upper(name), "ß", "SS"))
	kept := []rune{word[0]}
	for _, r := range word[1:] {
		switch r {
		case 'A', 'E', 'I', 'O', 'U':
		default:
			kept = append(kept, r)
		}
	}
	enc := []rune(strutil.Squeeze(string(kept)))
	if len(enc) > 6 {
		enc = append(enc[:3:3], enc[len(enc)-3:]...)
	}
	return string(enc)
}

// Compare returns the comparison rating of two names. Identical strings
// rate 6; an empty side, encodings whose lengths differ by more than two,
// or too little agreement for the combined length rate 0.
func Compare(src, tar string) int {
	if src == tar {
		return 6
	}
	if src == "" || tar == "" {
		return 0
	}
	s, t := []rune(Encode(src)), []rune(Encode(tar))

	diff := len(s) - len(t)
	if diff < 0 {
		diff = -diff
	}
	if diff > 2 {
		return 0
	}

	var minRating int
	switch sum := len(s) + len(t); {
	case sum < 5:
		minRating = 5
	case sum < 8:
		minRating = 4
	case sum < 12:
		minRating = 3
	default:
		minRating = 2
	}

	// Two rounds: drop positions that agree, keep the unmatched tails, and
	// reverse so the second round works from the far end.
	for round := 0; round < 2; round++ {
		n := min(len(s), len(t))
		var ns, nt []rune
		for i := 0; i < n; i++ {
			if s[i] != t[i] {
				ns = append(ns, s[i])
				nt = append(nt, t[i])
			}
		}
		s = append(ns, s[n:]...)
		t = append(nt, t[n:]...)
		slices.Reverse(s)
		slices.Reverse(t)
	}

	sim := 6 - max(len(s), len(t))
	if sim >= minRating {
		return sim
	}
	return 0
}

// Sim returns Compare scaled to [0, 1].
func Sim(src, tar string) float64 {
	return float64(Compare(src, tar)) / 6
}

// Dist returns 1 - Sim.
func Dist(src, tar string) float64 {
	return 1 - Sim(src, tar)
}
