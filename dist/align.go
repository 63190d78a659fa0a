// Copyright 2025 Abydos Authors.
// All rights reserved.

// Package dist implements weighted edit distances for approximate name
// matching. A generic minimum-cost alignment runs over pluggable per-rune
// cost policies: phonetic groups (Editex), keyboard geometry (Typo), and
// plain or weighted Levenshtein costs (Lev).
package dist

import "slices"

// cost constrains the numeric types distances accumulate in. Whole-unit
// policies use int; geometric ones use float64.
type cost interface{ ~int | ~float64 }

// policy supplies per-rune edit costs to align.
type policy[C cost] interface {
	// pair returns the cost of aligning src rune a against tar rune b.
	// pair(a, a) must be the policy's match cost.
	pair(a, b rune) C
	// del returns the cost of consuming seq[i] while walking the source
	// side. The full sequence is passed so policies can charge by context
	// (Editex discounts a skip immediately after 'H' or 'W').
	del(seq []rune, i int) C
	// ins is del's target-side counterpart.
	ins(seq []rune, j int) C
}

// align computes the minimum total cost of transforming src into tar under
// pol using the Wagner-Fischer algorithm. For all i and j, d[i][j] holds
// the cheapest cost of turning the first i runes of src into the first j
// runes of tar.
//
// If local is true, column 0 is left at zero so that unmatched leading
// source runes are free; target-side costs are always charged. Identical
// inputs return the zero cost without building the matrix.
func align[C cost](src, tar []rune, pol policy[C], local bool) C {
	if slices.Equal(src, tar) {
		var zero C
		return zero
	}

	d := make([][]C, len(src)+1)
	for i := range d {
		d[i] = make([]C, len(tar)+1)
	}
	if !local {
		for i := 1; i <= len(src); i++ {
			d[i][0] = d[i-1][0] + pol.del(src, i-1)
		}
	}
	for j := 1; j <= len(tar); j++ {
		d[0][j] = d[0][j-1] + pol.ins(tar, j-1)
	}

	for i := 1; i <= len(src); i++ {
		for j := 1; j <= len(tar); j++ {
			d[i][j] = min(
				d[i-1][j]+pol.del(src, i-1),
				d[i][j-1]+pol.ins(tar, j-1),
				d[i-1][j-1]+pol.pair(src[i-1], tar[j-1]),
			)
		}
	}
	return d[len(src)][len(tar)]
}
