// Copyright 2025 Abydos Authors.
// All rights reserved.

package dist

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/fossabot/abydos/strutil"
)

// editexGroups lists the sets of letters Editex treats as phonetically
// confusable. Letters absent from every group (H and W among them) never
// share a group with anything.
var editexGroups = []string{
	"AEIOUY", "BP", "CKQ", "DT", "LR", "MN", "GJ", "FPV", "SXZ", "CSZ",
}

// editexGroupMask maps each letter to a bitmask of the groups containing
// it. Two letters share a group iff their masks intersect.
var editexGroupMask = func() map[rune]uint16 {
	m := make(map[rune]uint16)
	for i, g := range editexGroups {
		for _, r := range g {
			m[r] |= 1 << i
		}
	}
	return m
}()

// editexSentinel precedes the first rune of each side. It never equals a
// decoded rune, is not 'H' or 'W', and belongs to no group, so the first
// step of a side always costs a full mismatch.
const editexSentinel rune = -1

// Editex computes phonetic edit distances between words. Aligning two runes
// costs nothing for an exact match, a reduced cost when they belong to the
// same letter group, and a full mismatch otherwise; consuming a rune right
// after a differing 'H' or 'W' is discounted to the group cost.
type Editex struct {
	match, group, mismatch int
	local                  bool
}

// EditexOption configures an Editex instance.
type EditexOption func(*Editex)

// EditexCosts overrides the (match, group, mismatch) cost triple.
func EditexCosts(match, group, mismatch int) EditexOption {
	return func(e *Editex) { e.match, e.group, e.mismatch = match, group, mismatch }
}

// EditexLocal makes unmatched leading source runes free of cost.
func EditexLocal() EditexOption { return func(e *Editex) { e.local = true } }

// NewEditex returns an Editex with the canonical (0, 1, 2) cost triple
// unless overridden. Negative costs are rejected with a ConfigError.
func NewEditex(opts ...EditexOption) (*Editex, error) {
	e := &Editex{match: 0, group: 1, mismatch: 2}
	for _, o := range opts {
		o(e)
	}
	if e.match < 0 || e.group < 0 || e.mismatch < 0 {
		return nil, configErrorf("negative editex costs (%d, %d, %d)",
			e.match, e.group, e.mismatch)
	}
	return e, nil
}

// Dist returns the Editex distance between src and tar.
func (e *Editex) Dist(src, tar string) int {
	s, t := editexRunes(src), editexRunes(tar)
	if slices.Equal(s, t) {
		return 0
	}
	// One empty side degenerates to consuming the other at full mismatch
	// cost. This must short-circuit before the DP: the boundary chain can
	// be cheaper for repeated letters, and that is not the defined result.
	if len(s) == 0 {
		return len(t) * e.mismatch
	}
	if len(t) == 0 {
		return len(s) * e.mismatch
	}
	return align[int](s, t, editexPolicy{e}, e.local)
}

// NormDist returns the Editex distance normalized to [0, 1] by the longer
// side's all-mismatch cost. Lengths are measured on the original strings,
// before case mapping and decomposition.
func (e *Editex) NormDist(src, tar string) float64 {
	if src == tar {
		return 0
	}
	den := max(utf8.RuneCountInString(src), utf8.RuneCountInString(tar)) * e.mismatch
	if den == 0 {
		return 0
	}
	return float64(e.Dist(src, tar)) / float64(den)
}

// Sim returns the normalized Editex similarity, 1 - NormDist.
func (e *Editex) Sim(src, tar string) float64 { return 1 - e.NormDist(src, tar) }

// editexRunes uppercases and decomposes a word the way the cost tables
// expect: full case mapping, NFKD, then any straggling 'ß' spelled out.
// Combining marks survive decomposition and cost full mismatches.
func editexRunes(s string) []rune {
	return []rune(strings.ReplaceAll(strutil.Decompose(strutil.Upper(s)), "ß", "SS"))
}

// editexPolicy adapts Editex costs to align.
type editexPolicy struct{ e *Editex }

// pair is the r-cost: match, shared group, or mismatch.
func (p editexPolicy) pair(a, b rune) int {
	switch {
	case a == b:
		return p.e.match
	case editexGroupMask[a]&editexGroupMask[b] != 0:
		return p.e.group
	}
	return p.e.mismatch
}

// step is the d-cost of consuming seq[i]: pair against the preceding rune,
// except that stepping past a differing 'H' or 'W' costs only the group
// cost.
func (p editexPolicy) step(seq []rune, i int) int {
	prev := editexSentinel
	if i > 0 {
		prev = seq[i-1]
	}
	if prev != seq[i] && (prev == 'H' || prev == 'W') {
		return p.e.group
	}
	return p.pair(prev, seq[i])
}

func (p editexPolicy) del(seq []rune, i int) int { return p.step(seq, i) }
func (p editexPolicy) ins(seq []rune, j int) int { return p.step(seq, j) }
