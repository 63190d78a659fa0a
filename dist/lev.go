// Copyright 2025 Abydos Authors.
// All rights reserved.

package dist

import (
	"math"
	"unicode/utf8"
)

// Lev is plain Levenshtein distance with optional per-operation weights.
type Lev struct {
	ins, del, sub float64
}

// LevOption modifies a Lev created by NewLev.
type LevOption func(*Lev)

// LevCosts overrides the default unit costs.
func LevCosts(ins, del, sub float64) LevOption {
	return func(l *Lev) { l.ins, l.del, l.sub = ins, del, sub }
}

// NewLev returns a Lev policy. It fails with a *ConfigError if an option
// makes a cost negative.
func NewLev(opts ...LevOption) (*Lev, error) {
	l := &Lev{ins: 1, del: 1, sub: 1}
	for _, o := range opts {
		o(l)
	}
	if l.ins < 0 || l.del < 0 || l.sub < 0 {
		return nil, configErrorf("levenshtein costs must be non-negative")
	}
	return l, nil
}

// Dist returns the weighted Levenshtein distance between src and tar.
func (l *Lev) Dist(src, tar string) float64 {
	if src == tar {
		return 0
	}
	s, t := []rune(src), []rune(tar)
	if len(s) == 0 {
		return float64(len(t)) * l.ins
	}
	if len(t) == 0 {
		return float64(len(s)) * l.del
	}
	return align[float64](s, t, levPolicy{l}, false)
}

// NormDist returns Dist scaled into [0, 1] by the costlier of deleting all
// of src and inserting all of tar.
func (l *Lev) NormDist(src, tar string) float64 {
	if src == tar {
		return 0
	}
	den := math.Max(float64(utf8.RuneCountInString(src))*l.del,
		float64(utf8.RuneCountInString(tar))*l.ins)
	if den == 0 {
		return 0
	}
	return l.Dist(src, tar) / den
}

// Sim returns 1 - NormDist.
func (l *Lev) Sim(src, tar string) float64 {
	return 1 - l.NormDist(src, tar)
}

type levPolicy struct{ l *Lev }

func (p levPolicy) pair(a, b rune) float64 {
	if a == b {
		return 0
	}
	return p.l.sub
}

func (p levPolicy) del(seq []rune, i int) float64 { return p.l.del }

func (p levPolicy) ins(seq []rune, j int) float64 { return p.l.ins }
