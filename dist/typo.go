// Copyright 2025 Abydos Authors.
// All rights reserved.

package dist

import (
	"math"
	"unicode/utf8"
)

// Metric names a function mapping key-grid offsets to a distance.
type Metric string

const (
	// Euclidean is the straight-line distance between two keys.
	Euclidean Metric = "euclidean"
	// Manhattan is the row offset plus the column offset.
	Manhattan Metric = "manhattan"
	// LogEuclidean is log(1 + Euclidean), damping far-apart keys.
	LogEuclidean Metric = "log-euclidean"
	// LogManhattan is log(1 + Manhattan).
	LogManhattan Metric = "log-manhattan"
)

// MetricNames returns the names accepted by TypoMetric.
func MetricNames() []string {
	return []string{string(Euclidean), string(LogEuclidean), string(LogManhattan), string(Manhattan)}
}

// Typo measures how plausibly one string is a typing slip for another:
// substituting a rune costs more the farther apart the two keys sit on the
// keyboard, with a surcharge when one of them needs shift.
type Typo struct {
	ins, del, sub, shift float64
	metric               Metric
	layoutName           string
	layout               *Layout
	keyDist              func(dr, dc float64) float64
}

// TypoOption modifies a Typo created by NewTypo.
type TypoOption func(*Typo)

// TypoCosts overrides the default costs of 1 for insertion and deletion and
// 0.5 for substitution and shift.
func TypoCosts(ins, del, sub, shift float64) TypoOption {
	return func(t *Typo) {
		t.ins, t.del, t.sub, t.shift = ins, del, sub, shift
	}
}

// TypoMetric selects the key distance function. The default is Euclidean.
func TypoMetric(m Metric) TypoOption {
	return func(t *Typo) { t.metric = m }
}

// TypoLayout selects the keyboard by name. The default is "QWERTY"; see
// LayoutNames for the alternatives.
func TypoLayout(name string) TypoOption {
	return func(t *Typo) { t.layoutName = name }
}

// NewTypo returns a Typo policy. It fails with a *ConfigError if an option
// names an unknown metric or layout or makes a cost negative.
func NewTypo(opts ...TypoOption) (*Typo, error) {
	t := &Typo{
		ins:        1,
		del:        1,
		sub:        0.5,
		shift:      0.5,
		metric:     Euclidean,
		layoutName: "QWERTY",
	}
	for _, o := range opts {
		o(t)
	}
	if t.ins < 0 || t.del < 0 || t.sub < 0 || t.shift < 0 {
		return nil, configErrorf("typo costs must be non-negative")
	}
	var ok bool
	if t.layout, ok = layouts[t.layoutName]; !ok {
		return nil, configErrorf("unknown keyboard layout %q", t.layoutName)
	}
	switch t.metric {
	case Euclidean:
		t.keyDist = func(dr, dc float64) float64 { return math.Sqrt(dr*dr + dc*dc) }
	case Manhattan:
		t.keyDist = func(dr, dc float64) float64 { return math.Abs(dr) + math.Abs(dc) }
	case LogEuclidean:
		t.keyDist = func(dr, dc float64) float64 { return math.Log(1 + math.Sqrt(dr*dr+dc*dc)) }
	case LogManhattan:
		t.keyDist = func(dr, dc float64) float64 { return math.Log(1 + math.Abs(dr) + math.Abs(dc)) }
	default:
		return nil, configErrorf("unknown metric %q", t.metric)
	}
	return t, nil
}

// Dist returns the typo distance between src and tar. It fails with an
// *UnsupportedRuneError if the alignment has to price a rune that is not on
// the configured layout; runes in positions that never reach a substitution
// are fine.
func (t *Typo) Dist(src, tar string) (float64, error) {
	if src == tar {
		return 0, nil
	}
	s, r := []rune(src), []rune(tar)
	if len(s) == 0 {
		return float64(len(r)) * t.ins, nil
	}
	if len(r) == 0 {
		return float64(len(s)) * t.del, nil
	}
	pol := &typoPolicy{t: t}
	d := align[float64](s, r, pol, false)
	if pol.err != nil {
		return 0, pol.err
	}
	return d, nil
}

// NormDist returns Dist scaled into [0, 1] by the costlier of deleting all
// of src and inserting all of tar.
func (t *Typo) NormDist(src, tar string) (float64, error) {
	if src == tar {
		return 0, nil
	}
	d, err := t.Dist(src, tar)
	if err != nil {
		return 0, err
	}
	den := math.Max(float64(utf8.RuneCountInString(src))*t.del,
		float64(utf8.RuneCountInString(tar))*t.ins)
	if den == 0 {
		return 0, nil
	}
	return d / den, nil
}

// Sim returns 1 - NormDist.
func (t *Typo) Sim(src, tar string) (float64, error) {
	d, err := t.NormDist(src, tar)
	if err != nil {
		return 0, err
	}
	return 1 - d, nil
}

// typoPolicy adapts Typo costs to align. Key lookups happen only when the
// matrix prices a substitution of differing runes, so equal strings and
// pure insert/delete chains never need one. The first failed lookup is
// latched; the caller discards the matrix result.
type typoPolicy struct {
	t   *Typo
	err error
}

func (p *typoPolicy) pair(a, b rune) float64 {
	if a == b {
		return 0
	}
	ca, ok := p.t.layout.coordOf(a)
	if !ok {
		p.fail(a)
		return 0
	}
	cb, ok := p.t.layout.coordOf(b)
	if !ok {
		p.fail(b)
		return 0
	}
	d := p.t.keyDist(float64(ca.row-cb.row), float64(ca.col-cb.col))
	if ca.shift != cb.shift {
		d += p.t.shift
	}
	return p.t.sub * d
}

func (p *typoPolicy) del(seq []rune, i int) float64 { return p.t.del }

func (p *typoPolicy) ins(seq []rune, j int) float64 { return p.t.ins }

func (p *typoPolicy) fail(r rune) {
	if p.err == nil {
		p.err = &UnsupportedRuneError{Rune: r, Layout: p.t.layoutName}
	}
}
