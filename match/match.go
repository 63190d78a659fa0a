// Copyright 2026 Abydos Authors.
// All rights reserved.

// Package match ranks candidate names by their similarity to a query.
package match

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/fossabot/abydos/cache"
	"github.com/fossabot/abydos/strutil"
)

// blockKeyCacheSize bounds the number of candidate names whose blocking
// keys are memoized across Rank calls.
const blockKeyCacheSize = 4096

// Match describes a scored candidate.
type Match struct {
	Name  string  `json:"name"`  // candidate as supplied
	Score float64 `json:"score"` // similarity in [0, 1], larger is closer
}

// Scorer returns the similarity in [0, 1] of two strings.
// Rank passes it normalized forms of the query and candidate.
type Scorer func(src, tar string) (float64, error)

// ScoreFunc adapts a similarity function without an error return
// (e.g. Editex.Sim or Lev.Sim) to a Scorer.
func ScoreFunc(fn func(src, tar string) float64) Scorer {
	return func(src, tar string) (float64, error) { return fn(src, tar), nil }
}

// Ranker scores a query against candidate names.
// It can be used concurrently from multiple goroutines.
type Ranker struct {
	score   Scorer
	minSim  float64               // drop matches scoring below this
	limit   int                   // maximum matches to return (0 is no limit)
	workers int                   // concurrent scoring goroutines
	block   func(string) []string // blocking keys (nil scores everything)
	norm    func(string) string   // folds query and candidates before scoring
	keys    *cache.LRU[[]string]  // memoized blocking keys per candidate
}

// Option can be passed to NewRanker to configure its behavior.
type Option func(*Ranker)

// MinSim returns an Option that drops matches scoring below min.
func MinSim(min float64) Option { return func(r *Ranker) { r.minSim = min } }

// Limit returns an Option that caps the number of returned matches.
func Limit(n int) Option { return func(r *Ranker) { r.limit = n } }

// Workers returns an Option setting how many goroutines score candidates.
// The default is the number of usable CPUs.
func Workers(n int) Option { return func(r *Ranker) { r.workers = n } }

// Block returns an Option enabling phonetic blocking: candidates are only
// scored if at least one of their keys matches a key of the query.
// Multi-code encoders like phonetic.DaitchMokotoff can be passed directly.
// Candidate keys are memoized across Rank calls.
func Block(key func(string) []string) Option {
	return func(r *Ranker) { r.block = key }
}

// Norm returns an Option replacing the normalization applied to the query
// and candidates before scoring. The default lowercases, de-accents, and
// decomposes strings; passing nil compares raw strings.
func Norm(fn func(string) string) Option { return func(r *Ranker) { r.norm = fn } }

// NewRanker returns a Ranker that scores candidates with score.
func NewRanker(score Scorer, opts ...Option) *Ranker {
	r := &Ranker{
		score:   score,
		workers: runtime.GOMAXPROCS(0),
		norm:    func(s string) string { return strutil.Normalize(strings.ToLower(s)) },
		keys:    cache.NewLRU[[]string](blockKeyCacheSize),
	}
	for _, o := range opts {
		o(r)
	}
	if r.workers < 1 {
		r.workers = 1
	}
	if r.norm == nil {
		r.norm = func(s string) string { return s }
	}
	return r
}

// Rank scores names against query and returns the surviving matches
// ordered by descending score, with ties broken by name.
func (r *Ranker) Rank(ctx context.Context, query string, names []string) ([]Match, error) {
	qnorm := r.norm(query)

	cands := names
	if r.block != nil {
		qkeys := make(map[string]struct{})
		for _, k := range r.block(query) {
			qkeys[k] = struct{}{}
		}
		cands = make([]string, 0, len(names))
		for _, name := range names {
			keys := r.keys.GetOrSet(name, func() []string { return r.block(name) })
			if keysOverlap(qkeys, keys) {
				cands = append(cands, name)
			}
		}
	}

	scores := make([]float64, len(cands))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, name := range cands {
		i, name := i, name
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			score, err := r.score(qnorm, r.norm(name))
			if err != nil {
				return fmt.Errorf("scoring %q: %w", name, err)
			}
			scores[i] = score
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(cands))
	for i, name := range cands {
		if scores[i] >= r.minSim {
			matches = append(matches, Match{Name: name, Score: scores[i]})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Name < matches[j].Name
	})
	if r.limit > 0 && len(matches) > r.limit {
		matches = matches[:r.limit]
	}
	return matches, nil
}

// Best returns the highest-ranked match for query.
// ok is false if no candidate survives the cutoffs.
func (r *Ranker) Best(ctx context.Context, query string, names []string) (m Match, ok bool, err error) {
	matches, err := r.Rank(ctx, query, names)
	if err != nil || len(matches) == 0 {
		return Match{}, false, err
	}
	return matches[0], true, nil
}

// keysOverlap returns true if any key in keys is present in set.
func keysOverlap(set map[string]struct{}, keys []string) bool {
	for _, k := range keys {
		if _, ok := set[k]; ok {
			return true
		}
	}
	return false
}
