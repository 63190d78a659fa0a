// Copyright 2026 Abydos Authors.
// All rights reserved.

package main

import (
	"math"
	"testing"

	"github.com/fossabot/abydos/dist"
)

func TestNewScorer(t *testing.T) {
	for _, tc := range []struct {
		algo     string
		costs    []float64
		local    bool
		wantDesc string
	}{
		{algoEditex, nil, false, "editex"},
		{algoEditex, []float64{0, 1, 2}, true, "editex (local)"},
		{algoLev, nil, false, "lev"},
		{algoLev, []float64{1, 1, 1}, false, "lev"},
		{algoMRA, nil, false, "mra"},
		{algoTypo, nil, false, "typo (QWERTY, euclidean)"},
		{algoTypo, []float64{1, 1, 0.5, 0.5}, false, "typo (QWERTY, euclidean)"},
	} {
		scorer, desc, err := newScorer(tc.algo, tc.costs, "QWERTY", dist.Euclidean, tc.local)
		if err != nil {
			t.Errorf("newScorer(%q, %v) failed: %v", tc.algo, tc.costs, err)
			continue
		}
		if desc != tc.wantDesc {
			t.Errorf("newScorer(%q, %v) description is %q; want %q", tc.algo, tc.costs, desc, tc.wantDesc)
		}
		if sim, err := scorer("cat", "cat"); err != nil || sim != 1 {
			t.Errorf("newScorer(%q, %v) scored equal strings %v, %v; want 1", tc.algo, tc.costs, sim, err)
		}
	}

	// Editex on default costs: substituting "c" with "h" is a full mismatch,
	// so the distance is 2 out of a worst case of 6.
	scorer, _, err := newScorer(algoEditex, nil, "QWERTY", dist.Euclidean, false)
	if err != nil {
		t.Fatal("newScorer failed:", err)
	}
	if sim, err := scorer("cat", "hat"); err != nil || math.Abs(sim-2.0/3) > 1e-9 {
		t.Errorf(`scorer("cat", "hat") = %v, %v; want %v`, sim, err, 2.0/3)
	}
}

func TestNewScorer_Errors(t *testing.T) {
	for _, tc := range []struct {
		algo  string
		costs []float64
	}{
		{algoEditex, []float64{1, 2}},      // wrong count
		{algoEditex, []float64{0, 1.5, 2}}, // fractional cost
		{algoLev, []float64{1}},
		{algoMRA, []float64{1, 1, 1}}, // mra has no costs
		{algoTypo, []float64{1, 1, 0.5}},
		{"soundex", nil},
	} {
		if _, _, err := newScorer(tc.algo, tc.costs, "QWERTY", dist.Euclidean, false); err == nil {
			t.Errorf("newScorer(%q, %v) unexpectedly succeeded", tc.algo, tc.costs)
		}
	}
}

func TestFlags(t *testing.T) {
	ef := enumFlag{val: "a", allowed: []string{"a", "b"}}
	if err := ef.Set("b"); err != nil || ef.val != "b" {
		t.Errorf(`Set("b") = %v (val %q); want success`, err, ef.val)
	}
	if err := ef.Set("c"); err == nil {
		t.Error(`Set("c") unexpectedly succeeded`)
	}

	var ff floatsFlag
	for _, v := range []string{"1", "0.5"} {
		if err := ff.Set(v); err != nil {
			t.Errorf("Set(%q) failed: %v", v, err)
		}
	}
	if len(ff) != 2 || ff[0] != 1 || ff[1] != 0.5 {
		t.Errorf("floatsFlag is %v; want [1 0.5]", ff)
	}
	if err := ff.Set("bogus"); err == nil {
		t.Error(`Set("bogus") unexpectedly succeeded`)
	}
}
