// Copyright 2025 Abydos Authors.
// All rights reserved.

package mra

import (
	"math"
	"testing"
)

func TestEncode(t *testing.T) {
	for _, tc := range []struct{ name, want string }{
		{"", ""},
		{"Byrne", "BYRN"},
		{"Boern", "BRN"},
		{"Smith", "SMTH"},
		{"Smyth", "SMYTH"},
		{"Schmidt", "SCHMDT"},
		{"Catherine", "CTHRN"},
		{"Kathryn", "KTHRYN"},
		{"Christopher", "CHRPHR"},
		{"Niall", "NL"},
		{"cat", "CT"},
		{"aluminum", "ALMNM"},
		{"Catalan", "CTLN"},
		{"straße", "STRS"},
	} {
		if got := Encode(tc.name); got != tc.want {
			t.Errorf("Encode(%q) = %q; want %q", tc.name, got, tc.want)
		}
	}
}

func TestCompare(t *testing.T) {
	for _, tc := range []struct {
		src, tar string
		want     int
	}{
		{"", "", 6},
		{"cat", "cat", 6},
		{"a", "", 0},
		{"", "a", 0},
		{"cat", "hat", 5},
		{"Niall", "Neil", 6},
		{"aluminum", "Catalan", 0},
		{"ATCG", "TAGC", 5},
		{"Byrne", "Boern", 5},
		{"Smith", "Smyth", 5},
		{"Catherine", "Kathryn", 4},
	} {
		if got := Compare(tc.src, tc.tar); got != tc.want {
			t.Errorf("Compare(%q, %q) = %v; want %v", tc.src, tc.tar, got, tc.want)
		}
		if got := Compare(tc.tar, tc.src); got != tc.want {
			t.Errorf("Compare(%q, %q) = %v; want %v", tc.tar, tc.src, got, tc.want)
		}
	}
}

func TestSimDist(t *testing.T) {
	for _, tc := range []struct {
		src, tar string
		sim      float64
	}{
		{"cat", "hat", 5.0 / 6},
		{"Niall", "Neil", 1},
		{"aluminum", "Catalan", 0},
		{"ATCG", "TAGC", 5.0 / 6},
	} {
		if got := Sim(tc.src, tc.tar); math.Abs(got-tc.sim) > 1e-9 {
			t.Errorf("Sim(%q, %q) = %v; want %v", tc.src, tc.tar, got, tc.sim)
		}
		if got := Dist(tc.src, tc.tar); math.Abs(got-(1-tc.sim)) > 1e-9 {
			t.Errorf("Dist(%q, %q) = %v; want %v", tc.src, tc.tar, got, 1-tc.sim)
		}
	}
}
