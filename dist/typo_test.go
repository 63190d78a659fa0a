// Copyright 2025 Abydos Authors.
// All rights reserved.

package dist

import (
	"errors"
	"math"
	"testing"
)

func TestTypoDist(t *testing.T) {
	for _, tc := range []struct {
		opts     []TypoOption
		src, tar string
		want     float64
	}{
		{nil, "", "", 0},
		{nil, "", "abc", 3},
		{nil, "abc", "", 3},
		{nil, "cat", "cat", 0},
		{nil, "cat", "hat", 1.5811388},
		{nil, "Niall", "Neil", 2.8251407},
		{nil, "ATCG", "TAGC", 2.5},
		{nil, "STEM", "STEAM", 1},
		{nil, "colour", "color", 1},
		{nil, "a", "A", 0.25},
		{[]TypoOption{TypoMetric(Manhattan)}, "cat", "hat", 2},
		{[]TypoOption{TypoMetric(Manhattan)}, "Niall", "Neil", 3},
		{[]TypoOption{TypoMetric(Manhattan)}, "ATCG", "TAGC", 2.5},
		{[]TypoOption{TypoMetric(LogManhattan)}, "cat", "hat", 0.804719},
		{[]TypoOption{TypoMetric(LogManhattan)}, "Niall", "Neil", 2.2424533},
		{[]TypoOption{TypoMetric(LogManhattan)}, "ATCG", "TAGC", 2.3465736},
		{[]TypoOption{TypoMetric(LogEuclidean)}, "cat", "hat", 0.7130312},
		{[]TypoOption{TypoLayout("Dvorak")}, "cat", "hat", 0.7071068},
		{[]TypoOption{TypoLayout("AZERTY")}, "cat", "hat", 1.5811388},
		{[]TypoOption{TypoLayout("QWERTZ")}, "cat", "hat", 1.5811388},
		{[]TypoOption{TypoCosts(2, 2, 1, 0.5)}, "", "abc", 6},
		{[]TypoOption{TypoCosts(2, 2, 1, 0.5)}, "cat", "hat", 3.1622777},
		// Runes missing from the layout are only an error if the matrix
		// actually prices them against a differing rune.
		{nil, "€", "€€", 1},
		{nil, "€a€", "€a€", 0},
	} {
		ty, err := NewTypo(tc.opts...)
		if err != nil {
			t.Fatalf("NewTypo() failed: %v", err)
		}
		got, err := ty.Dist(tc.src, tc.tar)
		if err != nil {
			t.Errorf("Dist(%q, %q) failed: %v", tc.src, tc.tar, err)
		} else if math.Abs(got-tc.want) > 1e-6 {
			t.Errorf("Dist(%q, %q) = %v; want %v", tc.src, tc.tar, got, tc.want)
		}
	}
}

func TestTypoDist_UnsupportedRune(t *testing.T) {
	ty, err := NewTypo()
	if err != nil {
		t.Fatalf("NewTypo() failed: %v", err)
	}
	if _, err := ty.Dist("€a", "xa"); err == nil {
		t.Error("Dist(\"€a\", \"xa\") unexpectedly succeeded")
	} else {
		var rerr *UnsupportedRuneError
		if !errors.As(err, &rerr) {
			t.Errorf("Dist(\"€a\", \"xa\") returned %T (%v); want *UnsupportedRuneError", err, err)
		} else if rerr.Rune != '€' || rerr.Layout != "QWERTY" {
			t.Errorf("Dist(\"€a\", \"xa\") flagged %q on %v; want '€' on QWERTY", rerr.Rune, rerr.Layout)
		}
	}

	// The unshifted QWERTZ table holds " ü" in a single cell, so the rune
	// 'ü' by itself is not on the layout.
	qz, err := NewTypo(TypoLayout("QWERTZ"))
	if err != nil {
		t.Fatalf("NewTypo() failed: %v", err)
	}
	if _, err := qz.Dist("über", "ober"); err == nil {
		t.Error("Dist(\"über\", \"ober\") unexpectedly succeeded")
	}
	if _, err := qz.Dist("Über", "Ober"); err != nil {
		t.Errorf("Dist(\"Über\", \"Ober\") failed: %v", err)
	}
}

func TestTypoNormDist(t *testing.T) {
	ty, err := NewTypo()
	if err != nil {
		t.Fatalf("NewTypo() failed: %v", err)
	}
	for _, tc := range []struct {
		src, tar string
		want     float64
	}{
		{"", "", 0},
		{"same", "same", 0},
		{"cat", "hat", 0.527046283086},
		{"Niall", "Neil", 0.565028142929},
		{"ATCG", "TAGC", 0.625},
	} {
		got, err := ty.NormDist(tc.src, tc.tar)
		if err != nil {
			t.Errorf("NormDist(%q, %q) failed: %v", tc.src, tc.tar, err)
		} else if math.Abs(got-tc.want) > 1e-6 {
			t.Errorf("NormDist(%q, %q) = %v; want %v", tc.src, tc.tar, got, tc.want)
		}
	}

	got, err := ty.Sim("ATCG", "TAGC")
	if err != nil {
		t.Fatalf("Sim(\"ATCG\", \"TAGC\") failed: %v", err)
	}
	if math.Abs(got-0.375) > 1e-6 {
		t.Errorf("Sim(\"ATCG\", \"TAGC\") = %v; want 0.375", got)
	}
}

func TestTypoConfig(t *testing.T) {
	var cerr *ConfigError
	if _, err := NewTypo(TypoLayout("Colemak")); !errors.As(err, &cerr) {
		t.Errorf("NewTypo(TypoLayout(\"Colemak\")) = %v; want *ConfigError", err)
	}
	if _, err := NewTypo(TypoMetric("chebyshev")); !errors.As(err, &cerr) {
		t.Errorf("NewTypo(TypoMetric(\"chebyshev\")) = %v; want *ConfigError", err)
	}
	if _, err := NewTypo(TypoCosts(-1, 1, 0.5, 0.5)); !errors.As(err, &cerr) {
		t.Errorf("NewTypo(TypoCosts(-1, ...)) = %v; want *ConfigError", err)
	}
	if _, err := NewTypo(TypoLayout("Dvorak"), TypoMetric(LogEuclidean)); err != nil {
		t.Errorf("NewTypo(TypoLayout(\"Dvorak\"), ...) failed: %v", err)
	}
}

func TestLayoutNames(t *testing.T) {
	want := []string{"AZERTY", "Dvorak", "QWERTY", "QWERTZ"}
	got := LayoutNames()
	if len(got) != len(want) {
		t.Fatalf("LayoutNames() = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("LayoutNames()[%d] = %q; want %q", i, got[i], want[i])
		}
	}
}
