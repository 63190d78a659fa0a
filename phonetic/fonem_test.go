// Copyright 2025 Abydos Authors.
// All rights reserved.

package phonetic

import "testing"

func TestFonem(t *testing.T) {
	for _, tc := range []struct {
		word string
		want string
	}{
		{"Marchand", "MARCHEN"},
		{"Beaulieu", "BOLIEU"},
		{"Beaumont", "BOMON"},
		{"Legrand", "LEGREN"},
		{"Pelletier", "PELETIER"},
		{"marchand", "MARCHEN"},
		{"", ""},
	} {
		if got := Fonem(tc.word); got != tc.want {
			t.Errorf("Fonem(%q) = %q; want %q", tc.word, got, tc.want)
		}
	}
}
