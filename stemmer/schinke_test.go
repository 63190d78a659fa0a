// Copyright 2025 Abydos Authors.
// All rights reserved.

package stemmer

import "testing"

func TestSchinke(t *testing.T) {
	for _, tc := range []struct {
		word string
		noun string
		verb string
	}{
		{"atque", "atque", "atque"},
		{"census", "cens", "censu"},
		{"virum", "uir", "uiru"},
		{"populusque", "popul", "populu"},
		{"senatus", "senat", "senatu"},
		// The enclitic -que is stripped unless the remainder is on the
		// keep list; "que" itself is returned as is.
		{"que", "que", "que"},
		// Altered verb suffixes: -iuntur and -erunt to -i, -bo to -bi,
		// -ero to -eri.
		{"audiuntur", "audiuntur", "audi"},
		{"monerunt", "moneru", "moni"},
		{"amabo", "amab", "amabi"},
		{"amaberis", "amaber", "amabi"},
		{"amavero", "amauer", "amaueri"},
		// Suffixes stay when fewer than two characters would remain.
		{"is", "is", "is"},
		{"Virum", "uir", "uiru"},
		{"", "", ""},
	} {
		noun, verb := Schinke(tc.word)
		if noun != tc.noun || verb != tc.verb {
			t.Errorf("Schinke(%q) = %q, %q; want %q, %q",
				tc.word, noun, verb, tc.noun, tc.verb)
		}
	}
}
