// Copyright 2025 Abydos Authors.
// All rights reserved.

package phonetic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSfinxBis(t *testing.T) {
	for _, tc := range []struct {
		name string
		want []string
	}{
		{"Christopher", []string{"K68376"}},
		{"Niall", []string{"N4"}},
		{"Smith", []string{"S53"}},
		{"Schmidt", []string{"S53"}},
		{"Johansson", []string{"J585"}},
		{"Sjöberg", []string{"#162"}},
		// Nobility particles are stripped before coding.
		{"von Schmidt", []string{"S53"}},
		{"de la Motte", []string{"M3"}},
		// Hyphens and spaces split the name into separately coded tokens.
		{"Johansson Sjöberg", []string{"J585", "#162"}},
		{"Smith-Schmidt", []string{"S53", "S53"}},
		{"", []string{""}},
	} {
		got := SfinxBis(tc.name)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("SfinxBis(%q) returned wrong codes (-want +got):\n%s", tc.name, diff)
		}
	}
}
