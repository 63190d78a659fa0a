// Copyright 2025 Abydos Authors.
// All rights reserved.

package phonetic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDaitchMokotoff(t *testing.T) {
	for _, tc := range []struct {
		word string
		want []string
	}{
		{"Christopher", []string{"494379", "594379"}},
		{"Niall", []string{"680000"}},
		{"Smith", []string{"463000"}},
		{"Schmidt", []string{"463000"}},
		{"schmidt", []string{"463000"}},
		{"", []string{"000000"}},
	} {
		got := DaitchMokotoff(tc.word)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("DaitchMokotoff(%q) returned wrong codes (-want +got):\n%s", tc.word, diff)
		}
	}
}
