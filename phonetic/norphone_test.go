// Copyright 2025 Abydos Authors.
// All rights reserved.

package phonetic

import "testing"

func TestNorphone(t *testing.T) {
	for _, tc := range []struct {
		name string
		want string
	}{
		{"Hansen", "HNSN"},
		{"Larsen", "LRSN"},
		{"Aagaard", "ÅKRT"},
		{"Braaten", "BRTN"},
		{"Sandvik", "SNVK"},
		{"Skyrud", "XR"},
		{"hansen", "HNSN"},
		{"", ""},
	} {
		if got := Norphone(tc.name); got != tc.want {
			t.Errorf("Norphone(%q) = %q; want %q", tc.name, got, tc.want)
		}
	}
}
