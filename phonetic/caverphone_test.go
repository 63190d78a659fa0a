// Copyright 2025 Abydos Authors.
// All rights reserved.

package phonetic

import "testing"

func TestCaverphone(t *testing.T) {
	for _, tc := range []struct {
		word string
		want string
	}{
		{"Christopher", "KRSTFA1111"},
		{"Niall", "NA11111111"},
		{"Smith", "SMT1111111"},
		{"Schmidt", "SKMT111111"},
		{"smith", "SMT1111111"},
		{"", "1111111111"},
	} {
		if got := Caverphone(tc.word); got != tc.want {
			t.Errorf("Caverphone(%q) = %q; want %q", tc.word, got, tc.want)
		}
	}
}

func TestCaverphoneV1(t *testing.T) {
	for _, tc := range []struct {
		word string
		want string
	}{
		{"Christopher", "KRSTF1"},
		{"Niall", "N11111"},
		{"Smith", "SMT111"},
		{"Schmidt", "SKMT11"},
		{"", "111111"},
	} {
		if got := CaverphoneV1(tc.word); got != tc.want {
			t.Errorf("CaverphoneV1(%q) = %q; want %q", tc.word, got, tc.want)
		}
	}
}
