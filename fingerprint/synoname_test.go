// Copyright 2025 Abydos Authors.
// All rights reserved.

package fingerprint

import "testing"

func TestSynonameToolcode(t *testing.T) {
	for _, tc := range []struct {
		lname, fname, qual            string
		normalize                     int
		wantLast, wantFirst, wantCode string
	}{
		{"hat", "", "", 0, "hat", "", "0000000003$$h"},
		{"niall", "", "", 0, "niall", "", "0000000005$$n"},
		{"colin", "", "", 0, "colin", "", "0000000005$$c"},
		{"atcg", "", "", 0, "atcg", "", "0000000004$$a"},
		{"entreatment", "", "", 0, "entreatment", "", "0000000011$$e"},
		{"Ste.-Marie", "Count John II", "", 2,
			"ste.-marie ii", "count john", "0200491310$015b049a127c$smcji"},
		{"Michelangelo IV", "", "Workshop of", 0,
			"michelangelo iv", "", "3000550015$055b$mi"},
		// Comma flip moves everything after the comma to the first name.
		{"Smith, John", "", "", 1, "smith", "john ", "0100000505$$sj"},
		// Generation markers are detected both inline and, with full
		// normalization, moved from the first name to the last.
		{"Brueghel the Elder", "", "", 0,
			"brueghel the elder", "", "0010000018$133b$bte"},
		{"Brueghel", "The Elder", "", 2,
			"brueghel the elder", "", "0010000018$133a$bte"},
	} {
		last, first, code := SynonameToolcode(tc.lname, tc.fname, tc.qual, tc.normalize)
		if last != tc.wantLast || first != tc.wantFirst || code != tc.wantCode {
			t.Errorf("SynonameToolcode(%q, %q, %q, %d) = %q, %q, %q; want %q, %q, %q",
				tc.lname, tc.fname, tc.qual, tc.normalize,
				last, first, code, tc.wantLast, tc.wantFirst, tc.wantCode)
		}
	}
}
