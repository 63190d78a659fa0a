// Copyright 2025 Abydos Authors.
// All rights reserved.

package phonetic

import (
	"strings"

	"github.com/fossabot/abydos/strutil"
)

const norphoneVowels = "AEIOUYÅÆØÄÖ"

// Ordered longest-first so e.g. SKEI wins over SKJ and KJ.
var norphoneGroups = []struct {
	length int
	repl   map[string]string
}{
	{4, map[string]string{"SKEI": "X"}},
	{3, map[string]string{"SKJ": "X", "KEI": "X"}},
	{2, map[string]string{
		"CH": "K", "CK": "K", "GJ": "J", "GH": "K", "HG": "K",
		"HJ": "J", "HL": "L", "HR": "R", "KJ": "X", "KI": "X",
		"LD": "L", "ND": "N", "PH": "F", "TH": "T", "SJ": "X",
	}},
	{1, map[string]string{"W": "V", "X": "KS", "Z": "S", "D": "T", "G": "K"}},
}

// Norphone returns the Norphone code for a name. The algorithm is Lars
// Marius Garshol's phonetic key for Norwegian, extended with Swedish
// vowels and the rules his reference implementation leaves unimplemented.
func Norphone(name string) string {
	r := []rune(strutil.Upper(name))
	pre := func(n int) string {
		if n > len(r) {
			n = len(r)
		}
		return string(r[:n])
	}
	isVowel := func(c rune) bool { return strings.ContainsRune(norphoneVowels, c) }

	var code strings.Builder
	skip := 0
	switch {
	case pre(2) == "AA":
		code.WriteRune('Å')
		skip = 2
	case pre(2) == "GI":
		code.WriteRune('J')
		skip = 2
	case pre(3) == "SKY":
		code.WriteRune('X')
		skip = 3
	case pre(2) == "EI":
		code.WriteRune('Æ')
		skip = 2
	case pre(2) == "KY":
		code.WriteRune('X')
		skip = 2
	case pre(1) == "C":
		code.WriteRune('K')
		skip = 1
	case pre(1) == "Ä":
		code.WriteRune('Æ')
		skip = 1
	case pre(1) == "Ö":
		code.WriteRune('Ø')
		skip = 1
	}

	// Final D is hardened after T and silent after a vowel. Garshol's
	// implementation applies this only at the end of the word.
	if n := len(r); n >= 2 && r[n-2] == 'D' && r[n-1] == 'T' {
		r = append(r[:n-2], 'T')
	} else if n >= 2 && isVowel(r[n-2]) && r[n-1] == 'D' {
		r = r[:n-2]
	}

	for pos, c := range r {
		if skip > 0 {
			skip--
			continue
		}
		matched := false
		for _, g := range norphoneGroups {
			if pos+g.length > len(r) {
				continue
			}
			if repl, ok := g.repl[string(r[pos:pos+g.length])]; ok {
				code.WriteString(repl)
				skip = g.length - 1
				matched = true
				break
			}
		}
		if !matched && (pos == 0 || !isVowel(c)) {
			code.WriteRune(c)
		}
	}

	return strutil.Squeeze(code.String())
}
