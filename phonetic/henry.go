// Copyright 2025 Abydos Authors.
// All rights reserved.

package phonetic

import (
	"strings"

	"github.com/fossabot/abydos/strutil"
)

const (
	henryCons = "BCDFGHJKLMNPQRSTVWXZ"
	henryVows = "AEIOUY"
)

func isHenryCons(c byte) bool  { return c != 0 && strings.IndexByte(henryCons, c) >= 0 }
func isHenryVowel(c byte) bool { return c != 0 && strings.IndexByte(henryVows, c) >= 0 }

// charAt returns s[i], or 0 when i is out of range.
func charAt(s string, i int) byte {
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i]
}

var henryDiph = map[string]string{
	"AI": "E", "AY": "E", "EI": "E",
	"AU": "O", "OI": "O", "OU": "O",
	"EU": "U",
}

// HenryEarly returns the early version of the Henry code for a word,
// truncated to three characters (Légaré 1972; the later 1976 revision
// differs).
func HenryEarly(word string) string {
	var b strings.Builder
	for _, r := range strutil.Decompose(strutil.Upper(word)) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	word = b.String()
	if word == "" {
		return ""
	}

	// Rule I: normalize a leading vowel or diphthong.
	if isHenryVowel(word[0]) {
		c1, c2 := charAt(word, 1), charAt(word, 2)
		diph, hasDiph := "", false
		if len(word) >= 2 {
			diph, hasDiph = henryDiph[word[:2]]
		}
		if (isHenryCons(c1) && c1 != 'M' && c1 != 'N' && isHenryCons(c2)) ||
			(isHenryCons(c1) && !isHenryCons(c2)) {
			if word[0] == 'Y' {
				word = "I" + word[1:]
			}
		} else if (c1 == 'M' || c1 == 'N') && isHenryCons(c2) {
			if word[0] == 'E' {
				word = "A" + word[1:]
			} else if word[0] == 'I' || word[0] == 'U' || word[0] == 'Y' {
				word = "E" + word[1:]
			}
		} else if hasDiph {
			word = diph + word[2:]
		} else if isHenryVowel(c1) && word[0] == 'Y' {
			word = "I" + word[1:]
		}
	}

	// Rule II: code the word left to right.
	var code []byte
	skip := 0
	for pos := 0; pos < len(word); pos++ {
		ch := word[pos]
		nx := charAt(word, pos+1)
		prev := charAt(word, pos-1)
		two := ""
		if pos+2 <= len(word) {
			two = word[pos : pos+2]
		}
		switch {
		case skip > 0:
			skip--
		case isHenryVowel(ch):
			code = append(code, ch)
		case ch == nx:
			skip = 1
			code = append(code, ch)
		case two == "CQ" || two == "DT" || two == "SC":
			// silent pairs
		case ch == 'W':
			code = append(code, 'V')
		case ch == 'X' || ch == 'Z':
			code = append(code, 'S')
		case ch == 'C':
			switch {
			case nx == 'A' || nx == 'O' || nx == 'U' || nx == 'L' || nx == 'R':
				code = append(code, 'K')
			case nx == 'E' || nx == 'I' || nx == 'Y':
				code = append(code, 'S')
			case nx == 'H':
				if isHenryVowel(charAt(word, pos+2)) {
					code = append(code, 'C')
				} else { // CHR, CHL, etc.
					code = append(code, 'K')
				}
			default:
				code = append(code, 'C')
			}
		case ch == 'G':
			switch {
			case nx == 'A' || nx == 'O' || nx == 'U' || nx == 'L' || nx == 'R':
				code = append(code, 'G')
			case nx == 'E' || nx == 'I' || nx == 'Y':
				code = append(code, 'J')
			case nx == 'N':
				code = append(code, 'N')
			}
		case ch == 'P':
			if nx != 'H' {
				code = append(code, 'P')
			} else {
				code = append(code, 'F')
			}
		case ch == 'Q':
			if three := word[pos+1:]; strings.HasPrefix(three, "UE") ||
				strings.HasPrefix(three, "UI") || strings.HasPrefix(three, "UY") {
				code = append(code, 'G')
			} else { // QUA, QUO, etc.
				code = append(code, 'K')
			}
		case ch == 'S':
			rest := word[pos:]
			switch {
			case strings.HasPrefix(rest, "SAINTE"):
				code = append(code, 'X')
				skip = 5
			case strings.HasPrefix(rest, "SAINT"):
				code = append(code, 'X')
				skip = 4
			case strings.HasPrefix(rest, "STE"):
				code = append(code, 'X')
				skip = 2
			case strings.HasPrefix(rest, "ST"):
				code = append(code, 'X')
				skip = 1
			case isHenryCons(nx):
				// dropped
			default:
				code = append(code, 'S')
			}
		case ch == 'H' && isHenryCons(prev):
		case isHenryCons(ch) && ch != 'L' && ch != 'R' &&
			isHenryCons(nx) && nx != 'L' && nx != 'R':
		case ch == 'L' && (nx == 'M' || nx == 'N'):
		case (ch == 'M' || ch == 'N') && isHenryVowel(prev) && isHenryCons(nx):
		default:
			code = append(code, ch)
		}
	}

	// Simplify the ending.
	c := string(code)
	switch {
	case strings.HasSuffix(c, "AULT") || strings.HasSuffix(c, "EULT") ||
		strings.HasSuffix(c, "OULT"):
		c = c[:len(c)-2]
	case len(c) >= 2 && c[len(c)-2] == 'R' && isHenryCons(c[len(c)-1]):
		c = c[:len(c)-1]
	case len(c) >= 2 && isHenryVowel(c[len(c)-2]) &&
		strings.IndexByte("DMNST", c[len(c)-1]) >= 0:
		c = c[:len(c)-1]
	case strings.HasSuffix(c, "ER"):
		c = c[:len(c)-1]
	}

	if len(c) > 1 {
		var out strings.Builder
		out.WriteByte(c[0])
		for i := 1; i < len(c); i++ {
			if !isHenryVowel(c[i]) {
				out.WriteByte(c[i])
			}
		}
		c = out.String()
	}

	if len(c) > 3 {
		c = c[:3]
	}
	return c
}
