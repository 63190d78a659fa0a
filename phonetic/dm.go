// Copyright 2025 Abydos Authors.
// All rights reserved.

package phonetic

import (
	"sort"
	"strings"

	"github.com/fossabot/abydos/strutil"
)

// dmEntry is one Daitch-Mokotoff pattern with its code alternatives for
// the three positional classes: word-initial, before a vowel, elsewhere.
// "_" is a placeholder that survives until repeats have been collapsed.
type dmEntry struct {
	pat   string
	codes [3][]string
}

func dmE(pat, first, vowel, other string) dmEntry {
	return dmEntry{pat, [3][]string{{first}, {vowel}, {other}}}
}

// dmRules lists the patterns per first letter, longest-match first.
var dmRules = map[byte][]dmEntry{
	'A': {
		dmE("AI", "0", "1", "_"),
		dmE("AJ", "0", "1", "_"),
		dmE("AU", "0", "7", "_"),
		dmE("AY", "0", "1", "_"),
		dmE("A", "0", "_", "_"),
	},
	'B': {dmE("B", "7", "7", "7")},
	'C': {
		dmE("CHS", "5", "54", "54"),
		dmE("CSZ", "4", "4", "4"),
		dmE("CZS", "4", "4", "4"),
		{"CH", [3][]string{{"5", "4"}, {"5", "4"}, {"5", "4"}}},
		{"CK", [3][]string{{"5", "45"}, {"5", "45"}, {"5", "45"}}},
		dmE("CS", "4", "4", "4"),
		dmE("CZ", "4", "4", "4"),
		{"C", [3][]string{{"5", "4"}, {"5", "4"}, {"5", "4"}}},
	},
	'D': {
		dmE("DRS", "4", "4", "4"),
		dmE("DRZ", "4", "4", "4"),
		dmE("DSH", "4", "4", "4"),
		dmE("DSZ", "4", "4", "4"),
		dmE("DZH", "4", "4", "4"),
		dmE("DZS", "4", "4", "4"),
		dmE("DS", "4", "4", "4"),
		dmE("DT", "3", "3", "3"),
		dmE("DZ", "4", "4", "4"),
		dmE("D", "3", "3", "3"),
	},
	'E': {
		dmE("EI", "0", "1", "_"),
		dmE("EJ", "0", "1", "_"),
		dmE("EU", "1", "1", "_"),
		dmE("EY", "0", "1", "_"),
		dmE("E", "0", "_", "_"),
	},
	'F': {
		dmE("FB", "7", "7", "7"),
		dmE("F", "7", "7", "7"),
	},
	'G': {dmE("G", "5", "5", "5")},
	'H': {dmE("H", "5", "5", "_")},
	'I': {
		dmE("IA", "1", "_", "_"),
		dmE("IE", "1", "_", "_"),
		dmE("IO", "1", "_", "_"),
		dmE("IU", "1", "_", "_"),
		dmE("I", "0", "_", "_"),
	},
	'J': {{"J", [3][]string{{"1", "4"}, {"_", "4"}, {"_", "4"}}}},
	'K': {
		dmE("KH", "5", "5", "5"),
		dmE("KS", "5", "54", "54"),
		dmE("K", "5", "5", "5"),
	},
	'L': {dmE("L", "8", "8", "8")},
	'M': {
		dmE("MN", "6_6", "6_6", "6_6"),
		dmE("M", "6", "6", "6"),
	},
	'N': {
		dmE("NM", "6_6", "6_6", "6_6"),
		dmE("N", "6", "6", "6"),
	},
	'O': {
		dmE("OI", "0", "1", "_"),
		dmE("OJ", "0", "1", "_"),
		dmE("OY", "0", "1", "_"),
		dmE("O", "0", "_", "_"),
	},
	'P': {
		dmE("PF", "7", "7", "7"),
		dmE("PH", "7", "7", "7"),
		dmE("P", "7", "7", "7"),
	},
	'Q': {dmE("Q", "5", "5", "5")},
	'R': {
		{"RS", [3][]string{{"94", "4"}, {"94", "4"}, {"94", "4"}}},
		{"RZ", [3][]string{{"94", "4"}, {"94", "4"}, {"94", "4"}}},
		dmE("R", "9", "9", "9"),
	},
	'S': {
		dmE("SCHTSCH", "2", "4", "4"),
		dmE("SCHTCH", "2", "4", "4"),
		dmE("SCHTSH", "2", "4", "4"),
		dmE("SHTCH", "2", "4", "4"),
		dmE("SHTSH", "2", "4", "4"),
		dmE("STSCH", "2", "4", "4"),
		dmE("SCHD", "2", "43", "43"),
		dmE("SCHT", "2", "43", "43"),
		dmE("SHCH", "2", "4", "4"),
		dmE("STCH", "2", "4", "4"),
		dmE("STRS", "2", "4", "4"),
		dmE("STRZ", "2", "4", "4"),
		dmE("STSH", "2", "4", "4"),
		dmE("SZCS", "2", "4", "4"),
		dmE("SZCZ", "2", "4", "4"),
		dmE("SCH", "4", "4", "4"),
		dmE("SHD", "2", "43", "43"),
		dmE("SHT", "2", "43", "43"),
		dmE("SZD", "2", "43", "43"),
		dmE("SZT", "2", "43", "43"),
		dmE("SC", "2", "4", "4"),
		dmE("SD", "2", "43", "43"),
		dmE("SH", "4", "4", "4"),
		dmE("ST", "2", "43", "43"),
		dmE("SZ", "4", "4", "4"),
		dmE("S", "4", "4", "4"),
	},
	'T': {
		dmE("TTSCH", "4", "4", "4"),
		dmE("TSCH", "4", "4", "4"),
		dmE("TTCH", "4", "4", "4"),
		dmE("TTSZ", "4", "4", "4"),
		dmE("TCH", "4", "4", "4"),
		dmE("THS", "4", "4", "4"),
		dmE("TRS", "4", "4", "4"),
		dmE("TRZ", "4", "4", "4"),
		dmE("TSH", "4", "4", "4"),
		dmE("TSZ", "4", "4", "4"),
		dmE("TTS", "4", "4", "4"),
		dmE("TTZ", "4", "4", "4"),
		dmE("TZS", "4", "4", "4"),
		dmE("TC", "4", "4", "4"),
		dmE("TH", "3", "3", "3"),
		dmE("TS", "4", "4", "4"),
		dmE("TZ", "4", "4", "4"),
		dmE("T", "3", "3", "3"),
	},
	'U': {
		dmE("UE", "0", "_", "_"),
		dmE("UI", "0", "1", "_"),
		dmE("UJ", "0", "1", "_"),
		dmE("UY", "0", "1", "_"),
		dmE("U", "0", "_", "_"),
	},
	'V': {dmE("V", "7", "7", "7")},
	'W': {dmE("W", "7", "7", "7")},
	'X': {dmE("X", "5", "54", "54")},
	'Y': {dmE("Y", "1", "_", "_")},
	'Z': {
		dmE("ZHDZH", "2", "4", "4"),
		dmE("ZDZH", "2", "4", "4"),
		dmE("ZSCH", "4", "4", "4"),
		dmE("ZDZ", "2", "4", "4"),
		dmE("ZHD", "2", "43", "43"),
		dmE("ZSH", "4", "4", "4"),
		dmE("ZD", "2", "43", "43"),
		dmE("ZH", "4", "4", "4"),
		dmE("ZS", "4", "4", "4"),
		dmE("Z", "4", "4", "4"),
	},
}

func dmVowel(c byte) bool {
	switch c {
	case 'A', 'E', 'I', 'J', 'O', 'U', 'Y':
		return true
	}
	return false
}

// DaitchMokotoff returns the Daitch-Mokotoff Soundex codes for word as a
// sorted, deduplicated list of six digit codes. Patterns whose sound is
// ambiguous ("CH", "CK", "C", "J", "RS", "RZ") fork the code list, so a
// word can have several codes.
func DaitchMokotoff(word string) []string {
	var b strings.Builder
	decomposed := strings.ReplaceAll(strutil.Decompose(strutil.Upper(word)), "ß", "SS")
	for _, r := range decomposed {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	word = b.String()
	if word == "" {
		return []string{"000000"}
	}

	codes := []string{""}
	for pos := 0; pos < len(word); {
		for _, e := range dmRules[word[pos]] {
			if !strings.HasPrefix(word[pos:], e.pat) {
				continue
			}
			var variant int
			switch {
			case pos == 0:
				variant = 0
			case pos+len(e.pat) < len(word) && dmVowel(word[pos+len(e.pat)]):
				variant = 1
			default:
				variant = 2
			}
			alts := e.codes[variant]
			if len(alts) == 1 {
				for i := range codes {
					codes[i] += alts[0]
				}
			} else {
				forked := make([]string, 0, 2*len(codes))
				for _, a := range alts {
					for _, c := range codes {
						forked = append(forked, c+a)
					}
				}
				codes = forked
			}
			pos += len(e.pat)
			break
		}
	}

	// Collapse repeats before dropping placeholders: "6_6" keeps both
	// sixes, a doubled code letter does not.
	out := make([]string, 0, len(codes))
	seen := make(map[string]bool)
	for _, c := range codes {
		c = strings.ReplaceAll(strutil.Squeeze(c), "_", "")
		if len(c) > 6 {
			c = c[:6]
		} else {
			c += strings.Repeat("0", 6-len(c))
		}
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	sort.Strings(out)
	return out
}
