// Copyright 2025 Abydos Authors.
// All rights reserved.

package phonetic

import (
	"strings"

	"github.com/fossabot/abydos/strutil"
)

// Nobility particles stripped from names, each padded with spaces so only
// whole words match.
var sfinxbisParticles = []string{
	" DE LA ", " DE LAS ", " DE LOS ", " VAN DE ", " VAN DEN ",
	" VAN DER ", " VON DEM ", " VON DER ",
	" AF ", " AV ", " DA ", " DE ", " DEL ", " DEN ", " DES ",
	" DI ", " DO ", " DON ", " DOS ", " DU ", " E ", " IN ",
	" LA ", " LE ", " MAC ", " MC ", " VAN ", " VON ", " Y ",
	" S:T ",
}

const (
	sfinxbisHard = "AOUÅ"
	sfinxbisSoft = "EIYÄÖ"
	sfinxbisCons = "BCDFGHJKLMNPQRSTVWXZ"
)

var sfinxbisSubstitutions = strings.NewReplacer(
	"W", "V", "Z", "S",
	"À", "A", "Á", "A", "Â", "A", "Ã", "A",
	"Æ", "Ä", "Ç", "C",
	"È", "E", "É", "E", "Ê", "E", "Ë", "E",
	"Ì", "I", "Í", "I", "Î", "I", "Ï", "I",
	"Ñ", "N",
	"Ò", "O", "Ó", "O", "Ô", "O", "Õ", "O",
	"Ø", "Ö",
	"Ù", "U", "Ú", "U", "Û", "U",
	"Ü", "Y", "Ý", "Y",
)

var sfinxbisDigits = map[rune]rune{
	'B': '1', 'C': '2', 'D': '3', 'F': '7', 'G': '2', 'H': '9', 'J': '2',
	'K': '2', 'L': '4', 'M': '5', 'N': '5', 'P': '1', 'Q': '2', 'R': '6',
	'S': '8', 'T': '3', 'V': '7', 'Z': '8',
	'A': '9', 'O': '9', 'U': '9', 'Å': '9', 'E': '9', 'I': '9', 'Y': '9',
	'Ä': '9', 'Ö': '9',
}

// SfinxBis returns the SfinxBis codes for a name, one per token after
// nobility particles are stripped. SfinxBis is a Soundex relative for
// Swedish names (Axelsson and Sjöö 2009).
func SfinxBis(name string) []string {
	word := strings.ReplaceAll(strutil.Compose(strutil.Upper(name)), "ß", "SS")
	word = strings.ReplaceAll(word, "-", " ")

	for _, p := range sfinxbisParticles {
		for strings.Contains(word, p) {
			word = strings.ReplaceAll(word, p, " ")
		}
		if strings.HasPrefix(word, p[1:]) {
			word = word[len(p)-1:]
		}
	}

	tokens := strings.Fields(word)
	if len(tokens) == 0 {
		return []string{""}
	}

	codes := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		tok = strutil.Squeeze(tok)
		tok = sfinxbisSwedishize(tok)
		var keep strings.Builder
		for _, r := range tok {
			if (r >= 'A' && r <= 'Z') || r == 'Ä' || r == 'Å' || r == 'Ö' {
				keep.WriteRune(r)
			}
		}
		r := []rune(sfinxbisFirstSound(keep.String()))
		if len(r) == 0 {
			codes = append(codes, "")
			continue
		}

		rest := strings.ReplaceAll(string(r[1:]), "DT", "T")
		rest = strings.ReplaceAll(rest, "X", "KS")
		for _, v := range sfinxbisSoft {
			rest = strings.ReplaceAll(rest, "C"+string(v), "8"+string(v))
		}
		rest = strings.Map(func(c rune) rune {
			if d, ok := sfinxbisDigits[c]; ok {
				return d
			}
			return c
		}, rest)
		rest = strings.ReplaceAll(strutil.Squeeze(rest), "9", "")
		codes = append(codes, string(r[0])+rest)
	}
	return codes
}

// sfinxbisSwedishize rewrites foreign spellings into Swedish ones
// ("försvenskning").
func sfinxbisSwedishize(word string) string {
	word = strings.ReplaceAll(word, "STIERN", "STJÄRN")
	word = strings.ReplaceAll(word, "HIE", "HJ")
	word = strings.ReplaceAll(word, "SIÖ", "SJÖ")
	word = strings.ReplaceAll(word, "SCH", "SH")
	word = strings.ReplaceAll(word, "QU", "KV")
	word = strings.ReplaceAll(word, "IO", "JO")
	word = strings.ReplaceAll(word, "PH", "F")

	for _, v := range sfinxbisHard + sfinxbisSoft {
		word = strings.ReplaceAll(word, string(v)+"Ü", string(v)+"J")
		word = strings.ReplaceAll(word, string(v)+"Y", string(v)+"J")
		word = strings.ReplaceAll(word, string(v)+"I", string(v)+"J")
	}

	if strings.Contains(word, "H") {
		for _, c := range sfinxbisCons {
			word = strings.ReplaceAll(word, "H"+string(c), string(c))
		}
	}

	word = sfinxbisSubstitutions.Replace(word)

	word = strings.ReplaceAll(word, "Ð", "ETH")
	word = strings.ReplaceAll(word, "Þ", "TH")
	word = strings.ReplaceAll(word, "ß", "SS")
	return word
}

// sfinxbisFirstSound codes the leading sound of a token: '$' for a vowel,
// '#' for sje and tje sounds, otherwise a normalized consonant.
func sfinxbisFirstSound(word string) string {
	r := []rune(word)
	at := func(i int) string {
		if i < len(r) {
			return string(r[i])
		}
		return ""
	}
	isSoft := func(s string) bool { return s != "" && strings.Contains(sfinxbisSoft, s) }
	isHard := func(s string) bool { return s != "" && strings.Contains(sfinxbisHard, s) }
	isCons := func(s string) bool { return s != "" && strings.Contains(sfinxbisCons, s) }
	first, second := at(0), at(1)
	two := first + second
	three := two + at(2)

	switch {
	case isSoft(first) || isHard(first):
		return "$" + string(r[1:])
	case two == "DJ" || two == "GJ" || two == "HJ" || two == "LJ":
		return "J" + string(r[2:])
	case first == "G" && isSoft(second):
		return "J" + string(r[1:])
	case first == "Q":
		return "K" + string(r[1:])
	case two == "CH" && (isSoft(at(2)) || isHard(at(2))):
		return "#" + string(r[2:])
	case first == "C" && isHard(second):
		return "K" + string(r[1:])
	case first == "C" && isCons(second):
		return "K" + string(r[1:])
	case first == "X":
		return "S" + string(r[1:])
	case first == "C" && isSoft(second):
		return "S" + string(r[1:])
	case three == "SKJ" || three == "STJ" || three == "SCH":
		return "#" + string(r[3:])
	case two == "SH" || two == "KJ" || two == "TJ" || two == "SJ":
		return "#" + string(r[2:])
	case two == "SK" && isSoft(at(2)):
		return "#" + string(r[2:])
	case first == "K" && isSoft(second):
		return "#" + string(r[1:])
	}
	return word
}
