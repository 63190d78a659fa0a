// Copyright 2025 Abydos Authors.
// All rights reserved.

// Package fingerprint builds compact keys that cluster variant
// spellings of a name.
package fingerprint

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Match positions for synonameTable entries, combined as a bitmask.
const (
	synEnd = 1 << iota
	synMiddle
	synBeginning
	synBeginningNoSpace
)

// synonameTable lists the words the Synoname toolcode treats specially.
// Entries are matched in order and reported by their index, so the order
// and numbering must not change.
var synonameTable = []struct {
	roman  bool
	match  string
	extra  string
	method int
}{
	{false, "NONE", "", 0},
	{false, "aine", "", 3},
	{false, "also erroneously", "", 4},
	{false, "also identified with the", "", 2},
	{false, "also identified with", "", 2},
	{false, "archbishop", "", 7},
	{false, "atelier", "", 7},
	{false, "baron", "", 7},
	{false, "cadet", "", 3},
	{false, "cardinal", "", 7},
	{false, "circle of", "", 5},
	{false, "circle", "", 5},
	{false, "class of", "", 5},
	{false, "conde de", "", 7},
	{false, "countess", "", 7},
	{false, "count", "", 7},
	{false, "d'", " d'", 15},
	{false, "dai", "", 15},
	{false, "dall'", " dall'", 15},
	{false, "dalla", "", 15},
	{false, "dalle", "", 15},
	{false, "dal", "", 15},
	{false, "da", "", 15},
	{false, "degli", "", 15},
	{false, "della", "", 15},
	{false, "del", "", 15},
	{false, "den", "", 15},
	{false, "der altere", "", 3},
	{false, "der jungere", "", 3},
	{false, "der", "", 15},
	{false, "de la", "", 15},
	{false, "des", "", 15},
	{false, "de'", " de'", 15},
	{false, "de", "", 15},
	{false, "di ser", "", 7},
	{false, "di", "", 15},
	{false, "dos", "", 15},
	{false, "du", "", 15},
	{false, "duke of", "", 7},
	{false, "earl of", "", 7},
	{false, "el", "", 15},
	{false, "fils", "", 3},
	{false, "florentine follower of", "", 5},
	{false, "follower of", "", 5},
	{false, "fra", "", 7},
	{false, "freiherr von", "", 7},
	{false, "giovane", "", 7},
	{false, "group", "", 5},
	{true, "iii", "", 3},
	{true, "ii", "", 3},
	{false, "il giovane", "", 7},
	{false, "il vecchio", "", 7},
	{false, "il", "", 15},
	{false, "in't", "", 7},
	{false, "in het", "", 7},
	{true, "iv", "", 3},
	{true, "ix", "", 3},
	{true, "i", "", 3},
	{false, "jr.", "", 3},
	{false, "jr", "", 3},
	{false, "juniore", "", 3},
	{false, "junior", "", 3},
	{false, "king of", "", 7},
	{false, "l'", " l'", 15},
	{false, "l'aine", "", 3},
	{false, "la", "", 15},
	{false, "le jeune", "", 3},
	{false, "le", "", 15},
	{false, "lo", "", 15},
	{false, "maestro", "", 7},
	{false, "maitre", "", 7},
	{false, "marchioness", "", 7},
	{false, "markgrafin von", "", 7},
	{false, "marquess", "", 7},
	{false, "marquis", "", 7},
	{false, "master of the", "", 7},
	{false, "master of", "", 7},
	{false, "master known as the", "", 7},
	{false, "master with the", "", 7},
	{false, "master with", "", 7},
	{false, "masters", "", 7},
	{false, "master", "", 7},
	{false, "meister", "", 7},
	{false, "met de", "", 7},
	{false, "met", "", 7},
	{false, "mlle.", "", 7},
	{false, "mlle", "", 7},
	{false, "monogrammist", "", 7},
	{false, "monsu", "", 7},
	{false, "nee", "", 2},
	{false, "of", "", 3},
	{false, "oncle", "", 3},
	{false, "op den", "", 15},
	{false, "op de", "", 15},
	{false, "or", "", 2},
	{false, "over den", "", 15},
	{false, "over de", "", 15},
	{false, "over", "", 7},
	{false, "p.re", "", 7},
	{false, "p.r.a.", "", 1},
	{false, "padre", "", 7},
	{false, "painter", "", 7},
	{false, "pere", "", 3},
	{false, "possibly identified with", "", 6},
	{false, "possibly", "", 6},
	{false, "pseudo", "", 15},
	{false, "r.a.", "", 1},
	{false, "reichsgraf von", "", 7},
	{false, "ritter von", "", 7},
	{false, "sainte-", " sainte-", 8},
	{false, "sainte", "", 7},
	{false, "saint-", " saint-", 8},
	{false, "saint", "", 7},
	{false, "santa", "", 15},
	{false, "sant'", " sant'", 15},
	{false, "san", "", 15},
	{false, "ser", "", 7},
	{false, "seniore", "", 3},
	{false, "senior", "", 3},
	{false, "sir", "", 5},
	{false, "sr.", "", 3},
	{false, "sr", "", 3},
	{false, "ss.", " ss.", 14},
	{false, "ss", "", 6},
	{false, "st-", " st-", 8},
	{false, "st.", " st.", 15},
	{false, "ste-", " ste-", 8},
	{false, "ste.", " ste.", 15},
	{false, "studio", "", 7},
	{false, "sub-group", "", 5},
	{false, "sultan of", "", 7},
	{false, "ten", "", 15},
	{false, "ter", "", 15},
	{false, "the elder", "", 3},
	{false, "the younger", "", 3},
	{false, "the", "", 7},
	{false, "tot", "", 15},
	{false, "unidentified", "", 1},
	{false, "van den", "", 15},
	{false, "van der", "", 15},
	{false, "van de", "", 15},
	{false, "vanden", "", 15},
	{false, "vander", "", 15},
	{false, "van", "", 15},
	{false, "vecchia", "", 7},
	{false, "vecchio", "", 7},
	{true, "viii", "", 3},
	{true, "vii", "", 3},
	{true, "vi", "", 3},
	{true, "v", "", 3},
	{false, "vom", "", 7},
	{false, "von", "", 15},
	{false, "workshop", "", 7},
	{true, "xiii", "", 3},
	{true, "xii", "", 3},
	{true, "xiv", "", 3},
	{true, "xix", "", 3},
	{true, "xi", "", 3},
	{true, "xviii", "", 3},
	{true, "xvii", "", 3},
	{true, "xvi", "", 3},
	{true, "xv", "", 3},
	{true, "xx", "", 3},
	{true, "x", "", 3},
	{false, "y", "", 7},
}

var synonameQual3 = map[string]bool{
	"adaptation after": true, "after": true, "assistant of": true,
	"assistants of": true, "circle of": true, "follower of": true,
	"imitator of": true, "in the style of": true, "manner of": true,
	"pupil of": true, "school of": true, "studio of": true,
	"style of": true, "workshop of": true,
}

var synonameQual2 = map[string]bool{
	"copy after": true, "copy after?": true, "copy of": true,
}

var synonameQual1 = map[string]bool{
	"ascribed to": true, "attributed to or copy after": true,
	"attributed to": true, "possibly": true,
}

// Generation markers checked in order. The matched marker is remembered
// so full normalization can move it from the first name to the last.
var synonameElder = []string{
	"the elder", " sr.", " sr", "senior", "der altere", "il vecchio",
	"l'aine", "p.re", "padre", "seniore", "vecchia", "vecchio",
}

var synonameYounger = []string{
	" jr.", " jr", "der jungere", "il giovane", "giovane", "juniore",
	"junior", "le jeune", "the younger",
}

const (
	synonamePunct    = `,-/:;"&'()!{|}?$%*+<=>[\]^_` + "`~"
	synonameStripped = `,/:;"&()!{|}?$%*+<=>[\]^_` + "`~"
	synonameRangeMax = 15
)

// SynonameToolcode builds the Getty Synoname toolcode for a name and
// returns the last name, first name, and code. normalize 0 leaves the
// names alone, 1 flips "last, first" commas, and 2 additionally moves
// generation markers and roman numerals from the first name to the last.
func SynonameToolcode(lname, fname, qual string, normalize int) (string, string, string) {
	lname = strings.ToLower(lname)
	fname = strings.ToLower(fname)
	qual = strings.ToLower(qual)

	fullName := lname + " " + fname

	qualCode := "0"
	switch {
	case synonameQual3[qual]:
		qualCode = "3"
	case synonameQual2[qual]:
		qualCode = "2"
	case synonameQual1[qual]:
		qualCode = "1"
	}

	punctCode := "0"
	if strings.Contains(fullName, ".") {
		punctCode = "2"
	} else if strings.ContainsAny(fullName, synonamePunct) {
		punctCode = "1"
	}

	genCode := "0"
	var elderYounger string
	for _, gen := range synonameElder {
		if strings.Contains(fullName, gen) {
			genCode = "1"
			elderYounger = gen
			break
		}
	}
	if elderYounger == "" {
		for _, gen := range synonameYounger {
			if strings.Contains(fullName, gen) {
				genCode = "2"
				elderYounger = gen
				break
			}
		}
	}

	// "last, first" becomes "last" and "first ..." when normalizing.
	if normalize > 0 {
		if comma := strings.IndexByte(lname, ','); comma != -1 {
			end := lname[comma+1:]
			for len(end) > 0 && (end[0] == ' ' || end[0] == ',') {
				end = end[1:]
			}
			fname = end + " " + fname
			lname = strings.TrimSpace(lname[:comma])
		}
	}

	if normalize == 2 && elderYounger != "" {
		if loc := strings.Index(fname, elderYounger); loc != -1 {
			lname = lname + " " + strings.TrimSpace(elderYounger)
			fname = strings.TrimSpace(strings.TrimSpace(fname[:loc]) +
				" " + fname[loc+len(elderYounger):])
		}
	}

	fnameLen := fmt.Sprintf("%02d", utf8.RuneCountInString(fname))
	lnameLen := fmt.Sprintf("%02d", utf8.RuneCountInString(lname))

	fullName = strings.Map(func(r rune) rune {
		if strings.ContainsRune(synonameStripped, r) {
			return -1
		}
		return r
	}, fullName)
	// Hyphens split words except in codes like "b-g".
	orig := []rune(fullName)
	split := []rune(fullName)
	for pos, r := range orig {
		if r != '-' {
			continue
		}
		if pos >= 1 && pos+2 <= len(orig) && string(orig[pos-1:pos+2]) == "b-g" {
			continue
		}
		split[pos] = ' '
	}
	fullName = string(split)

	var rangeCode string
	for _, w := range strings.Fields(fullName) {
		first, _ := utf8.DecodeRuneInString(w)
		if !strings.ContainsRune(rangeCode, first) {
			rangeCode += string(first)
		}
		if utf8.RuneCountInString(rangeCode) == synonameRangeMax {
			break
		}
	}

	hasInitial := func() bool {
		return strings.Contains(fname, "i.") ||
			strings.Contains(fname, "v.") ||
			strings.Contains(fname, "x.")
	}
	romanCheck := func(numeral string) {
		loc := strings.Index(fname, numeral)
		if fname == "" || loc == -1 {
			return
		}
		if end := loc + len(numeral); end < len(fname) && fname[end] != ' ' && fname[end] != ',' {
			return
		}
		lname = strings.TrimSpace(lname + " " + numeral)
		fname = strings.TrimSpace(strings.TrimSpace(fname[:loc]) +
			" " + strings.TrimLeft(fname[loc+len(numeral):], " ,"))
	}

	romanCode := "000"
	var specialsCode string
	for num, sp := range synonameTable {
		if sp.method&synEnd != 0 {
			ctx := " " + sp.match
			loc := strings.Index(fullName, ctx)
			if len(fullName) > len(ctx) && loc == len(fullName)-len(ctx) {
				if !sp.roman || !hasInitial() {
					fullName = fullName[:loc]
					specialsCode += fmt.Sprintf("%03da", num)
					if sp.roman {
						if romanCode == "000" {
							romanCode = fmt.Sprintf("%03d", num)
						}
						if normalize == 2 {
							romanCheck(sp.match)
						}
					}
				}
			}
		}
		if sp.method&synMiddle != 0 {
			ctx := " " + sp.match + " "
			for loc := 0; ; {
				start := loc + 1
				if start >= len(fullName) {
					break
				}
				idx := strings.Index(fullName[start:], ctx)
				if idx == -1 {
					break
				}
				loc = start + idx
				if !sp.roman || !hasInitial() {
					fullName = fullName[:loc] + fullName[loc+len(sp.match)+1:]
					specialsCode += fmt.Sprintf("%03db", num)
					if sp.roman {
						if romanCode == "000" {
							romanCode = fmt.Sprintf("%03d", num)
						}
						if normalize == 2 {
							romanCheck(sp.match)
						}
					}
				}
			}
		}
		if sp.method&synBeginning != 0 {
			if strings.HasPrefix(fullName, sp.match+" ") {
				fullName = fullName[len(sp.match)+1:]
				specialsCode += fmt.Sprintf("%03dc", num)
			}
		}
		if sp.method&synBeginningNoSpace != 0 {
			if strings.HasPrefix(fullName, sp.match) {
				specialsCode += fmt.Sprintf("%03dd", num)
				if !strings.Contains(rangeCode, sp.match) {
					rangeCode += sp.match
				}
			}
		}
		if sp.extra != "" {
			if loc := strings.Index(fullName, sp.extra); loc != -1 {
				specialsCode += fmt.Sprintf("%03dX", num)
				rangeCode += fullName[loc : loc+len(sp.match)]
			}
		}
	}

	code := qualCode + punctCode + genCode + romanCode + fnameLen + lnameLen +
		"$" + specialsCode + "$" + rangeCode
	return lname, fname, code
}
