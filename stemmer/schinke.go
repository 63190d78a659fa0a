// Copyright 2025 Abydos Authors.
// All rights reserved.

// Package stemmer reduces words to stems so that inflected forms
// compare equal.
package stemmer

import (
	"strings"

	"github.com/fossabot/abydos/strutil"
)

// Words ending in -que that are complete words rather than enclitics,
// listed by their stem.
var schinkeKeepQue = map[string]bool{
	"at": true, "quo": true, "ne": true, "ita": true, "abs": true,
	"aps": true, "abus": true, "adae": true, "adus": true, "deni": true,
	"de": true, "sus": true, "obli": true, "perae": true, "plenis": true,
	"quando": true, "quis": true, "quae": true, "cuius": true, "cui": true,
	"quem": true, "quam": true, "qua": true, "qui": true, "quorum": true,
	"quarum": true, "quibus": true, "quos": true, "quas": true,
	"quotusquis": true, "quous": true, "ubi": true, "undi": true,
	"us": true, "uter": true, "uti": true, "utro": true, "utribi": true,
	"tor": true, "co": true, "conco": true, "contor": true, "detor": true,
	"deco": true, "exco": true, "extor": true, "obtor": true, "optor": true,
	"retor": true, "reco": true, "attor": true, "inco": true, "intor": true,
	"praetor": true,
}

// Noun suffixes in decreasing length. Only the longest match is removed.
var schinkeNounSuffixes = []string{
	"ibus",
	"ius",
	"is", "nt", "ae", "os", "am", "ud", "as", "um", "em", "us", "es", "ia",
	"a", "e", "i", "o", "u",
}

// Verb suffixes in decreasing length. An empty repl strips the suffix;
// otherwise the suffix is rewritten (-untur and friends to -i, future
// -bo forms to -bi, -ero to -eri).
var schinkeVerbSuffixes = []struct {
	suffix string
	repl   string
}{
	{"iuntur", "i"},
	{"beris", "bi"}, {"erunt", "i"}, {"untur", "i"},
	{"mini", ""}, {"ntur", ""}, {"stis", ""}, {"iunt", "i"},
	{"mur", ""}, {"mus", ""}, {"ris", ""}, {"sti", ""}, {"tis", ""},
	{"tur", ""}, {"bor", "bi"}, {"ero", "eri"}, {"unt", "i"},
	{"ns", ""}, {"nt", ""}, {"ri", ""}, {"bo", "bi"},
	{"m", ""}, {"r", ""}, {"s", ""}, {"t", ""},
}

// Schinke returns the noun and verb stems of a Latin word per the
// stemmer of Schinke, Greengrass, Robertson, and Willett (1996).
// A suffix is only removed if at least two characters remain.
func Schinke(word string) (noun, verb string) {
	word = strutil.Decompose(strings.ToLower(word))
	var b strings.Builder
	for _, r := range word {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	word = b.String()
	word = strings.ReplaceAll(word, "j", "i")
	word = strings.ReplaceAll(word, "v", "u")

	if strings.HasSuffix(word, "que") {
		if word == "que" || schinkeKeepQue[word[:len(word)-3]] {
			return word, word
		}
		word = word[:len(word)-3]
	}

	noun, verb = word, word
	for _, s := range schinkeNounSuffixes {
		if !strings.HasSuffix(word, s) {
			continue
		}
		if stem := word[:len(word)-len(s)]; len(stem) >= 2 {
			noun = stem
		}
		break
	}
	for _, s := range schinkeVerbSuffixes {
		if !strings.HasSuffix(word, s.suffix) {
			continue
		}
		if stem := word[:len(word)-len(s.suffix)]; len(stem) >= 2 {
			verb = stem + s.repl
		}
		break
	}
	return noun, verb
}
