// Copyright 2025 Abydos Authors.
// All rights reserved.

package strutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// https://go.dev/blog/normalization#performing-magic
var normalizer = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// Normalize normalizes characters using NFKD form.
// Unicode characters are decomposed (runes are broken into their components) and replaced for
// compatibility equivalence (characters that represent the same characters but have different
// visual representations, e.g. '9' and '₉', are equal). Characters are also de-accented.
func Normalize(orig string) string {
	if s, _, err := transform.String(normalizer, orig); err == nil {
		return s
	}
	return orig
}

// Decompose returns s in NFKD form without dropping combining marks:
// an accented letter becomes a base letter followed by mark runes.
func Decompose(s string) string { return norm.NFKD.String(s) }

// Compose returns s in NFC form.
func Compose(s string) string { return norm.NFC.String(s) }

// Upper uppercases s using full case mapping, which can change the rune
// count: 'ß' becomes "SS", where unicode.ToUpper would leave it alone.
func Upper(s string) string { return cases.Upper(language.Und).String(s) }

// Squeeze collapses runs of identical runes to single occurrences.
func Squeeze(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	last := rune(-1)
	for _, r := range s {
		if r != last {
			b.WriteRune(r)
		}
		last = r
	}
	return b.String()
}
