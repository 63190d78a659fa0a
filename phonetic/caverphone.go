// Copyright 2025 Abydos Authors.
// All rights reserved.

// Package phonetic implements name encoders that map words with similar
// pronunciations to shared codes.
package phonetic

import "strings"

// Caverphone returns the version 2 Caverphone code for word: ten
// characters, padded with '1'.
func Caverphone(word string) string { return caverphone(word, 2) }

// CaverphoneV1 returns the original six character Caverphone code.
func CaverphoneV1(word string) string { return caverphone(word, 1) }

func caverphone(word string, version int) string {
	var b strings.Builder
	for _, r := range strings.ToLower(word) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	word = b.String()

	if version != 1 && strings.HasSuffix(word, "e") {
		word = word[:len(word)-1]
	}
	if word != "" {
		for _, p := range []struct{ pre, repl string }{
			{"cough", "cou2f"},
			{"rough", "rou2f"},
			{"tough", "tou2f"},
			{"enough", "enou2f"},
		} {
			if strings.HasPrefix(word, p.pre) {
				word = p.repl + word[len(p.pre):]
			}
		}
		if version != 1 && strings.HasPrefix(word, "trough") {
			word = "trou2f" + word[6:]
		}
		if strings.HasPrefix(word, "gn") {
			word = "2n" + word[2:]
		}
		if strings.HasSuffix(word, "mb") {
			word = word[:len(word)-1] + "2"
		}
		word = strings.ReplaceAll(word, "cq", "2q")
		word = strings.ReplaceAll(word, "ci", "si")
		word = strings.ReplaceAll(word, "ce", "se")
		word = strings.ReplaceAll(word, "cy", "sy")
		word = strings.ReplaceAll(word, "tch", "2ch")
		word = strings.ReplaceAll(word, "c", "k")
		word = strings.ReplaceAll(word, "q", "k")
		word = strings.ReplaceAll(word, "x", "k")
		word = strings.ReplaceAll(word, "v", "f")
		word = strings.ReplaceAll(word, "dg", "2g")
		word = strings.ReplaceAll(word, "tio", "sio")
		word = strings.ReplaceAll(word, "tia", "sia")
		word = strings.ReplaceAll(word, "d", "t")
		word = strings.ReplaceAll(word, "ph", "fh")
		word = strings.ReplaceAll(word, "b", "p")
		word = strings.ReplaceAll(word, "sh", "s2")
		word = strings.ReplaceAll(word, "z", "s")
		if isLowerVowel(word[0]) {
			word = "A" + word[1:]
		}
		word = strings.ReplaceAll(word, "a", "3")
		word = strings.ReplaceAll(word, "e", "3")
		word = strings.ReplaceAll(word, "i", "3")
		word = strings.ReplaceAll(word, "o", "3")
		word = strings.ReplaceAll(word, "u", "3")
		if version != 1 {
			word = strings.ReplaceAll(word, "j", "y")
			if strings.HasPrefix(word, "y3") {
				word = "Y3" + word[2:]
			}
			if strings.HasPrefix(word, "y") {
				word = "A" + word[1:]
			}
			word = strings.ReplaceAll(word, "y", "3")
		}
		word = strings.ReplaceAll(word, "3gh3", "3kh3")
		word = strings.ReplaceAll(word, "gh", "22")
		word = strings.ReplaceAll(word, "g", "k")

		word = squeezeReplace(word, "s", "S")
		word = squeezeReplace(word, "t", "T")
		word = squeezeReplace(word, "p", "P")
		word = squeezeReplace(word, "k", "K")
		word = squeezeReplace(word, "f", "F")
		word = squeezeReplace(word, "m", "M")
		word = squeezeReplace(word, "n", "N")

		word = strings.ReplaceAll(word, "w3", "W3")
		if version == 1 {
			word = strings.ReplaceAll(word, "wy", "Wy")
		}
		word = strings.ReplaceAll(word, "wh3", "Wh3")
		if version == 1 {
			word = strings.ReplaceAll(word, "why", "Why")
		}
		if version != 1 && strings.HasSuffix(word, "w") {
			word = word[:len(word)-1] + "3"
		}
		word = strings.ReplaceAll(word, "w", "2")
		if strings.HasPrefix(word, "h") {
			word = "A" + word[1:]
		}
		word = strings.ReplaceAll(word, "h", "2")
		word = strings.ReplaceAll(word, "r3", "R3")
		if version == 1 {
			word = strings.ReplaceAll(word, "ry", "Ry")
		}
		if version != 1 && strings.HasSuffix(word, "r") {
			word = word[:len(word)-1] + "3"
		}
		word = strings.ReplaceAll(word, "r", "2")
		word = strings.ReplaceAll(word, "l3", "L3")
		if version == 1 {
			word = strings.ReplaceAll(word, "ly", "Ly")
		}
		if version != 1 && strings.HasSuffix(word, "l") {
			word = word[:len(word)-1] + "3"
		}
		word = strings.ReplaceAll(word, "l", "2")
		if version == 1 {
			word = strings.ReplaceAll(word, "j", "y")
			word = strings.ReplaceAll(word, "y3", "Y3")
			word = strings.ReplaceAll(word, "y", "2")
		}
		word = strings.ReplaceAll(word, "2", "")
		if version != 1 && strings.HasSuffix(word, "3") {
			word = word[:len(word)-1] + "A"
		}
		word = strings.ReplaceAll(word, "3", "")
	}

	word += strings.Repeat("1", 10)
	if version != 1 {
		return word[:10]
	}
	return word[:6]
}

// squeezeReplace collapses runs of ch to a single instance and rewrites it
// as repl.
func squeezeReplace(word, ch, repl string) string {
	for strings.Contains(word, ch+ch) {
		word = strings.ReplaceAll(word, ch+ch, ch)
	}
	return strings.ReplaceAll(word, ch, repl)
}

func isLowerVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
