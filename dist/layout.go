// Copyright 2025 Abydos Authors.
// All rights reserved.

package dist

import "sort"

// Layout describes the rune positions of a physical keyboard as two
// four-row tables, unshifted and shifted. Cells hold the rune produced by
// the key; "" cells reserve positions with no rune so that column numbers
// line up with the physical key grid. The tables are transcribed verbatim,
// quirks included: the AZERTY shifted table lists 'W' twice (the first row
// wins), and the QWERTZ unshifted " ü" cell can never match a rune.
type Layout struct {
	name string
	keys [2][4][]string
}

// coord locates a rune on a layout.
type coord struct{ shift, row, col int }

// coordOf returns the position of r, scanning the unshifted table first
// and rows top to bottom.
func (l *Layout) coordOf(r rune) (coord, bool) {
	s := string(r)
	for shift := 0; shift < 2; shift++ {
		for row := 0; row < 4; row++ {
			for col, cell := range l.keys[shift][row] {
				if cell == s {
					return coord{shift, row, col}, true
				}
			}
		}
	}
	return coord{}, false
}

// LayoutNames returns the names accepted by TypoLayout, sorted.
func LayoutNames() []string {
	names := make([]string, 0, len(layouts))
	for n := range layouts {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

var layouts = map[string]*Layout{
	"QWERTY": {
		name: "QWERTY",
		keys: [2][4][]string{
			{
				{"`", "1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "-", "="},
				{"", "q", "w", "e", "r", "t", "y", "u", "i", "o", "p", "[", "]", `\`},
				{"", "a", "s", "d", "f", "g", "h", "j", "k", "l", ";", "'"},
				{"", "z", "x", "c", "v", "b", "n", "m", ",", ".", "/"},
			},
			{
				{"~", "!", "@", "#", "$", "%", "^", "&", "*", "(", ")", "_", "+"},
				{"", "Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P", "{", "}", "|"},
				{"", "A", "S", "D", "F", "G", "H", "J", "K", "L", ":", `"`},
				{"", "Z", "X", "C", "V", "B", "N", "M", "<", ">", "?"},
			},
		},
	},
	"Dvorak": {
		name: "Dvorak",
		keys: [2][4][]string{
			{
				{"`", "1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "[", "]"},
				{"", "'", ",", ".", "p", "y", "f", "g", "c", "r", "l", "/", "=", `\`},
				{"", "a", "o", "e", "u", "i", "d", "h", "t", "n", "s", "-"},
				{"", ";", "q", "j", "k", "x", "b", "m", "w", "v", "z"},
			},
			{
				{"~", "!", "@", "#", "$", "%", "^", "&", "*", "(", ")", "{", "}"},
				{"", `"`, "<", ">", "P", "Y", "F", "G", "C", "R", "L", "?", "+", "|"},
				{"", "A", "O", "E", "U", "I", "D", "H", "T", "N", "S", "_"},
				{"", ":", "Q", "J", "K", "X", "B", "M", "W", "V", "Z"},
			},
		},
	},
	"AZERTY": {
		name: "AZERTY",
		keys: [2][4][]string{
			{
				{"²", "&", "é", `"`, "'", "(", "-", "è", "_", "ç", "à", ")", "="},
				{"", "a", "z", "e", "r", "t", "y", "u", "i", "o", "p", "", "$"},
				{"", "q", "s", "d", "f", "g", "h", "j", "k", "l", "m", "ù", "*"},
				{"<", "w", "x", "c", "v", "b", "n", ",", ";", ":", "!"},
			},
			{
				{"~", "1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "°", "+"},
				{"", "A", "W", "E", "R", "T", "Y", "U", "I", "O", "P", "", "£"},
				{"", "Q", "S", "D", "F", "G", "H", "J", "K", "L", "M", "Ù", "μ"},
				{">", "W", "X", "C", "V", "B", "N", "?", ".", "/", "§"},
			},
		},
	},
	"QWERTZ": {
		name: "QWERTZ",
		keys: [2][4][]string{
			{
				{"", "1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "ß", ""},
				{"", "q", "w", "e", "r", "t", "z", "u", "i", "o", "p", " ü", "+", `\`},
				{"", "a", "s", "d", "f", "g", "h", "j", "k", "l", "ö", "ä", "#"},
				{"<", "y", "x", "c", "v", "b", "n", "m", ",", ".", "-"},
			},
			{
				{"°", "!", `"`, "§", "$", "%", "&", "/", "(", ")", "=", "?", ""},
				{"", "Q", "W", "E", "R", "T", "Z", "U", "I", "O", "P", "Ü", "*", ""},
				{"", "A", "S", "D", "F", "G", "H", "J", "K", "L", "Ö", "Ä", "'"},
				{">", "Y", "X", "C", "V", "B", "N", "M", ";", ":", "_"},
			},
		},
	},
}
