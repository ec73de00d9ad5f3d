// Package colorcode translates legacy two-character formatting codes
// (such as "&a" or "§l") into ANSI terminal escape sequences.
package colorcode

import "fmt"

// Family selects the ANSI template a Code is rendered with.
type Family int

const (
	// Color256 renders as a 256-colour foreground escape: ESC[38;5;<n>m.
	Color256 Family = iota
	// Attribute renders as a text attribute escape: ESC[<n>m.
	Attribute
)

// String returns the string representation of the family.
func (f Family) String() string {
	switch f {
	case Color256:
		return "color"
	case Attribute:
		return "format"
	default:
		return "unknown"
	}
}

// Introducers that may precede a code character.
const (
	SectionSign = '§'
	Ampersand   = '&'
)

// Reset is the escape appended after any translated text.
const Reset = "\x1b[0m"

// Code is one entry of the formatting registry.
type Code struct {
	Char   rune
	Name   string
	Family Family
	Param  int

	ansi string
}

func newCode(char rune, name string, family Family, param int) Code {
	c := Code{Char: char, Name: name, Family: family, Param: param}
	switch family {
	case Color256:
		c.ansi = fmt.Sprintf("\x1b[38;5;%dm", param)
	default:
		c.ansi = fmt.Sprintf("\x1b[%dm", param)
	}
	return c
}

// ANSI returns the escape sequence for the code.
func (c Code) ANSI() string {
	return c.ansi
}

// String returns the code in its "&x" form.
func (c Code) String() string {
	return string([]rune{Ampersand, c.Char})
}

// registry lists colours first, then formats. 'k' (obfuscated) is part of
// the marker alphabet but has no entry.
var registry = []Code{
	newCode('0', "black", Color256, 0),
	newCode('1', "dark_blue", Color256, 4),
	newCode('2', "dark_green", Color256, 2),
	newCode('3', "dark_aqua", Color256, 30),
	newCode('4', "dark_red", Color256, 1),
	newCode('5', "dark_purple", Color256, 54),
	newCode('6', "gold", Color256, 172),
	newCode('7', "gray", Color256, 246),
	newCode('8', "dark_gray", Color256, 8),
	newCode('9', "blue", Color256, 4),
	newCode('a', "green", Color256, 10),
	newCode('b', "aqua", Color256, 51),
	newCode('c', "red", Color256, 9),
	newCode('d', "light_purple", Color256, 13),
	newCode('e', "yellow", Color256, 11),
	newCode('f', "white", Color256, 15),
	newCode('l', "bold", Attribute, 1),
	newCode('m', "strikethrough", Attribute, 9),
	newCode('n', "underline", Attribute, 4),
	newCode('o', "italic", Attribute, 3),
	newCode('r', "reset", Attribute, 0),
}

var byChar = func() map[rune]Code {
	m := make(map[rune]Code, len(registry))
	for _, c := range registry {
		m[c.Char] = c
	}
	return m
}()

// Lookup returns the registry entry for a code character.
func Lookup(char rune) (Code, bool) {
	c, ok := byChar[char]
	return c, ok
}

// Codes returns a copy of the registry in listing order.
func Codes() []Code {
	result := make([]Code, len(registry))
	copy(result, registry)
	return result
}
