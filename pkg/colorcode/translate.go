package colorcode

import (
	"regexp"
	"strings"
)

// Alphabet holds every character that may follow an introducer.
const Alphabet = "0123456789abcdefklmnor"

var (
	// markerRe matches any marker-shaped sequence, including codes that
	// have no registry entry.
	markerRe = regexp.MustCompile(`[§&][0-9a-fk-or]`)

	// toANSI and toPlain each perform a single left-to-right pass, so the
	// escapes they write are never matched again.
	toANSI  = newANSIReplacer()
	toPlain = newStripReplacer()
)

var introducers = []rune{SectionSign, Ampersand}

func newANSIReplacer() *strings.Replacer {
	var oldnew []string
	for _, intro := range introducers {
		for _, c := range registry {
			oldnew = append(oldnew, string([]rune{intro, c.Char}), c.ANSI())
		}
	}
	return strings.NewReplacer(oldnew...)
}

// newStripReplacer drops every marker the alphabet allows, known or not.
func newStripReplacer() *strings.Replacer {
	var oldnew []string
	for _, intro := range introducers {
		for _, char := range Alphabet {
			oldnew = append(oldnew, string([]rune{intro, char}), "")
		}
	}
	return strings.NewReplacer(oldnew...)
}

// HasMarkers reports whether s contains at least one marker sequence.
func HasMarkers(s string) bool {
	return markerRe.MatchString(s)
}

// Translate replaces every known marker in s with its ANSI escape and
// appends Reset. Unknown codes are left as they are but still cause the
// trailing reset. Strings without markers are returned unchanged.
func Translate(s string) string {
	if s == "" || !HasMarkers(s) {
		return s
	}
	return toANSI.Replace(s) + Reset
}

// Strip removes every marker sequence from s without emitting escapes.
func Strip(s string) string {
	if s == "" || !HasMarkers(s) {
		return s
	}
	return toPlain.Replace(s)
}
