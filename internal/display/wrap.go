package display

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const DefaultWidth = 80

// Wrap word-wraps text to DefaultWidth, preserving ANSI escape sequences.
func Wrap(text string) string {
	return wordwrap.String(text, DefaultWidth)
}

// Capitalize returns s with its first character uppercased.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Title converts an identifier such as "eye_of_ender" to "Eye Of Ender".
func Title(s string) string {
	// Casers hold state, so each call gets its own.
	return cases.Title(language.English).String(strings.NewReplacer("_", " ", "-", " ").Replace(s))
}
