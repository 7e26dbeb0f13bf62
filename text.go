package preciossuperpy

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Normalize strips diacritics and lower-cases the text.
func Normalize(text string) string {
	clean, _, err := transform.String(stripAccents, text)
	if err != nil {
		clean = text
	}
	return strings.ToLower(clean)
}

// Tokenize splits the text into its alphabetic runs, normalized.
func Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder
	for _, r := range Normalize(text) {
		if unicode.IsLetter(r) {
			current.WriteRune(r)
			continue
		}
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens
}
