// Package extract provides the leaf text heuristics used by the validation
// resolver: pulling a likely entity identifier out of a free-text error
// message and finding the closest known entity from a candidate list.
package extract

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	tokenRe = regexp.MustCompile(`[A-Za-z0-9._-]+`)
)

// Identifier pulls the most likely entity name or email address out of a
// free-text error message. An email-shaped token is returned verbatim, case
// preserved. Otherwise the first token that looks like a structured
// identifier wins: length >= 3, not purely numeric, contains '.' or '_',
// contains at least one letter. Falls back to the last token, or the
// original text when there are no tokens at all. Never fails.
func Identifier(text string) string {
	if m := emailRe.FindString(text); m != "" {
		return m
	}

	tokens := tokenRe.FindAllString(text, -1)
	for _, tok := range tokens {
		if looksStructured(tok) {
			return tok
		}
	}
	if len(tokens) > 0 {
		return tokens[len(tokens)-1]
	}
	return text
}

func looksStructured(tok string) bool {
	if len(tok) < 3 || isNumeric(tok) {
		return false
	}
	if !strings.ContainsAny(tok, "._") {
		return false
	}
	return strings.IndexFunc(tok, unicode.IsLetter) >= 0
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}
