package analysis

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	punctRe      = regexp.MustCompile(`[^\w\s\-\.@]`)
)

// Normalize lowercases the prompt, strips punctuation (keeping word
// characters, spaces, hyphens, dots and @), and collapses whitespace.
// Substring positions needed for entity extraction survive because tokens
// keep their relative order.
func Normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = punctRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Tokenize splits normalized text into tokens
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Fields(text)
}
