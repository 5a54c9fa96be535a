package services

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// tokenizeWords splits text into word tokens on Unicode word boundaries
// and strips surrounding punctuation from each token. Tokens that are
// pure punctuation or whitespace are dropped.
func tokenizeWords(text string) []string {
	var tokens []string
	state := -1
	remaining := text
	for len(remaining) > 0 {
		var word string
		word, remaining, state = uniseg.FirstWordInString(remaining, state)
		token := strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
