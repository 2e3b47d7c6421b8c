// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package acronym

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/latex-doctor/internal/texutil"
)

// DefaultWindowMultiplier is the number of characters scanned per acronym
// letter.
const DefaultWindowMultiplier = 30

// Window returns the last n characters of prefix, or all of it when shorter.
func Window(prefix string, n int) string {
	if n <= 0 {
		return prefix
	}
	i := len(prefix)
	for count := 0; count < n && i > 0; count++ {
		_, size := utf8.DecodeLastRuneInString(prefix[:i])
		i -= size
	}
	return prefix[i:]
}

// InferDefinition derives the expansion of token from the text that precedes
// it. With N the token length, it scans the last N*multiplier characters,
// strips markup, keeps letters only, and title-cases the last N words. The
// result is empty when no word survives.
func InferDefinition(prefix, token string, multiplier int) string {
	if multiplier <= 0 {
		multiplier = DefaultWindowMultiplier
	}
	n := utf8.RuneCountInString(token)

	window := texutil.ReduceNoise(Window(prefix, n*multiplier))
	words := strings.Fields(lettersOnly(window))
	if len(words) == 0 {
		return ""
	}
	if len(words) > n {
		words = words[len(words)-n:]
	}
	for i, w := range words {
		words[i] = capitalize(strings.ToLower(w))
	}
	return strings.Join(words, " ")
}

// lettersOnly replaces everything except ASCII letters and whitespace with a
// space, so digits and hyphens split or vanish.
func lettersOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, s)
}

// capitalize uppercases the first rune of s.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
