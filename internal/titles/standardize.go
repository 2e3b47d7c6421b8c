// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package titles rewrites the text of LaTeX sectioning commands to a chosen
// capitalization style.
package titles

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/latex-doctor/pkg/types"
)

// StopWords are linking words kept lowercase in title case unless they open
// the title.
var StopWords = map[string]bool{
	"and": true, "or": true, "for": true, "the": true, "a": true, "an": true,
	"of": true, "in": true, "to": true, "on": true, "at": true, "by": true,
	"with": true, "nor": true, "but": true, "so": true, "yet": true, "from": true,
}

// Standardize trims text and applies mode. Empty input and unknown modes
// return the trimmed text unchanged.
func Standardize(text string, mode types.TitleMode) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return text
	}

	switch mode {
	case types.ModeAllCaps:
		return strings.ToUpper(text)
	case types.ModeCapitalize:
		return capitalizeWord(text)
	case types.ModeUppercase:
		return titleCase(text)
	default:
		return text
	}
}

func titleCase(text string) string {
	words := strings.Fields(text)
	for i, w := range words {
		if i > 0 && StopWords[alnumLower(w)] {
			words[i] = strings.ToLower(w)
		} else {
			words[i] = capitalizeWord(w)
		}
	}
	return strings.Join(words, " ")
}

// capitalizeWord uppercases the first character and lowercases the rest.
func capitalizeWord(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return strings.ToLower(s)
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// alnumLower lowercases w and drops everything but ASCII letters and digits.
func alnumLower(w string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return unicode.ToLower(r)
		default:
			return -1
		}
	}, w)
}
