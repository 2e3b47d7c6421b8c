// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package acronym detects parenthesized acronyms in LaTeX source, infers their
// expansions from the preceding prose, and renders the result as lists, data
// exports, a LaTeX block, or a SQLite glossary.
package acronym

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/pdiddy/latex-doctor/pkg/types"
)

// Shape is the character and length rule a parenthesized token must satisfy
// to count as an acronym.
type Shape struct {
	Profile types.AcronymProfile
	pattern *regexp.Regexp
	MinLen  int
	MaxLen  int
}

var (
	// StrictShape: (XAI), (API), (ANN2).
	StrictShape = Shape{
		Profile: types.ProfileStrict,
		pattern: regexp.MustCompile(`\(([A-Z][A-Z0-9]{1,19})\)`),
		MinLen:  2,
		MaxLen:  20,
	}

	// LooseShape: also (COVID-19), (I/O), (TCP/IP).
	LooseShape = Shape{
		Profile: types.ProfileLoose,
		pattern: regexp.MustCompile(`\(([A-Z][A-Z0-9]*(?:[A-Z0-9]|[-/][A-Z0-9]+)*)\)`),
		MinLen:  2,
		MaxLen:  10,
	}
)

// ShapeFor returns the Shape registered for profile. An empty profile selects
// the strict shape.
func ShapeFor(profile types.AcronymProfile) (Shape, error) {
	switch profile {
	case types.ProfileStrict, "":
		return StrictShape, nil
	case types.ProfileLoose:
		return LooseShape, nil
	default:
		return Shape{}, fmt.Errorf("unknown acronym profile %q: use %s or %s",
			profile, types.ProfileStrict, types.ProfileLoose)
	}
}

// Occurrence is one acronym found in the text. Offset is the byte index of
// the opening parenthesis.
type Occurrence struct {
	Token  string
	Offset int
}

// Detect returns every occurrence of the shape in text, in document order.
// The caller strips comments first.
func (s Shape) Detect(text string) []Occurrence {
	var out []Occurrence
	for _, m := range s.pattern.FindAllStringSubmatchIndex(text, -1) {
		token := text[m[2]:m[3]]
		if len(token) < s.MinLen || len(token) > s.MaxLen {
			continue
		}
		out = append(out, Occurrence{Token: token, Offset: m[0]})
	}
	return out
}

// Tokens returns the distinct tokens of the shape in text, sorted.
func (s Shape) Tokens(text string) []string {
	seen := make(map[string]bool)
	var tokens []string
	for _, occ := range s.Detect(text) {
		if !seen[occ.Token] {
			seen[occ.Token] = true
			tokens = append(tokens, occ.Token)
		}
	}
	sort.Strings(tokens)
	return tokens
}
