// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package texutil

import (
	"regexp"
	"strings"
)

var (
	// commandWithArgPattern matches \name{content} up to the first closing
	// brace. Nested braces are not balanced.
	commandWithArgPattern = regexp.MustCompile(`\\[a-zA-Z]+\*?\{([^}]*)\}`)

	// bareCommandPattern matches any remaining \name or \name*.
	bareCommandPattern = regexp.MustCompile(`\\[a-zA-Z]+\*?`)

	whitespacePattern = regexp.MustCompile(`\s+`)
)

// ReduceNoise turns a LaTeX fragment into a plain word stream. Commands with
// an argument are unwrapped in a single pass, then bare commands are blanked,
// braces become spaces and whitespace is collapsed. Unwrapping must happen
// before bare commands disappear.
//
// A nested command ends the outer argument at its own closing brace, so the
// outer brace survives the pass and later splits the adjacent word.
func ReduceNoise(s string) string {
	s = commandWithArgPattern.ReplaceAllString(s, "$1")
	s = bareCommandPattern.ReplaceAllString(s, " ")
	s = strings.NewReplacer("{", " ", "}", " ").Replace(s)
	return CollapseSpace(s)
}

// CollapseSpace replaces every whitespace run with a single space and trims
// the result.
func CollapseSpace(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}
