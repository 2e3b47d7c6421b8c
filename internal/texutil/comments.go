// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package texutil holds the text-normalization helpers shared by the acronym
// and title pipelines: comment stripping, markup noise reduction, and .tex
// file discovery.
package texutil

import "strings"

const (
	// CommentTrigger starts a line comment in LaTeX source.
	CommentTrigger = '%'
	// EscapeChar protects the next character from being read as a trigger.
	EscapeChar = '\\'
)

// StripLineComment removes everything from the first unescaped trigger
// character to the end of line. A trigger immediately preceded by the escape
// character is kept and scanning continues after it.
func StripLineComment(line string, trigger byte) string {
	for i := 0; i < len(line); i++ {
		if line[i] != trigger {
			continue
		}
		if i > 0 && line[i-1] == EscapeChar {
			continue
		}
		return line[:i]
	}
	return line
}

// StripComments applies StripLineComment to every line of text with the
// default trigger. Lines are split and rejoined on "\n", so text without a
// trigger comes back unchanged.
func StripComments(text string) string {
	return StripCommentsWith(text, CommentTrigger)
}

// StripCommentsWith is StripComments with a caller-chosen trigger character.
func StripCommentsWith(text string, trigger byte) string {
	if strings.IndexByte(text, trigger) < 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = StripLineComment(line, trigger)
	}
	return strings.Join(lines, "\n")
}
