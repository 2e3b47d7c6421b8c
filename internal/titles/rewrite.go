// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package titles

import (
	"regexp"
	"strings"

	"github.com/pdiddy/latex-doctor/pkg/types"
)

// SectionCommands are the heading commands rewritten, from the largest
// structural unit to the smallest.
var SectionCommands = []string{
	"part",
	"chapter",
	"section",
	"subsection",
	"subsubsection",
	"paragraph",
	"subparagraph",
}

// headingPattern captures the opening command with its brace, the title, and
// the closing brace. The title stops at the first "}" so a nested command
// such as \emph{...} truncates it.
var headingPattern = regexp.MustCompile(
	`(?is)(\\(?:` + strings.Join(SectionCommands, "|") + `)\*?\s*\{)(.*?)(\})`)

// Heading is a located heading command. Start and End delimit the whole match
// in the source; Open and Close are kept verbatim on rewrite.
type Heading struct {
	Start int
	End   int
	Open  string
	Title string
	Close string
}

// FindHeadings returns every heading command in content, in document order.
func FindHeadings(content string) []Heading {
	var out []Heading
	for _, m := range headingPattern.FindAllStringSubmatchIndex(content, -1) {
		out = append(out, Heading{
			Start: m[0],
			End:   m[1],
			Open:  content[m[2]:m[3]],
			Title: content[m[4]:m[5]],
			Close: content[m[6]:m[7]],
		})
	}
	return out
}

// Rewrite applies Standardize to the title of every heading in content and
// leaves everything else untouched.
func Rewrite(content string, mode types.TitleMode) string {
	headings := FindHeadings(content)
	if len(headings) == 0 {
		return content
	}

	var b strings.Builder
	b.Grow(len(content))
	last := 0
	for _, h := range headings {
		b.WriteString(content[last:h.Start])
		b.WriteString(h.Open)
		b.WriteString(Standardize(h.Title, mode))
		b.WriteString(h.Close)
		last = h.End
	}
	b.WriteString(content[last:])
	return b.String()
}
