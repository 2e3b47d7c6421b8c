// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package titles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/latex-doctor/pkg/types"
)

func TestRewrite(t *testing.T) {
	tests := []struct {
		name string
		in   string
		mode types.TitleMode
		want string
	}{
		{
			name: "section title case",
			in:   `\section{my title}`,
			mode: types.ModeUppercase,
			want: `\section{My Title}`,
		},
		{
			name: "starred command with space before brace",
			in:   `\chapter* {an overview of the field}`,
			mode: types.ModeUppercase,
			want: `\chapter* {An Overview of the Field}`,
		},
		{
			name: "all command kinds",
			in:   "\\part{a}\n\\chapter{b}\n\\section{c}\n\\subsection{d}\n\\subsubsection{e}\n\\paragraph{f}\n\\subparagraph{g}",
			mode: types.ModeAllCaps,
			want: "\\part{A}\n\\chapter{B}\n\\section{C}\n\\subsection{D}\n\\subsubsection{E}\n\\paragraph{F}\n\\subparagraph{G}",
		},
		{
			name: "command name is case insensitive",
			in:   `\SECTION{loud heading}`,
			mode: types.ModeCapitalize,
			want: `\SECTION{Loud heading}`,
		},
		{
			name: "multi-line title is joined",
			in:   "\\section{a very\n  long title}",
			mode: types.ModeUppercase,
			want: `\section{A Very Long Title}`,
		},
		{
			name: "surrounding text untouched",
			in:   "intro text\n\\section{methods} body {braces} stay\n",
			mode: types.ModeAllCaps,
			want: "intro text\n\\section{METHODS} body {braces} stay\n",
		},
		{
			name: "title is trimmed",
			in:   `\subsection{  padded  }`,
			mode: types.ModeUppercase,
			want: `\subsection{Padded}`,
		},
		{
			name: "nested command truncates at first closing brace",
			in:   `\section{the role of \emph{deep} models}`,
			mode: types.ModeAllCaps,
			want: `\section{THE ROLE OF \EMPH{DEEP} models}`,
		},
		{
			name: "non-heading commands ignored",
			in:   `\caption{some caption} \sectionmark{mark}`,
			mode: types.ModeAllCaps,
			want: `\caption{some caption} \sectionmark{mark}`,
		},
		{
			name: "no headings",
			in:   "plain text",
			mode: types.ModeUppercase,
			want: "plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rewrite(tt.in, tt.mode))
		})
	}
}

func TestFindHeadings(t *testing.T) {
	content := "x \\section*{Intro} y \\paragraph{Note}"
	hs := FindHeadings(content)
	require.Len(t, hs, 2)

	assert.Equal(t, `\section*{`, hs[0].Open)
	assert.Equal(t, "Intro", hs[0].Title)
	assert.Equal(t, "}", hs[0].Close)
	assert.Equal(t, `\section*{Intro}`, content[hs[0].Start:hs[0].End])

	assert.Equal(t, `\paragraph{`, hs[1].Open)
	assert.Equal(t, "Note", hs[1].Title)
}
