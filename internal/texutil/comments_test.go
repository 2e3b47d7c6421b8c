// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package texutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripLineComment(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "no comment", line: "plain text", want: "plain text"},
		{name: "trailing comment", line: "text % note", want: "text "},
		{name: "whole line comment", line: "% only a comment", want: ""},
		{name: "escaped percent kept", line: `grew by 100\%`, want: `grew by 100\%`},
		{name: "escaped then real comment", line: `50\% of cases % todo`, want: `50\% of cases `},
		{name: "first unescaped trigger wins", line: "a % b % c", want: "a "},
		{name: "empty line", line: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripLineComment(tt.line, CommentTrigger))
		})
	}
}

func TestStripComments_PerLine(t *testing.T) {
	in := "first line % gone\nsecond \\% stays\n%whole\nlast"
	want := "first line \nsecond \\% stays\n\nlast"
	assert.Equal(t, want, StripComments(in))
}

func TestStripComments_IdempotentWithoutTrigger(t *testing.T) {
	inputs := []string{
		"",
		"no comments here\n",
		"line one\r\nline two\n\n",
		`\section{Intro} text (XAI)`,
	}
	for _, in := range inputs {
		assert.Equal(t, in, StripComments(in))
		assert.Equal(t, in, StripComments(StripComments(in)))
	}
}

func TestStripCommentsWith_CustomTrigger(t *testing.T) {
	assert.Equal(t, "keep % this ", StripCommentsWith("keep % this # drop", '#'))
	assert.Equal(t, `a \# b`, StripCommentsWith(`a \# b`, '#'))
}
