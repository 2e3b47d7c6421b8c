// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package acronym

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMapping() *Mapping {
	m := NewMapping()
	m.InsertIfAbsent("XAI", "Explainable Artificial Intelligence")
	m.InsertIfAbsent("GPU", "")
	m.InsertIfAbsent("AI", "Artificial Intelligence")
	return m
}

func TestRenderLaTeX(t *testing.T) {
	want := `\chapter{Acronyms}\label{cha:acronyme}
\begin{itemize}
\item \textbf{AI:} Artificial Intelligence
\item \textbf{GPU}
\item \textbf{XAI:} Explainable Artificial Intelligence
\end{itemize}
`
	assert.Equal(t, want, RenderLaTeX(sampleMapping(), Block{}))
}

func TestRenderLaTeX_CustomBlock(t *testing.T) {
	out := RenderLaTeX(NewMapping(), Block{Title: "Abbreviations", Label: "ch:abbr"})
	assert.Equal(t, "\\chapter{Abbreviations}\\label{ch:abbr}\n\\begin{itemize}\n\\end{itemize}\n", out)
}

func TestParseLaTeX_RoundTrip(t *testing.T) {
	m := sampleMapping()
	assert.Equal(t, m.Tokens(), ParseLaTeX(RenderLaTeX(m, DefaultBlock)))

	loose := MappingFromTokens([]string{"TCP/IP", "COVID-19"})
	assert.Equal(t, loose.Tokens(), ParseLaTeX(RenderLaTeX(loose, DefaultBlock)))
}

func TestWriteLaTeX_CreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "back", "matter", "acronyms.tex")
	require.NoError(t, WriteLaTeX(path, sampleMapping(), DefaultBlock))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `\item \textbf{XAI:} Explainable Artificial Intelligence`)
}

func TestWritePlainList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "acronyms.txt")
	require.NoError(t, WritePlainList(path, []string{"AI", "GPU"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "AI\nGPU\n", string(data))
}

func TestPrintMapping(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintMapping(&buf, sampleMapping()))
	assert.Equal(t, "AI: Artificial Intelligence\nGPU: \nXAI: Explainable Artificial Intelligence\n", buf.String())
}

func TestPrintTokens(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintTokens(&buf, []string{"AI", "XAI"}))
	assert.Equal(t, "AI\nXAI\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, []string{"R&D", "AI"}))
	assert.Equal(t, "[\n  \"R&D\",\n  \"AI\"\n]\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteJSON(&buf, sampleMapping()))
	assert.JSONEq(t, `{"AI":"Artificial Intelligence","GPU":"","XAI":"Explainable Artificial Intelligence"}`, buf.String())
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, sampleMapping()))
	assert.Equal(t, "AI: Artificial Intelligence\nGPU: \"\"\nXAI: Explainable Artificial Intelligence\n", buf.String())
}
