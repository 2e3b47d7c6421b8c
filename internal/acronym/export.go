// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package acronym

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Block configures the LaTeX fragment produced by RenderLaTeX.
type Block struct {
	Title string
	Label string
}

// DefaultBlock is the chapter used when no title or label is configured.
var DefaultBlock = Block{Title: "Acronyms", Label: "cha:acronyme"}

// itemPattern matches the token of a rendered \item line, with or without the
// trailing colon.
var itemPattern = regexp.MustCompile(`\\item\s+\\textbf\{([^}:]+):?\}`)

// RenderLaTeX renders m as a chapter holding an itemize list, one item per
// acronym in token order.
func RenderLaTeX(m *Mapping, b Block) string {
	if b.Title == "" {
		b.Title = DefaultBlock.Title
	}
	if b.Label == "" {
		b.Label = DefaultBlock.Label
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\\chapter{%s}\\label{%s}\n", b.Title, b.Label)
	sb.WriteString("\\begin{itemize}\n")
	for _, e := range m.Entries() {
		if e.Definition != "" {
			fmt.Fprintf(&sb, "\\item \\textbf{%s:} %s\n", e.Token, e.Definition)
		} else {
			fmt.Fprintf(&sb, "\\item \\textbf{%s}\n", e.Token)
		}
	}
	sb.WriteString("\\end{itemize}\n")
	return sb.String()
}

// ParseLaTeX returns the acronym tokens listed in a block produced by
// RenderLaTeX, in block order.
func ParseLaTeX(block string) []string {
	var tokens []string
	for _, m := range itemPattern.FindAllStringSubmatch(block, -1) {
		tokens = append(tokens, m[1])
	}
	return tokens
}

// WriteLaTeX renders m to path, creating parent directories.
func WriteLaTeX(path string, m *Mapping, b Block) error {
	return writeFile(path, RenderLaTeX(m, b))
}

// WritePlainList writes one token per line to path, creating parent
// directories.
func WritePlainList(path string, tokens []string) error {
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteString(t)
		sb.WriteByte('\n')
	}
	return writeFile(path, sb.String())
}

// PrintMapping writes "TOKEN: definition" lines to w.
func PrintMapping(w io.Writer, m *Mapping) error {
	for _, e := range m.Entries() {
		if _, err := fmt.Fprintf(w, "%s: %s\n", e.Token, e.Definition); err != nil {
			return err
		}
	}
	return nil
}

// PrintTokens writes one token per line to w.
func PrintTokens(w io.Writer, tokens []string) error {
	for _, t := range tokens {
		if _, err := fmt.Fprintln(w, t); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON encodes v as indented JSON without HTML escaping.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// WriteYAML encodes v as YAML.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}

func writeFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
