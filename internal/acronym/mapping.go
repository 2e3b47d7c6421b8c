// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package acronym

import (
	"encoding/json"
	"sort"
)

// Entry pairs an acronym with its definition.
type Entry struct {
	Token      string `json:"token" yaml:"token"`
	Definition string `json:"definition" yaml:"definition"`
}

// Mapping associates acronyms with definitions. Only the first definition
// stored for a token is kept; iteration is always sorted by token.
type Mapping struct {
	defs map[string]string
}

// NewMapping returns an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{defs: make(map[string]string)}
}

// MappingFromTokens builds a Mapping with an empty definition per token.
func MappingFromTokens(tokens []string) *Mapping {
	m := NewMapping()
	for _, t := range tokens {
		m.InsertIfAbsent(t, "")
	}
	return m
}

// InsertIfAbsent stores definition for token unless the token is already
// present. It reports whether the value was stored.
func (m *Mapping) InsertIfAbsent(token, definition string) bool {
	if m.defs == nil {
		m.defs = make(map[string]string)
	}
	if _, ok := m.defs[token]; ok {
		return false
	}
	m.defs[token] = definition
	return true
}

// Get returns the definition stored for token.
func (m *Mapping) Get(token string) (string, bool) {
	d, ok := m.defs[token]
	return d, ok
}

// Len returns the number of acronyms.
func (m *Mapping) Len() int {
	return len(m.defs)
}

// Tokens returns the acronyms in lexicographic order.
func (m *Mapping) Tokens() []string {
	tokens := make([]string, 0, len(m.defs))
	for t := range m.defs {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)
	return tokens
}

// Entries returns the token/definition pairs in lexicographic token order.
func (m *Mapping) Entries() []Entry {
	tokens := m.Tokens()
	entries := make([]Entry, len(tokens))
	for i, t := range tokens {
		entries[i] = Entry{Token: t, Definition: m.defs[t]}
	}
	return entries
}

// MarshalJSON renders the mapping as a JSON object keyed by token.
func (m *Mapping) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.defs)
}

// MarshalYAML renders the mapping as a YAML mapping keyed by token.
func (m *Mapping) MarshalYAML() (any, error) {
	return m.defs, nil
}
