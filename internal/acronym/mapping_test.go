// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package acronym

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapping_InsertIfAbsent(t *testing.T) {
	m := NewMapping()
	assert.True(t, m.InsertIfAbsent("XAI", "Explainable Artificial Intelligence"))
	assert.False(t, m.InsertIfAbsent("XAI", "Something Else"))

	def, ok := m.Get("XAI")
	require.True(t, ok)
	assert.Equal(t, "Explainable Artificial Intelligence", def)

	_, ok = m.Get("ML")
	assert.False(t, ok)
}

func TestMapping_ZeroValueUsable(t *testing.T) {
	var m Mapping
	assert.True(t, m.InsertIfAbsent("AB", ""))
	assert.Equal(t, 1, m.Len())
}

func TestMapping_SortedIteration(t *testing.T) {
	m := NewMapping()
	m.InsertIfAbsent("ZZ", "z")
	m.InsertIfAbsent("AB", "a")
	m.InsertIfAbsent("AA", "aa")

	assert.Equal(t, []string{"AA", "AB", "ZZ"}, m.Tokens())
	assert.Equal(t, []Entry{{"AA", "aa"}, {"AB", "a"}, {"ZZ", "z"}}, m.Entries())
}

func TestMappingFromTokens(t *testing.T) {
	m := MappingFromTokens([]string{"B2", "A1", "B2"})
	assert.Equal(t, []Entry{{Token: "A1"}, {Token: "B2"}}, m.Entries())
}

func TestMapping_MarshalJSON(t *testing.T) {
	m := NewMapping()
	m.InsertIfAbsent("XAI", "Explainable Artificial Intelligence")
	m.InsertIfAbsent("AI", "Artificial Intelligence")

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"AI":"Artificial Intelligence","XAI":"Explainable Artificial Intelligence"}`, string(data))
}
