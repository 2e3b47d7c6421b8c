// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package acronym

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindow(t *testing.T) {
	assert.Equal(t, "mma delta ", Window("alpha beta gamma delta ", 10))
	assert.Equal(t, "short", Window("short", 100))
	assert.Equal(t, "naïve ", Window("café naïve ", 6), "counts characters, not bytes")
	assert.Equal(t, "all", Window("all", 0))
}

func TestInferDefinition(t *testing.T) {
	tests := []struct {
		name       string
		prefix     string
		token      string
		multiplier int
		want       string
	}{
		{
			name:   "last N words title-cased",
			prefix: "explainable artificial intelligence ",
			token:  "XAI",
			want:   "Explainable Artificial Intelligence",
		},
		{
			name:   "only the last N words are taken",
			prefix: "In this work we study graph neural networks ",
			token:  "GNN",
			want:   "Graph Neural Networks",
		},
		{
			name:   "fewer words than letters",
			prefix: "deep ",
			token:  "DLNN",
			want:   "Deep",
		},
		{
			name:   "hyphens split words",
			prefix: "we rely on self-supervised learning ",
			token:  "SSL",
			want:   "Self Supervised Learning",
		},
		{
			name:   "digits and punctuation dropped",
			prefix: "results: long short-term memory, 2 ",
			token:  "LSTM",
			want:   "Long Short Term Memory",
		},
		{
			name:   "markup unwrapped",
			prefix: `the \emph{graph neural} \textbf{network} `,
			token:  "GNN",
			want:   "Graph Neural Network",
		},
		{
			name:   "casing normalized",
			prefix: "RANDOM fOrEsT ",
			token:  "RF",
			want:   "Random Forest",
		},
		{
			name:       "window truncates mid-word",
			prefix:     "alpha beta gamma delta ",
			token:      "AB",
			multiplier: 5,
			want:       "Mma Delta",
		},
		{
			name:   "nothing usable",
			prefix: "123 -- 4.5 ",
			token:  "NA",
			want:   "",
		},
		{
			name:   "empty prefix",
			prefix: "",
			token:  "AB",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferDefinition(tt.prefix, tt.token, tt.multiplier))
		})
	}
}

func TestInferDefinition_WordCount(t *testing.T) {
	prose := "one two three four five six seven eight "
	for _, token := range []string{"AB", "ABC", "ABCDE", "ABCDEFGHIJ", "ABCDEFGHIJKL"} {
		def := InferDefinition(prose, token, DefaultWindowMultiplier)
		want := min(len(token), 8)
		assert.Len(t, strings.Fields(def), want, "token %s", token)
	}
}
