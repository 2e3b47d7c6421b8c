// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"warn":    slog.LevelWarn,
		" error ": slog.LevelError,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "ParseLevel(%q)", in)
	}
}

func TestNew_TextOmitsTimestamp(t *testing.T) {
	var buf bytes.Buffer
	var r Reporter = New(&buf, slog.LevelInfo, FormatText)

	r.Info("processed", "file", "main.tex")
	r.Warn("skipped")

	out := buf.String()
	assert.Contains(t, out, "level=INFO msg=processed file=main.tex")
	assert.Contains(t, out, "level=WARN msg=skipped")
	assert.NotContains(t, out, "time=")
}

func TestNew_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, slog.LevelWarn, FormatJSON)

	r.Info("hidden")
	r.Error("failed to read", "path", "a.tex")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "failed to read", rec["msg"])
	assert.Equal(t, "a.tex", rec["path"])
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Info("one", "k", 1)
	r.Error("two")
	r.Error("three")

	entries := r.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "one k=1", entries[0].Message)
	assert.Equal(t, 2, r.Count(slog.LevelError))
	assert.Equal(t, 0, r.Count(slog.LevelWarn))
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard().Error("nothing to see")
	})
}
