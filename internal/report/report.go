// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report provides the reporting channel injected into the acronym and
// title pipelines. A *slog.Logger satisfies Reporter directly.
package report

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Reporter receives progress, warnings, and recoverable errors from a
// pipeline.
type Reporter interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Format selects the handler used by New.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseLevel maps a config string to a slog level. Unknown values fall back
// to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a slog-backed Reporter writing to w.
func New(w io.Writer, level slog.Level, format Format) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Timestamps add noise to CLI output.
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}

	var handler slog.Handler
	if format == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Discard returns a Reporter that drops everything.
func Discard() Reporter {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Entry is one message captured by a Recorder.
type Entry struct {
	Level   slog.Level
	Message string
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %s", e.Level, e.Message)
}

// Recorder keeps every message in memory. Tests use it to assert on what a
// pipeline reported.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

func (r *Recorder) Info(msg string, args ...any)  { r.add(slog.LevelInfo, msg, args) }
func (r *Recorder) Warn(msg string, args ...any)  { r.add(slog.LevelWarn, msg, args) }
func (r *Recorder) Error(msg string, args ...any) { r.add(slog.LevelError, msg, args) }

func (r *Recorder) add(level slog.Level, msg string, args []any) {
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i+1 < len(args); i += 2 {
		fmt.Fprintf(&b, " %v=%v", args[i], args[i+1])
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Message: b.String()})
}

// Entries returns a copy of the recorded messages in order.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Count returns how many messages were recorded at level.
func (r *Recorder) Count(level slog.Level) int {
	n := 0
	for _, e := range r.Entries() {
		if e.Level == level {
			n++
		}
	}
	return n
}
