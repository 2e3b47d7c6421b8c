// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package titles

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/pdiddy/latex-doctor/internal/report"
	"github.com/pdiddy/latex-doctor/pkg/types"
)

// DefaultOutputDir receives rewritten files when not editing in place.
const DefaultOutputDir = "output"

// ErrUnknownMode is returned when a requested mode is not one of
// types.TitleModes. Standardize itself never fails on an unknown mode.
var ErrUnknownMode = errors.New("unknown title mode")

// ErrInvalidEncoding is returned for files that are not valid UTF-8. Such
// files are skipped rather than rewritten.
var ErrInvalidEncoding = errors.New("file is not valid UTF-8")

// Options configures RewriteFiles.
type Options struct {
	Mode types.TitleMode

	// InPlace overwrites each input file.
	InPlace bool

	// OutputDir is the root of the mirrored output tree (default "output").
	OutputDir string

	// Root is the folder the inputs were discovered under. When set, outputs
	// keep their path relative to Root; otherwise only the file name is kept.
	Root string
}

// BatchResult holds the outcome of a RewriteFiles run.
type BatchResult struct {
	Processed int
	Failed    int
}

// Total returns the number of files handled.
func (r BatchResult) Total() int {
	return r.Processed + r.Failed
}

// HasFailures reports whether any file could not be read or written.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// OutputPath returns where the rewritten version of file is written.
func OutputPath(file string, opts Options) (string, error) {
	if opts.InPlace {
		return file, nil
	}
	outDir := opts.OutputDir
	if outDir == "" {
		outDir = DefaultOutputDir
	}
	if opts.Root == "" {
		return filepath.Join(outDir, filepath.Base(file)), nil
	}
	rel, err := filepath.Rel(opts.Root, file)
	if err != nil {
		return "", fmt.Errorf("resolving %s relative to %s: %w", file, opts.Root, err)
	}
	return filepath.Join(outDir, rel), nil
}

// RewriteFile rewrites the headings of a single file and returns the path
// written.
func RewriteFile(file string, opts Options) (string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", file, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("failed to read %s: %w", file, ErrInvalidEncoding)
	}

	out, err := OutputPath(file, opts)
	if err != nil {
		return "", err
	}

	content := Rewrite(string(data), opts.Mode)

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", out, err)
	}
	if err := os.WriteFile(out, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", out, err)
	}
	return out, nil
}

// RewriteFiles processes files one by one. A file that cannot be read or
// written is reported and skipped; the rest of the batch still runs.
func RewriteFiles(files []string, opts Options, rep report.Reporter) BatchResult {
	var result BatchResult
	for _, f := range files {
		out, err := RewriteFile(f, opts)
		if err != nil {
			rep.Error("rewrite failed", "file", f, "err", err)
			result.Failed++
			continue
		}
		rep.Info("processed", "in", f, "out", out, "mode", opts.Mode)
		result.Processed++
	}
	rep.Info("titles batch finished", "processed", result.Processed, "failed", result.Failed)
	return result
}
