// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package texutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

// DefaultExtension is the file extension searched for in folder inputs.
const DefaultExtension = ".tex"

// Configuration errors. They abort a run.
var (
	ErrNoInput        = errors.New("at least one of --file or --folder must be specified")
	ErrFolderNotFound = errors.New("folder not found")
	ErrNoFiles        = errors.New("no matching files found")
)

// Input names where documents come from. File wins over Folder when both are
// set.
type Input struct {
	File      string
	Folder    string
	Extension string
}

// Discover resolves an Input into the ordered list of files to process.
func Discover(in Input) ([]string, error) {
	if in.File == "" && in.Folder == "" {
		return nil, ErrNoInput
	}
	if in.File != "" {
		return []string{in.File}, nil
	}

	info, err := os.Stat(in.Folder)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrFolderNotFound, in.Folder)
	}

	files, err := FindFiles(in.Folder, in.Extension)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no %s files under %s", ErrNoFiles, extOrDefault(in.Extension), in.Folder)
	}
	return files, nil
}

// FindFiles walks root recursively and returns every regular file with the
// given extension, sorted by path.
func FindFiles(root, ext string) ([]string, error) {
	ext = extOrDefault(ext)
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if filepath.Ext(path) == ext {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	sort.Strings(files)
	return files, nil
}

// ReadText reads a whole file, replacing each invalid UTF-8 byte with U+FFFD.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return decodeReplacing(data), nil
}

// decodeReplacing emits one U+FFFD per undecodable byte, so a run of bad
// bytes keeps its length in runes.
func decodeReplacing(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	var b strings.Builder
	b.Grow(len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size <= 1 {
			b.WriteRune(utf8.RuneError)
			data = data[1:]
			continue
		}
		b.Write(data[:size])
		data = data[size:]
	}
	return b.String()
}

// ReadConcat reads every file and joins the contents with newlines, in the
// order given.
func ReadConcat(paths []string) (string, error) {
	chunks := make([]string, 0, len(paths))
	for _, p := range paths {
		text, err := ReadText(p)
		if err != nil {
			return "", err
		}
		chunks = append(chunks, text)
	}
	return strings.Join(chunks, "\n"), nil
}

func extOrDefault(ext string) string {
	if ext == "" {
		return DefaultExtension
	}
	if !strings.HasPrefix(ext, ".") {
		return "." + ext
	}
	return ext
}
