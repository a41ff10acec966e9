// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrEmptySourcePath = errors.New("source path cannot be empty")
	ErrEmptySuffix     = errors.New("output suffix cannot be empty")
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "default" -> false (name)
//   - "./custom.yaml" -> true (relative path)
//   - "/absolute/path.yaml" -> true (absolute)
//   - "C:\windows\path.yaml" -> true (Windows)
//   - "sub/dir" -> true (contains separator)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsURL returns true if the string looks like a URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// DeriveOutputPath builds the output document path for a source file.
// The source extension is replaced by suffix + ".html"; the file lands in
// outDir when given, otherwise next to the source.
//
// Examples:
//   - ("notes/db.md", "", "_quiz") -> "notes/db_quiz.html"
//   - ("db.md", "out", "_quiz") -> "out/db_quiz.html"
func DeriveOutputPath(sourcePath, outDir, suffix string) (string, error) {
	if sourcePath == "" {
		return "", ErrEmptySourcePath
	}
	if suffix == "" {
		return "", ErrEmptySuffix
	}

	base := filepath.Base(sourcePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	name := stem + suffix + ".html"

	if outDir != "" {
		return filepath.Join(outDir, name), nil
	}
	return filepath.Join(filepath.Dir(sourcePath), name), nil
}

// WriteFileAtomic writes data to path via a temporary file in the same
// directory, so readers never observe a partially written document.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".qbank2html-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
