// Package fsprobe answers existence questions about paths.
//
// IsDirectory and FileExists are total: every stat failure, including
// permission errors, collapses to false. Callers never handle errors from them.
package fsprobe

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// IsDirectory reports whether path exists and is a directory.
func IsDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// FileExists reports whether path exists and is a regular file.
// A directory at path yields false.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// SubDirectories returns the immediate child directories of dir, sorted by name.
// Symlinks to directories are followed.
func SubDirectories(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var dirs []string
	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())
		if IsDirectory(full) {
			dirs = append(dirs, full)
		}
	}

	sort.Strings(dirs)
	return dirs, nil
}

// MatchAny reports whether any top-level entry name of dir matches the
// doublestar pattern (e.g. "eslint.config.{js,mjs,ts}").
func MatchAny(dir, pattern string) (bool, error) {
	if !doublestar.ValidatePattern(pattern) {
		return false, fmt.Errorf("invalid pattern %q", pattern)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if matched, _ := doublestar.Match(pattern, entry.Name()); matched {
			return true, nil
		}
	}
	return false, nil
}

// HasFileWithSuffix reports whether dir directly contains a regular file whose
// name ends in one of suffixes. Symlinks count when they resolve to a regular
// file. Subdirectories are never descended into.
func HasFileWithSuffix(dir string, suffixes ...string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if !hasAnySuffix(name, suffixes) {
			continue
		}
		if FileExists(filepath.Join(dir, name)) {
			return true, nil
		}
	}
	return false, nil
}

func hasAnySuffix(name string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}
