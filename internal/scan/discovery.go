// Package scan runs the classifier over documents split into elements, the
// way a page scanner walks posts and comments.
package scan

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Discover expands glob patterns (with ** support) into a sorted,
// deduplicated list of regular files. Invalid patterns are logged and skipped.
func Discover(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	for _, p := range patterns {
		if !doublestar.ValidatePattern(filepath.ToSlash(p)) {
			slog.Warn("Skipping invalid glob pattern", "pattern", p)
			continue
		}

		matches, err := doublestar.FilepathGlob(p, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("failed to expand %q: %w", p, err)
		}

		for _, path := range matches {
			absPath, err := filepath.Abs(path)
			if err != nil {
				absPath = path
			}
			if seen[absPath] {
				continue
			}
			seen[absPath] = true
			result = append(result, path)
		}
	}

	sort.Strings(result)
	return result, nil
}

// Document is a named body of text to scan.
type Document struct {
	Path string
	Text string
}

// LoadDocuments reads each path into a Document.
func LoadDocuments(paths []string) ([]Document, error) {
	docs := make([]Document, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path) //nolint:gosec // paths come from the user's own globs
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		docs = append(docs, Document{Path: path, Text: string(data)})
	}
	return docs, nil
}
