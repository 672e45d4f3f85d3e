package scan

import (
	"strings"

	"github.com/Veraticus/deslop/internal/model"
)

// Element is one scannable unit of a document: a post-sized paragraph, or a
// single line in the YouTube context where titles and comments are one-liners.
type Element struct {
	Source string
	Text   string
	Index  int
}

// Split breaks doc into elements for the given context.
func Split(doc Document, ctx model.ScanContext) []Element {
	var parts []string
	if ctx == model.ContextYouTube {
		parts = lines(doc.Text)
	} else {
		parts = paragraphs(doc.Text)
	}

	elements := make([]Element, len(parts))
	for i, p := range parts {
		elements[i] = Element{Source: doc.Path, Index: i, Text: p}
	}
	return elements
}

// paragraphs splits on blank lines, keeping the line breaks inside a paragraph.
func paragraphs(text string) []string {
	var (
		out     []string
		current []string
	)
	flush := func() {
		if len(current) > 0 {
			out = append(out, strings.Join(current, "\n"))
			current = current[:0]
		}
	}

	for _, line := range strings.Split(normalizeNewlines(text), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}
		current = append(current, trimmed)
	}
	flush()
	return out
}

func lines(text string) []string {
	var out []string
	for _, line := range strings.Split(normalizeNewlines(text), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeNewlines(text string) string {
	return strings.ReplaceAll(text, "\r\n", "\n")
}
