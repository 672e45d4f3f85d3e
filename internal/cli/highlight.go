package cli

import (
	"strings"

	"github.com/Veraticus/deslop/internal/classification"
	"github.com/Veraticus/deslop/internal/model"
)

// Highlight renders text with each match styled by its category.
func Highlight(text string, matches []model.Match) string {
	var b strings.Builder
	for _, seg := range classification.Segments(text, matches) {
		if !seg.Highlighted() {
			b.WriteString(seg.Text)
			continue
		}
		b.WriteString(CategoryStyle(seg.Match.Category).Render(seg.Text))
	}
	return b.String()
}

// Legend lists the categories present in matches, each in its own color.
func Legend(matches []model.Match, catalog *classification.Catalog) string {
	seen := make(map[model.CategoryName]bool)
	var parts []string
	for _, m := range matches {
		if seen[m.Category] {
			continue
		}
		seen[m.Category] = true
		label := string(m.Category)
		if cat, ok := catalog.Category(m.Category); ok {
			label = cat.Label
		}
		parts = append(parts, CategoryStyle(m.Category).Render(" "+label+" "))
	}
	return strings.Join(parts, " ")
}
