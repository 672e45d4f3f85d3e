package classification

import (
	"sort"
	"strings"

	"github.com/Veraticus/deslop/internal/model"
)

// resolve gathers positional matches from rules and keeps the ones that do not
// overlap an earlier accepted match. Ties on start keep evaluation order.
func resolve(rules []rule, text string) []model.Match {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var all []model.Match
	for _, r := range rules {
		for _, span := range r.pattern.FindAll(text) {
			if span.Len() <= 0 {
				continue
			}
			all = append(all, model.Match{
				Text:     text[span.Start:span.End],
				Start:    span.Start,
				End:      span.End,
				Category: r.category,
			})
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Start < all[j].Start
	})

	accepted := make([]model.Match, 0, len(all))
	lastEnd := 0
	for _, m := range all {
		if m.Start < lastEnd {
			continue
		}
		accepted = append(accepted, m)
		lastEnd = m.End
	}

	return accepted
}

// Segment is a run of text that is either plain or a highlighted match.
type Segment struct {
	Match *model.Match
	Text  string
}

// Highlighted reports whether the segment is a match.
func (s Segment) Highlighted() bool {
	return s.Match != nil
}

// Segments splits text into alternating plain and matched segments.
// Concatenating every segment's Text reproduces text.
func Segments(text string, matches []model.Match) []Segment {
	segments := make([]Segment, 0, 2*len(matches)+1)
	pos := 0
	for i := range matches {
		m := &matches[i]
		if m.Start < pos || m.End > len(text) {
			continue
		}
		if m.Start > pos {
			segments = append(segments, Segment{Text: text[pos:m.Start]})
		}
		segments = append(segments, Segment{Text: text[m.Start:m.End], Match: m})
		pos = m.End
	}
	if pos < len(text) {
		segments = append(segments, Segment{Text: text[pos:]})
	}
	return segments
}
