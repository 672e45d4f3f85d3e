package pattern

import (
	"regexp"
	"unicode/utf8"
)

// Ensure matcher implementations satisfy Matcher.
var (
	_ Matcher = (*RegexMatcher)(nil)
	_ Matcher = (*RunMatcher)(nil)
)

// RegexMatcher evaluates a compiled RE2 expression.
type RegexMatcher struct {
	re *regexp.Regexp
}

// NewRegexMatcher wraps a compiled expression.
func NewRegexMatcher(re *regexp.Regexp) *RegexMatcher {
	return &RegexMatcher{re: re}
}

// FindAll returns the leftmost non-overlapping matches of the expression.
func (m *RegexMatcher) FindAll(text string, n int) []Span {
	locs := m.re.FindAllStringIndex(text, n)
	if len(locs) == 0 {
		return nil
	}

	spans := make([]Span, 0, len(locs))
	for _, loc := range locs {
		spans = append(spans, Span{Start: loc[0], End: loc[1]})
	}
	return spans
}

// String returns the expression source as compiled.
func (m *RegexMatcher) String() string {
	return m.re.String()
}

// RunMatcher finds runs of one repeated rune drawn from [Lo, Hi], such as "🔥🔥🔥".
// RE2 has no backreferences, so the "same character repeated" rule is matched natively.
type RunMatcher struct {
	Lo  rune
	Hi  rune
	Min int // minimum run length, counting the first rune
}

// FindAll returns maximal runs of at least Min identical runes inside the range.
func (m *RunMatcher) FindAll(text string, n int) []Span {
	var spans []Span

	i := 0
	for i < len(text) {
		if n >= 0 && len(spans) >= n {
			break
		}

		r, size := utf8.DecodeRuneInString(text[i:])
		if r < m.Lo || r > m.Hi {
			i += size
			continue
		}

		start := i
		end := i + size
		count := 1
		for end < len(text) {
			next, nextSize := utf8.DecodeRuneInString(text[end:])
			if next != r {
				break
			}
			end += nextSize
			count++
		}

		if count >= m.Min {
			spans = append(spans, Span{Start: start, End: end})
			i = end
			continue
		}
		i += size
	}

	return spans
}
