package pattern

import "strings"

// Pattern is an immutable lexical rule. Global patterns count every
// non-overlapping occurrence; the others count at most the first one.
type Pattern struct {
	matcher Matcher
	Source  string
	Flags   string
	Global  bool
}

// New builds a pattern around an already constructed matcher.
func New(source, flags string, m Matcher) Pattern {
	return Pattern{
		Source:  source,
		Flags:   flags,
		Global:  strings.Contains(flags, "g"),
		matcher: m,
	}
}

// FindAll returns the spans this pattern contributes for text.
func (p Pattern) FindAll(text string) []Span {
	if p.matcher == nil || text == "" {
		return nil
	}

	n := 1
	if p.Global {
		n = -1
	}
	return p.matcher.FindAll(text, n)
}

// Count returns how many occurrences this pattern contributes for text.
func (p Pattern) Count(text string) int {
	return len(p.FindAll(text))
}

// String renders the pattern in "/body/flags" literal form.
func (p Pattern) String() string {
	return "/" + p.Source + "/" + p.Flags
}
