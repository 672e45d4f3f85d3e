// Package pattern compiles lexical slop rules and evaluates them against text.
package pattern

// Span is a half-open byte range [Start, End) of the evaluated text.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Matcher finds non-overlapping occurrences of a rule in a text.
type Matcher interface {
	// FindAll returns at most n spans in ascending order. A negative n returns all of them.
	FindAll(text string, n int) []Span
}
