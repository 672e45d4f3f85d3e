package pattern

import (
	"regexp"
	"strings"
)

const maxDescriptionLen = 100

type rewrite struct {
	re   *regexp.Regexp
	with string
}

// Applied in order; later rules assume the earlier ones already ran.
var describeRewrites = []rewrite{
	{regexp.MustCompile(`(?i)\\b`), ""},
	{regexp.MustCompile(`\[\\s\]\*`), " "},
	{regexp.MustCompile(`\[\\s\]`), " "},
	{regexp.MustCompile(`(?i)\[\\[ux]\{[^}]+\}-\\[ux]\{[^}]+\}\]`), "[emoji]"},
	{regexp.MustCompile(`(?i)\\[ux]\{[^}]+\}`), "[emoji]"},
	{regexp.MustCompile(`\\([^bsdwnux])`), "$1"},
	{regexp.MustCompile(`\{\d+,\d+\}`), ""},
	{regexp.MustCompile(`\{\d+,\}`), ""},
	{regexp.MustCompile(`\|`), " or "},
	{regexp.MustCompile(`\.\*`), "..."},
	{regexp.MustCompile(`[+*]\?`), ""},
}

// Describe turns a regex source into a short human-readable phrase for listings,
// e.g. `\bcircle back\b` becomes "circle back".
func Describe(source string) string {
	out := source
	for _, rw := range describeRewrites {
		out = rw.re.ReplaceAllString(out, rw.with)
	}

	out = strings.TrimSpace(out)
	runes := []rune(out)
	if len(runes) > maxDescriptionLen {
		out = string(runes[:maxDescriptionLen-3]) + "..."
	}
	return out
}
