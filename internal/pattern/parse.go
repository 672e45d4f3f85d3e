package pattern

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Veraticus/deslop/internal/common"
)

// literalPattern splits a "/body/flags" literal. The body is greedy so it may contain slashes.
var literalPattern = regexp.MustCompile(`^/(.+)/([gimuy]*)$`)

// Parse compiles a "/body/flags" literal such as `/\bsynergy\b/gi`.
func Parse(literal string) (Pattern, error) {
	parts := literalPattern.FindStringSubmatch(literal)
	if parts == nil {
		return Pattern{}, fmt.Errorf("%w: %q is not a /body/flags literal", common.ErrInvalidPattern, literal)
	}
	return Compile(parts[1], parts[2])
}

// MustParse is like Parse but panics on error. It is meant for built-in catalog data.
func MustParse(literal string) Pattern {
	p, err := Parse(literal)
	if err != nil {
		panic(err)
	}
	return p
}

// Compile builds a pattern from a regex body and literal flags.
// Supported flags: g (global), i (case-insensitive), m (multi-line anchors),
// u (unicode escapes) and y (accepted, no effect on counting).
func Compile(body, flags string) (Pattern, error) {
	if body == "" {
		return Pattern{}, fmt.Errorf("%w: empty pattern body", common.ErrInvalidPattern)
	}
	if err := validateFlags(flags); err != nil {
		return Pattern{}, err
	}

	expr := translateEscapes(body)
	if inline := inlineFlags(flags); inline != "" {
		expr = "(?" + inline + ")" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, fmt.Errorf("%w: %q: %v", common.ErrInvalidPattern, body, err)
	}

	return New(body, flags, NewRegexMatcher(re)), nil
}

func validateFlags(flags string) error {
	seen := make(map[rune]bool, len(flags))
	for _, f := range flags {
		if !strings.ContainsRune("gimuy", f) {
			return fmt.Errorf("%w: unknown flag %q", common.ErrInvalidPattern, f)
		}
		if seen[f] {
			return fmt.Errorf("%w: duplicate flag %q", common.ErrInvalidPattern, f)
		}
		seen[f] = true
	}
	return nil
}

func inlineFlags(flags string) string {
	var b strings.Builder
	if strings.Contains(flags, "i") {
		b.WriteByte('i')
	}
	if strings.Contains(flags, "m") {
		b.WriteByte('m')
	}
	return b.String()
}

// translateEscapes rewrites \u{1F300} and \u00E9 escapes into RE2's \x{...} form.
// Escaped backslashes are copied through untouched.
func translateEscapes(body string) string {
	if !strings.Contains(body, `\u`) {
		return body
	}

	var b strings.Builder
	b.Grow(len(body))

	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 >= len(body) {
			b.WriteByte(c)
			continue
		}

		next := body[i+1]
		if next != 'u' {
			b.WriteByte(c)
			b.WriteByte(next)
			i++
			continue
		}

		rest := body[i+2:]
		switch {
		case strings.HasPrefix(rest, "{"):
			closing := strings.IndexByte(rest, '}')
			if closing > 1 && isHex(rest[1:closing]) {
				b.WriteString(`\x{` + rest[1:closing] + `}`)
				i += 2 + closing
				continue
			}
		case len(rest) >= 4 && isHex(rest[:4]):
			b.WriteString(`\x{` + rest[:4] + `}`)
			i += 5
			continue
		}

		// Not a recognizable escape; leave it for the compiler to reject.
		b.WriteByte(c)
		b.WriteByte(next)
		i++
	}

	return b.String()
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
