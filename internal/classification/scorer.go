package classification

import (
	"strings"

	"github.com/Veraticus/deslop/internal/model"
)

// score evaluates rules against text. Every non-overlapping occurrence of a
// global pattern counts; overlaps between different patterns are not removed.
func score(rules []rule, text string) model.ScoreResult {
	var result model.ScoreResult
	if strings.TrimSpace(text) == "" {
		return result
	}

	for _, r := range rules {
		spans := r.pattern.FindAll(text)
		if len(spans) == 0 {
			continue
		}
		first := spans[0]
		result.Add(r.category, model.PatternHit{
			Pattern:     r.pattern.Source,
			MatchedText: text[first.Start:first.End],
			Count:       len(spans),
			Points:      len(spans) * r.weight,
		})
	}

	return result
}
