package suggestion

import (
	"fmt"
	"strings"

	"github.com/Veraticus/deslop/internal/model"
)

const (
	maxExamples      = 3
	maxExampleLength = 40
)

// Advice returns score-level guidance: reassurance for clean text, a nudge for
// borderline text, and concrete phrases to cut for blocked text.
func Advice(score, threshold int, result model.ScoreResult) []string {
	switch {
	case score <= 0:
		return []string{
			"Your content looks clean! No slop patterns detected.",
			"Keep writing authentic, specific content.",
		}
	case score < threshold:
		return []string{
			"Your content is borderline but would pass the filter.",
			"Consider removing some buzzwords to be safer.",
			"Check the highlighted phrases for specific suggestions.",
		}
	}

	advice := []string{
		"Your content would be flagged as slop and blocked.",
		"Check the highlighted phrases to see how to fix them.",
	}

	tiers := []struct {
		name   model.CategoryName
		prefix string
	}{
		{model.CategoryTier1, "Remove AI-specific phrases"},
		{model.CategoryTier2, "Cut corporate buzzwords"},
		{model.CategoryTier3, "Remove marketing spam"},
	}
	for _, tier := range tiers {
		if examples := examples(result.Matches[tier.name]); len(examples) > 0 {
			advice = append(advice, fmt.Sprintf("%s: %s", tier.prefix, strings.Join(examples, ", ")))
		}
	}
	if len(result.Matches[model.CategoryEmoji]) > 0 {
		advice = append(advice, "Remove or reduce emoji usage, especially with buzzwords")
	}

	if len(advice) <= 2 {
		advice = append(advice,
			"Be more specific and less generic.",
			"Use concrete examples instead of abstract concepts.",
		)
	}
	return advice
}

// examples quotes the first matched text of up to maxExamples hits.
func examples(hits []model.PatternHit) []string {
	var out []string
	for _, hit := range hits {
		if len(out) == maxExamples {
			break
		}
		text := strings.TrimSpace(hit.MatchedText)
		if text == "" {
			continue
		}
		if runes := []rune(text); len(runes) > maxExampleLength {
			text = string(runes[:maxExampleLength-3]) + "..."
		}
		out = append(out, fmt.Sprintf("%q", text))
	}
	return out
}
