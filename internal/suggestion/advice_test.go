package suggestion

import (
	"testing"

	"github.com/Veraticus/deslop/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvice(t *testing.T) {
	t.Run("clean", func(t *testing.T) {
		advice := Advice(0, 9, model.ScoreResult{})
		require.Len(t, advice, 2)
		assert.Contains(t, advice[0], "clean")
	})

	t.Run("borderline", func(t *testing.T) {
		advice := Advice(6, 9, model.ScoreResult{Total: 6})
		require.Len(t, advice, 3)
		assert.Contains(t, advice[0], "borderline")
	})

	t.Run("blocked lists examples per tier", func(t *testing.T) {
		var result model.ScoreResult
		result.Add(model.CategoryTier1, model.PatternHit{MatchedText: "delve into", Count: 1, Points: 3})
		result.Add(model.CategoryTier1, model.PatternHit{MatchedText: "paradigm shift", Count: 1, Points: 3})
		result.Add(model.CategoryTier2, model.PatternHit{MatchedText: "synergy", Count: 2, Points: 4})

		advice := Advice(result.Total, 9, result)
		assert.Equal(t, []string{
			"Your content would be flagged as slop and blocked.",
			"Check the highlighted phrases to see how to fix them.",
			`Remove AI-specific phrases: "delve into", "paradigm shift"`,
			`Cut corporate buzzwords: "synergy"`,
		}, advice)
	})

	t.Run("blocked without tier hits gets generic advice", func(t *testing.T) {
		var result model.ScoreResult
		result.Add(model.CategoryCustom, model.PatternHit{MatchedText: "x", Count: 1, Points: 20})

		advice := Advice(result.Total, 9, result)
		assert.Len(t, advice, 4)
		assert.Equal(t, "Be more specific and less generic.", advice[2])
	})

	t.Run("emoji advice", func(t *testing.T) {
		var result model.ScoreResult
		result.Add(model.CategoryEmoji, model.PatternHit{MatchedText: "\U0001F680", Count: 2, Points: 10})

		advice := Advice(result.Total, 9, result)
		assert.Contains(t, advice, "Remove or reduce emoji usage, especially with buzzwords")
	})
}

func TestExamples_TruncatesAndLimits(t *testing.T) {
	hits := []model.PatternHit{
		{MatchedText: "a very long matched phrase that keeps going and going"},
		{MatchedText: "  "},
		{MatchedText: "two"},
		{MatchedText: "three"},
		{MatchedText: "four"},
	}
	got := examples(hits)
	require.Len(t, got, 3)
	assert.Equal(t, `"a very long matched phrase that keeps..."`, got[0])
	assert.Equal(t, `"three"`, got[2])
}
