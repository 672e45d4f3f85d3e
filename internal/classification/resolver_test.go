package classification

import (
	"testing"

	"github.com/Veraticus/deslop/internal/model"
	"github.com/Veraticus/deslop/internal/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRule(literal string, category model.CategoryName, weight int) rule {
	return rule{pattern: pattern.MustParse(literal), category: category, weight: weight}
}

func TestResolve_EarlierStartWins(t *testing.T) {
	rules := []rule{
		testRule(`/\bbest practices\b/gi`, model.CategoryTier2, 2),
		testRule(`/\bpractices are\b/gi`, model.CategoryTier1, 3),
		testRule(`/\bgreat\b/gi`, model.CategoryTier3, 1),
	}
	text := "Our best practices are great."

	got := resolve(rules, text)
	require.Len(t, got, 2)
	assert.Equal(t, "best practices", got[0].Text)
	assert.Equal(t, model.CategoryTier2, got[0].Category)
	assert.Equal(t, "great", got[1].Text)
}

func TestResolve_TieKeepsEvaluationOrder(t *testing.T) {
	rules := []rule{
		testRule(`/\bsyn\w*/gi`, model.CategoryTier1, 3),
		testRule(`/\bsynergy\b/gi`, model.CategoryTier2, 2),
	}

	got := resolve(rules, "synergy")
	require.Len(t, got, 1)
	assert.Equal(t, model.CategoryTier1, got[0].Category)
}

func TestResolve_SkipsEmptySpans(t *testing.T) {
	rules := []rule{testRule(`/x*/g`, model.CategoryCustom, 1)}
	got := resolve(rules, "abc")
	assert.Empty(t, got)
}

func TestScore_CountsOverlaps(t *testing.T) {
	rules := []rule{
		testRule(`/\bbest practices\b/gi`, model.CategoryTier2, 2),
		testRule(`/\bpractices are\b/gi`, model.CategoryTier1, 3),
	}
	result := score(rules, "Our best practices are great.")
	assert.Equal(t, 5, result.Total)
	assert.Equal(t, 2, result.HitCount())
}

func TestSegments(t *testing.T) {
	text := "one two three"
	matches := []model.Match{
		{Text: "two", Start: 4, End: 7, Category: model.CategoryTier1},
	}

	segs := Segments(text, matches)
	require.Len(t, segs, 3)
	assert.Equal(t, "one ", segs[0].Text)
	assert.False(t, segs[0].Highlighted())
	assert.Equal(t, "two", segs[1].Text)
	assert.True(t, segs[1].Highlighted())
	assert.Equal(t, model.CategoryTier1, segs[1].Match.Category)
	assert.Equal(t, " three", segs[2].Text)

	assert.Empty(t, Segments("", nil))
	assert.Equal(t, []Segment{{Text: "whole"}}, Segments("whole", nil))
}
