package suggestion

import (
	"testing"

	"github.com/Veraticus/deslop/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	tests := []struct {
		name     string
		phrase   string
		category model.CategoryName
		want     string
	}{
		{
			name:     "exact key beats tier fallback",
			phrase:   "leverage",
			category: model.CategoryTier2,
			want:     "Try: \"use\", \"apply\", or \"take advantage of\"",
		},
		{
			name:     "case and surrounding space ignored",
			phrase:   "  Circle Back ",
			category: model.CategoryTier2,
			want:     "Say: \"follow up\", \"return to\", or \"revisit\"",
		},
		{
			name:     "phrase contains a key",
			phrase:   "let's delve into it",
			category: model.CategoryTier1,
			want:     "Try: \"explore\", \"examine\", or just be specific about what you're doing",
		},
		{
			name:     "key contains the phrase",
			phrase:   "paradigm",
			category: model.CategoryTier1,
			want:     "Use concrete terms: What specifically changed?",
		},
		{
			name:     "em dash",
			phrase:   "—",
			category: model.CategoryEmDash,
			want:     "Em dashes are a telltale sign of AI-generated or overly dramatic content. Use simple punctuation instead.",
		},
		{
			name:     "unknown phrase falls back to category",
			phrase:   "zzzqqq",
			category: model.CategoryTier3,
			want:     "This is marketing spam language. Remove hype and be factual.",
		},
		{
			name:     "unknown category falls back to generic",
			phrase:   "zzzqqq",
			category: "mystery",
			want:     "Consider rewriting this phrase to be more specific and less generic.",
		},
		{
			name:     "empty phrase uses fallback",
			phrase:   "   ",
			category: model.CategoryEmoji,
			want:     Fallback(model.CategoryEmoji),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Suggest(tt.phrase, tt.category))
		})
	}
}

func TestSuggest_FirstEntryWinsSubstring(t *testing.T) {
	assert.Equal(t, exact["deep dive"], Suggest("dive", model.CategoryTier1))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "café", Normalize(" CAFÉ "))
	assert.Equal(t, "", Normalize("\t\n"))
}

func TestFallback_NeverEmpty(t *testing.T) {
	categories := []model.CategoryName{
		model.CategoryTier1, model.CategoryTier2, model.CategoryTier3,
		model.CategoryEmoji, model.CategoryStopWords, model.CategoryEmDash,
		model.CategoryPolitical, model.CategoryYouTubeClickbait,
		model.CategoryYouTubeLowEffort, model.CategoryCustom, "",
	}
	for _, c := range categories {
		assert.NotEmpty(t, Fallback(c), string(c))
	}
}

func TestSuggestions_KeysAreNormalized(t *testing.T) {
	for _, e := range suggestions {
		assert.Equal(t, Normalize(e.phrase), e.phrase)
	}
}
