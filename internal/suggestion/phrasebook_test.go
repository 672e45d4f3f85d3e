package suggestion

import (
	"math/rand/v2"
	"testing"

	"github.com/Veraticus/deslop/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhrasebook(t *testing.T) {
	entries := Phrasebook()
	require.NotEmpty(t, entries)
	assert.Equal(t, "delve into", entries[0].Slop)

	entries[0].Slop = "mutated"
	assert.Equal(t, "delve into", Phrasebook()[0].Slop)
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name   string
		tier   model.CategoryName
		search string
		check  func(t *testing.T, got []model.PhrasebookEntry)
	}{
		{
			name: "all",
			check: func(t *testing.T, got []model.PhrasebookEntry) {
				assert.Len(t, got, len(phrasebook))
			},
		},
		{
			name: "by tier",
			tier: model.CategoryStopWords,
			check: func(t *testing.T, got []model.PhrasebookEntry) {
				require.NotEmpty(t, got)
				for _, e := range got {
					assert.Equal(t, model.CategoryStopWords, e.Tier)
				}
			},
		},
		{
			name:   "search is case-insensitive",
			search: "PARADIGM",
			check: func(t *testing.T, got []model.PhrasebookEntry) {
				require.NotEmpty(t, got)
				assert.Equal(t, "paradigm shift", got[0].Slop)
			},
		},
		{
			name:   "no match",
			search: "zzzqqq",
			check: func(t *testing.T, got []model.PhrasebookEntry) {
				assert.Empty(t, got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Filter(tt.tier, tt.search))
		})
	}
}

func TestSpin(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	first := Spin(rand.New(rand.NewPCG(1, 2)))
	assert.Equal(t, first, Spin(rng))
	assert.Contains(t, phrasebook, Spin(nil))
}

func TestTierLabel(t *testing.T) {
	assert.Equal(t, "AI Slop - 3pts", TierLabel(model.CategoryTier1))
	assert.Equal(t, "political", TierLabel(model.CategoryPolitical))
}
