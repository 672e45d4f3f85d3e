package classification

import (
	"testing"

	"github.com/Veraticus/deslop/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreshold(t *testing.T) {
	tests := []struct {
		sensitivity int
		want        int
	}{
		{1, 15},
		{2, 12},
		{3, 9},
		{4, 6},
		{5, 4},
		{0, 9},
		{6, 9},
		{-3, 9},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Threshold(tt.sensitivity), "sensitivity %d", tt.sensitivity)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		score     int
		threshold int
		want      model.Classification
	}{
		{"zero is clean", 0, 9, model.Clean},
		{"below threshold", 8, 9, model.Borderline},
		{"at threshold", 9, 9, model.Blocked},
		{"above threshold", 20, 9, model.Blocked},
		{"one point", 1, 4, model.Borderline},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.score, tt.threshold))
		})
	}
}

func TestActiveCategories(t *testing.T) {
	tests := []struct {
		name string
		cfg  model.Configuration
		want []model.CategoryName
	}{
		{
			name: "sensitivity 1",
			cfg:  configAt(1),
			want: []model.CategoryName{model.CategoryTier1, model.CategoryStopWords, model.CategoryEmDash},
		},
		{
			name: "sensitivity 3",
			cfg:  configAt(3),
			want: []model.CategoryName{model.CategoryTier1, model.CategoryTier2, model.CategoryStopWords, model.CategoryEmDash},
		},
		{
			name: "sensitivity 4",
			cfg:  configAt(4),
			want: []model.CategoryName{model.CategoryTier1, model.CategoryTier2, model.CategoryTier3, model.CategoryStopWords, model.CategoryEmDash},
		},
		{
			name: "youtube context adds platform categories",
			cfg: model.Configuration{
				Sensitivity: 1,
				BlockTier1:  true,
				Context:     model.ContextYouTube,
			},
			want: []model.CategoryName{model.CategoryTier1, model.CategoryYouTubeClickbait, model.CategoryYouTubeLowEffort},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ActiveCategories(tt.cfg))
		})
	}
}

func TestPassesAt(t *testing.T) {
	verdicts := PassesAt(9)
	require.Len(t, verdicts, 5)

	blocked := make([]bool, 0, len(verdicts))
	for _, v := range verdicts {
		blocked = append(blocked, v.Blocked())
	}
	assert.Equal(t, []bool{false, false, true, true, true}, blocked)
	assert.Equal(t, 15, verdicts[0].Threshold)
	assert.Equal(t, model.Borderline, verdicts[0].Classification)

	for _, v := range PassesAt(0) {
		assert.Equal(t, model.Clean, v.Classification)
	}
}
