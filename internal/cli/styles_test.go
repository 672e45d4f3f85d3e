package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/deslop/internal/classification"
	"github.com/Veraticus/deslop/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatClassification(t *testing.T) {
	tests := []struct {
		class model.Classification
		want  []string
	}{
		{class: model.Clean, want: []string{SuccessIcon, "CLEAN"}},
		{class: model.Borderline, want: []string{WarningIcon, "BORDERLINE"}},
		{class: model.Blocked, want: []string{ErrorIcon, "SLOP DETECTED"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.class), func(t *testing.T) {
			out := FormatClassification(tt.class)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestCategoryStyle_UnknownFallsBack(t *testing.T) {
	assert.Equal(t, "x", strings.TrimSpace(CategoryStyle("nope").Render("x")))
}

func TestHighlight_PreservesText(t *testing.T) {
	c := classification.New()
	cfg := model.DefaultConfiguration()
	text := "We need to delve into this paradigm shift."

	matches := c.ResolveHighlightSpans(text, cfg)
	require.NotEmpty(t, matches)

	out := Highlight(text, matches)
	for _, m := range matches {
		assert.Contains(t, out, m.Text)
	}
	assert.Contains(t, out, "We need to ")

	legend := Legend(matches, c.Catalog())
	assert.Contains(t, legend, "AI Slop")
}

func TestHighlight_NoMatches(t *testing.T) {
	assert.Equal(t, "plain text", Highlight("plain text", nil))
}

func TestFormatBreakdown(t *testing.T) {
	c := classification.New()
	cfg := model.DefaultConfiguration()

	result := c.Score("Synergy, synergy and more SYNERGY.", cfg)
	out := FormatBreakdown(result, c.Catalog())
	assert.Contains(t, out, "Corporate Buzzwords")
	assert.Contains(t, out, "+6")
	assert.Contains(t, out, "x3")
	assert.Contains(t, out, `"Synergy"`)

	assert.Contains(t, FormatBreakdown(model.ScoreResult{}, c.Catalog()), "No patterns matched.")
}

func TestFormatThresholds(t *testing.T) {
	out := FormatThresholds(9, 3)
	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 6)

	assert.Contains(t, out, "Sensitivity")
	assert.Contains(t, out, "*3")
	assert.Contains(t, out, string(model.Blocked))
	assert.Contains(t, out, string(model.Borderline))
}

func TestFormatScore(t *testing.T) {
	out := FormatScore(12, 9, model.Blocked)
	assert.Contains(t, out, "Score: 12")
	assert.Contains(t, out, "(threshold 9)")
	assert.Contains(t, out, "SLOP DETECTED")
}

func TestFormatScanRun(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	out := FormatScanRun(model.ScanRun{
		Elements: 5, Clean: 2, Borderline: 1, Blocked: 1, Skipped: 1,
		StartedAt: start, FinishedAt: start.Add(1500 * time.Millisecond),
	})
	assert.Contains(t, out, "Elements: 5")
	assert.Contains(t, out, "Skipped: 1")
	assert.Contains(t, out, "1.5s")
}

func TestRenderBox(t *testing.T) {
	out := RenderBox("Title", "body")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "body")
}

func TestProgressBar(t *testing.T) {
	var buf bytes.Buffer
	bar := NewProgressBar(&buf, 2, "Scanning")
	Step(bar)
	Step(bar)
	Step(nil)
	assert.True(t, bar.IsFinished())
}
