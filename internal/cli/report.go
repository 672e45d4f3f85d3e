package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/deslop/internal/classification"
	"github.com/Veraticus/deslop/internal/model"
	"github.com/Veraticus/deslop/internal/pattern"
)

// FormatBreakdown lists each contributing category with its points and the
// patterns that matched.
func FormatBreakdown(result model.ScoreResult, catalog *classification.Catalog) string {
	if result.Total == 0 {
		return SubtleStyle.Render("No patterns matched.")
	}

	var b strings.Builder
	for _, name := range result.Order {
		label := string(name)
		if cat, ok := catalog.Category(name); ok {
			label = cat.Label
		}
		fmt.Fprintf(&b, "%s %s\n",
			CategoryStyle(name).Render(" "+label+" "),
			BoldStyle.Render(fmt.Sprintf("+%d", result.CategoryPoints(name))))

		for _, hit := range result.Matches[name] {
			times := ""
			if hit.Count > 1 {
				times = fmt.Sprintf(" x%d", hit.Count)
			}
			fmt.Fprintf(&b, "  %s %s%s %s\n",
				SubtleStyle.Render("•"),
				pattern.Describe(hit.Pattern),
				times,
				SubtleStyle.Render(fmt.Sprintf("(%q, %d pts)", hit.MatchedText, hit.Points)))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatScore renders the total against the threshold with the verdict.
func FormatScore(total, threshold int, class model.Classification) string {
	return fmt.Sprintf("%s %s\n%s",
		BoldStyle.Render(fmt.Sprintf("Score: %d", total)),
		SubtleStyle.Render(fmt.Sprintf("(threshold %d)", threshold)),
		FormatClassification(class))
}

// FormatThresholds renders the verdict for a score at every sensitivity.
func FormatThresholds(score int, current int) string {
	var b strings.Builder
	b.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%-12s %-10s %s", "Sensitivity", "Threshold", "Result")))
	b.WriteString("\n")
	for _, v := range classification.PassesAt(score) {
		marker := " "
		if v.Sensitivity == current {
			marker = "*"
		}
		row := fmt.Sprintf("%s%-11d %-10d %s", marker, v.Sensitivity, v.Threshold, v.Classification)
		b.WriteString(ClassificationStyle(v.Classification).UnsetBold().Render(row))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatScanRun summarizes a completed scan.
func FormatScanRun(run model.ScanRun) string {
	return fmt.Sprintf(
		"  • Elements: %d\n  • Clean: %s\n  • Borderline: %s\n  • Blocked: %s\n  • Skipped: %d\n  • Time taken: %s",
		run.Elements,
		SuccessStyle.Render(fmt.Sprint(run.Clean)),
		WarningStyle.Render(fmt.Sprint(run.Borderline)),
		ErrorStyle.Render(fmt.Sprint(run.Blocked)),
		run.Skipped,
		run.Duration().Round(time.Millisecond))
}
