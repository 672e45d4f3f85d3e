package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/deslop/internal/classification"
	"github.com/Veraticus/deslop/internal/cli"
	"github.com/Veraticus/deslop/internal/model"
	"github.com/Veraticus/deslop/internal/suggestion"
	"github.com/charmbracelet/lipgloss"
)

const maxSuggestions = 8

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	editorBox := m.theme.RoundedBox
	resultsBox := m.theme.FocusedBox
	if m.focus == FocusEditor {
		editorBox, resultsBox = resultsBox, editorBox
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.UnsetMarginBottom().Render(cli.SlopIcon+" Is my post slop?"),
		m.theme.Subtitle.Render(m.renderSettings()),
		"",
		editorBox.Render(m.editor.View()),
		resultsBox.Render(m.results.View()),
		m.help.View(m.keymap),
	)
}

// renderSettings summarizes the active classification settings.
func (m Model) renderSettings() string {
	s := m.settings.EffectiveSensitivity()
	ctx := "generic"
	if m.settings.Context == model.ContextYouTube {
		ctx = "youtube"
	}
	return fmt.Sprintf("Sensitivity %d (threshold %d) · emojis %s · political %s · context %s",
		s, classification.Threshold(s),
		onOff(m.settings.BlockEmojis), onOff(m.settings.BlockPolitical), ctx)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// renderResults builds the scrollable results pane.
func (m Model) renderResults() string {
	if strings.TrimSpace(m.analyzed) == "" {
		return m.theme.StatusPending.Render("Start typing to check your post.")
	}

	threshold := classification.Threshold(m.settings.EffectiveSensitivity())
	wrap := lipgloss.NewStyle().Width(max(m.results.Width, 20))
	catalog := m.classifier.Catalog()

	sections := []string{
		cli.FormatScore(m.result.Total, threshold, m.class),
	}

	if len(m.matches) > 0 {
		sections = append(sections,
			m.section("Highlighted", wrap.Render(cli.Highlight(m.analyzed, m.matches))),
			cli.Legend(m.matches, catalog),
			m.section("Breakdown", cli.FormatBreakdown(m.result, catalog)),
			m.section("Suggestions", wrap.Render(m.renderSuggestions())),
		)
	}

	var advice strings.Builder
	for _, line := range suggestion.Advice(m.result.Total, threshold, m.result) {
		advice.WriteString("• " + line + "\n")
	}
	sections = append(sections,
		m.section("Advice", wrap.Render(strings.TrimRight(advice.String(), "\n"))),
		m.section("Thresholds", cli.FormatThresholds(m.result.Total, m.settings.EffectiveSensitivity())),
	)

	return strings.Join(sections, "\n\n")
}

func (m Model) section(title, body string) string {
	return m.theme.Bold.Render(title) + "\n" + body
}

// renderSuggestions lists one suggestion per distinct matched phrase.
func (m Model) renderSuggestions() string {
	seen := make(map[string]bool)
	var lines []string
	for _, match := range m.matches {
		norm := suggestion.Normalize(match.Text)
		if seen[norm] {
			continue
		}
		seen[norm] = true
		lines = append(lines, fmt.Sprintf("%q → %s",
			match.Text, m.classifier.Suggest(match.Text, match.Category)))
		if len(lines) == maxSuggestions {
			break
		}
	}
	return strings.Join(lines, "\n")
}
