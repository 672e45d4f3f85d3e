// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/Veraticus/deslop/internal/model"
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#FF6B6B")
	// SuccessColor indicates clean text and successful operations.
	SuccessColor = lipgloss.Color("#4ECDC4") // Teal
	// WarningColor indicates borderline text and warnings.
	WarningColor = lipgloss.Color("#FFE66D") // Yellow
	// ErrorColor indicates blocked text and errors.
	ErrorColor = lipgloss.Color("#FF6B6B") // Red
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#95E1D3") // Light teal
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)

	// TableHeaderStyle is used for table headers.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(lipgloss.Color("#333"))

	// TableCellStyle formats table cells with appropriate padding.
	TableCellStyle = lipgloss.NewStyle().
			PaddingRight(2)
)

// categoryColors gives each category a distinct highlight background.
var categoryColors = map[model.CategoryName]lipgloss.Color{
	model.CategoryTier1:            lipgloss.Color("#E74C3C"),
	model.CategoryTier2:            lipgloss.Color("#E67E22"),
	model.CategoryTier3:            lipgloss.Color("#F1C40F"),
	model.CategoryEmoji:            lipgloss.Color("#9B59B6"),
	model.CategoryStopWords:        lipgloss.Color("#3498DB"),
	model.CategoryEmDash:           lipgloss.Color("#1ABC9C"),
	model.CategoryPolitical:        lipgloss.Color("#C0392B"),
	model.CategoryCustom:           lipgloss.Color("#7F8C8D"),
	model.CategoryYouTubeClickbait: lipgloss.Color("#D35400"),
	model.CategoryYouTubeLowEffort: lipgloss.Color("#95A5A6"),
}

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	InfoIcon    = "ℹ️"
	SlopIcon    = "🤖"
	ChartIcon   = "📊"
	FolderIcon  = "🗄️"
	CheckIcon   = "✅"
)

// CategoryStyle returns the highlight style for a category.
func CategoryStyle(name model.CategoryName) lipgloss.Style {
	color, ok := categoryColors[name]
	if !ok {
		color = SubtleColor
	}
	return lipgloss.NewStyle().
		Background(color).
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true)
}

// ClassificationStyle returns the style used to show a verdict.
func ClassificationStyle(c model.Classification) lipgloss.Style {
	switch c {
	case model.Blocked:
		return ErrorStyle.Bold(true)
	case model.Borderline:
		return WarningStyle.Bold(true)
	default:
		return SuccessStyle.Bold(true)
	}
}

// FormatClassification renders a verdict label with its icon.
func FormatClassification(c model.Classification) string {
	icon := SuccessIcon
	switch c {
	case model.Blocked:
		icon = ErrorIcon
	case model.Borderline:
		icon = WarningIcon
	}
	return ClassificationStyle(c).Render(icon + " " + c.Label())
}

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatInfo formats an info message with icon.
func FormatInfo(message string) string {
	return InfoStyle.Render(InfoIcon + " " + message)
}

// FormatTitle formats a title with the slop icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(SlopIcon + " " + title)
}

// RenderBox renders content in a styled box.
func RenderBox(title, content string) string {
	boxTitle := TitleStyle.
		UnsetMargins().
		Render(title)

	boxContent := lipgloss.JoinVertical(
		lipgloss.Left,
		boxTitle,
		content,
	)

	return BoxStyle.Render(boxContent)
}
