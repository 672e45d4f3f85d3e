// Package themes defines color schemes for the interactive checker.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	RoundedBox    lipgloss.Style
	FocusedBox    lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusPending lipgloss.Style
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Error         lipgloss.Color
	Warning       lipgloss.Color
	Success       lipgloss.Color
}

func build(primary, fg, subtle, border, muted, success, warning, errColor, info lipgloss.Color) Theme {
	return Theme{
		Primary: primary,
		Muted:   muted,
		Border:  border,
		Error:   errColor,
		Warning: warning,
		Success: success,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(subtle),
		Normal: lipgloss.NewStyle().
			Foreground(fg),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg),
		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		FocusedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1),

		StatusSuccess: lipgloss.NewStyle().
			Foreground(success).
			Bold(true),
		StatusWarning: lipgloss.NewStyle().
			Foreground(warning).
			Bold(true),
		StatusError: lipgloss.NewStyle().
			Foreground(errColor).
			Bold(true),
		StatusInfo: lipgloss.NewStyle().
			Foreground(info).
			Bold(true),
		StatusPending: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),
	}
}

// Default is the default theme.
var Default = build(
	lipgloss.Color("#7c3aed"), // primary
	lipgloss.Color("#fafafa"), // foreground
	lipgloss.Color("#a3a3a3"), // subtitle
	lipgloss.Color("#404040"), // border
	lipgloss.Color("#737373"), // muted
	lipgloss.Color("#10b981"), // success
	lipgloss.Color("#f59e0b"), // warning
	lipgloss.Color("#ef4444"), // error
	lipgloss.Color("#3b82f6"), // info
)

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = build(
	lipgloss.Color("#cba6f7"),
	lipgloss.Color("#cdd6f4"),
	lipgloss.Color("#a6adc8"),
	lipgloss.Color("#45475a"),
	lipgloss.Color("#6c7086"),
	lipgloss.Color("#a6e3a1"),
	lipgloss.Color("#f9e2af"),
	lipgloss.Color("#f38ba8"),
	lipgloss.Color("#89dceb"),
)

// ByName returns a theme by name, falling back to Default.
func ByName(name string) Theme {
	switch name {
	case "catppuccin", "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}
