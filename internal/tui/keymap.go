package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Settings
	SensitivityUp   key.Binding
	SensitivityDown key.Binding
	ToggleEmojis    key.Binding
	TogglePolitical key.Binding
	ToggleYouTube   key.Binding

	// Editing
	Clear       key.Binding
	SwitchFocus key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding

	// Application
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		SensitivityUp: key.NewBinding(
			key.WithKeys("alt+up", "ctrl+p"),
			key.WithHelp("Alt+↑/Ctrl+P", "more aggressive"),
		),
		SensitivityDown: key.NewBinding(
			key.WithKeys("alt+down", "ctrl+n"),
			key.WithHelp("Alt+↓/Ctrl+N", "less aggressive"),
		),
		ToggleEmojis: key.NewBinding(
			key.WithKeys("alt+e"),
			key.WithHelp("Alt+E", "toggle emoji check"),
		),
		TogglePolitical: key.NewBinding(
			key.WithKeys("alt+p"),
			key.WithHelp("Alt+P", "toggle political check"),
		),
		ToggleYouTube: key.NewBinding(
			key.WithKeys("alt+y"),
			key.WithHelp("Alt+Y", "toggle YouTube context"),
		),

		Clear: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("Ctrl+X", "clear text"),
		),
		SwitchFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "switch editor/results"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "scroll results"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "scroll results"),
		),

		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.SwitchFocus, k.SensitivityUp, k.SensitivityDown, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SensitivityUp, k.SensitivityDown},
		{k.ToggleEmojis, k.TogglePolitical, k.ToggleYouTube},
		{k.Clear, k.SwitchFocus, k.ScrollUp, k.ScrollDown},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
