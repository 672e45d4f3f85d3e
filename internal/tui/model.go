// Package tui implements the interactive "is my post slop?" checker.
package tui

import (
	"time"

	"github.com/Veraticus/deslop/internal/classification"
	"github.com/Veraticus/deslop/internal/model"
	"github.com/Veraticus/deslop/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Focus is the pane receiving keystrokes.
type Focus int

const (
	FocusEditor Focus = iota
	FocusResults
)

// Model holds the checker state.
type Model struct {
	theme      themes.Theme
	classifier *classification.Classifier
	help       help.Model
	keymap     KeyMap
	settings   model.Configuration
	result     model.ScoreResult
	class      model.Classification
	analyzed   string
	matches    []model.Match
	results    viewport.Model
	editor     textarea.Model
	debounce   time.Duration
	seq        int
	width      int
	height     int
	focus      Focus
	quitting   bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	editor := textarea.New()
	editor.Placeholder = "Paste or type your post here..."
	editor.ShowLineNumbers = false
	editor.CharLimit = 0
	editor.SetValue(cfg.InitialText)
	editor.Focus()

	keymap := DefaultKeyMap()
	results := viewport.New(cfg.Width, cfg.Height)
	results.KeyMap.Up = keymap.ScrollUp
	results.KeyMap.Down = keymap.ScrollDown

	m := Model{
		theme:      cfg.Theme,
		classifier: cfg.Classifier,
		help:       help.New(),
		keymap:     keymap,
		settings:   cfg.Configuration,
		class:      model.Clean,
		editor:     editor,
		results:    results,
		debounce:   cfg.Debounce,
		width:      cfg.Width,
		height:     cfg.Height,
	}
	m.resize()
	m.analyze()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.refreshResults()
		return m, nil

	case debounceMsg:
		if msg.seq == m.seq {
			m.analyze()
		}
		return m, nil

	case tea.KeyMsg:
		if handled, cmd := m.handleKeys(msg); handled {
			return m, cmd
		}
		if m.focus == FocusResults {
			var cmd tea.Cmd
			m.results, cmd = m.results.Update(msg)
			return m, cmd
		}
	}

	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if m.editor.Value() != before {
		m.seq++
		return m, tea.Batch(cmd, m.scheduleAnalysis())
	}
	return m, cmd
}

// handleKeys handles keys that work in either pane.
func (m *Model) handleKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ForceQuit), key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return true, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return true, nil

	case key.Matches(msg, m.keymap.SensitivityUp):
		m.setSensitivity(m.settings.EffectiveSensitivity() + 1)
		return true, nil

	case key.Matches(msg, m.keymap.SensitivityDown):
		m.setSensitivity(m.settings.EffectiveSensitivity() - 1)
		return true, nil

	case key.Matches(msg, m.keymap.ToggleEmojis):
		m.settings.BlockEmojis = !m.settings.BlockEmojis
		m.analyze()
		return true, nil

	case key.Matches(msg, m.keymap.TogglePolitical):
		m.settings.BlockPolitical = !m.settings.BlockPolitical
		m.analyze()
		return true, nil

	case key.Matches(msg, m.keymap.ToggleYouTube):
		if m.settings.Context == model.ContextYouTube {
			m.settings.Context = model.ContextGeneric
		} else {
			m.settings.Context = model.ContextYouTube
		}
		m.analyze()
		return true, nil

	case key.Matches(msg, m.keymap.Clear):
		m.editor.Reset()
		m.seq++
		m.analyze()
		return true, nil

	case key.Matches(msg, m.keymap.SwitchFocus):
		if m.focus == FocusEditor {
			m.focus = FocusResults
			m.editor.Blur()
			return true, nil
		}
		m.focus = FocusEditor
		return true, m.editor.Focus()
	}
	return false, nil
}

// scheduleAnalysis returns a command that re-scores after the debounce pause.
func (m Model) scheduleAnalysis() tea.Cmd {
	seq := m.seq
	if m.debounce <= 0 {
		return func() tea.Msg { return debounceMsg{seq: seq} }
	}
	return tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
}

func (m *Model) setSensitivity(s int) {
	s = max(model.MinSensitivity, min(model.MaxSensitivity, s))
	m.settings = m.settings.WithSensitivity(s)
	m.analyze()
}

// analyze scores the current text and refreshes the results pane.
func (m *Model) analyze() {
	text := m.editor.Value()
	m.result, m.class = m.classifier.Evaluate(text, m.settings)
	m.matches = m.classifier.ResolveHighlightSpans(text, m.settings)
	m.analyzed = text
	m.refreshResults()
}

// resize splits the terminal between editor and results.
func (m *Model) resize() {
	const (
		header     = 3 // title + settings line + spacing
		boxChrome  = 2 // top and bottom border
		boxPadding = 4 // left/right border and padding
	)

	helpHeight := 1
	if m.help.ShowAll {
		helpHeight = 5
	}

	inner := max(m.width-boxPadding, 20)
	available := max(m.height-header-helpHeight-2*boxChrome, 6)
	editorHeight := max(available/3, 3)

	m.editor.SetWidth(inner)
	m.editor.SetHeight(editorHeight)
	m.results.Width = inner
	m.results.Height = max(available-editorHeight, 3)
	m.help.Width = m.width
}

func (m *Model) refreshResults() {
	m.results.SetContent(m.renderResults())
}

// Result returns the latest score and classification.
func (m Model) Result() (model.ScoreResult, model.Classification) {
	return m.result, m.class
}

// Settings returns the classification settings in effect.
func (m Model) Settings() model.Configuration {
	return m.settings
}
