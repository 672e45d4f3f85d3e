package tui

import (
	"testing"

	"github.com/Veraticus/deslop/internal/model"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, opts ...Option) Model {
	t.Helper()
	base := []Option{WithSize(100, 40), WithDebounce(0)}
	return newModel(NewConfig(append(base, opts...)...))
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func TestModel_InitialText(t *testing.T) {
	m := newTestModel(t, WithText("We need to delve into this paradigm shift."))

	result, class := m.Result()
	assert.Equal(t, 6, result.Total)
	assert.Equal(t, model.Borderline, class)
	assert.NotEmpty(t, m.matches)
}

func TestModel_EmptyIsClean(t *testing.T) {
	m := newTestModel(t)

	result, class := m.Result()
	assert.Zero(t, result.Total)
	assert.Equal(t, model.Clean, class)
	assert.Contains(t, m.View(), "Start typing")
}

func TestModel_TypingIsDebounced(t *testing.T) {
	m := newTestModel(t)

	m = typeText(t, m, "We need to delve into this paradigm shift.")
	result, _ := m.Result()
	assert.Zero(t, result.Total, "scoring waits for the debounce tick")
	assert.Equal(t, 1, m.seq)

	// A stale tick is ignored.
	m, _ = update(t, m, debounceMsg{seq: 0})
	result, _ = m.Result()
	assert.Zero(t, result.Total)

	m, _ = update(t, m, debounceMsg{seq: m.seq})
	result, class := m.Result()
	assert.Equal(t, 6, result.Total)
	assert.Equal(t, model.Borderline, class)
}

func TestModel_ScheduleAnalysis(t *testing.T) {
	m := newTestModel(t)
	m.seq = 7

	msg := m.scheduleAnalysis()()
	assert.Equal(t, debounceMsg{seq: 7}, msg)
}

func TestModel_Sensitivity(t *testing.T) {
	m := newTestModel(t, WithText("Great synergy today"))
	result, _ := m.Result()
	assert.Equal(t, 2, result.Total)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Equal(t, 1, m.Settings().Sensitivity)
	result, _ = m.Result()
	assert.Zero(t, result.Total, "tier2 is off below sensitivity 3")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Equal(t, 1, m.Settings().Sensitivity, "clamped at the minimum")

	for i := 0; i < 6; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlP})
	}
	assert.Equal(t, 5, m.Settings().Sensitivity, "clamped at the maximum")
	_, class := m.Result()
	assert.Equal(t, model.Borderline, class)
}

func TestModel_Toggles(t *testing.T) {
	tests := []struct {
		check func(t *testing.T, m Model)
		name  string
		text  string
		key   tea.KeyMsg
	}{
		{
			name: "emojis",
			text: "Launch day \U0001F680\U0001F680\U0001F680 is here",
			key:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e"), Alt: true},
			check: func(t *testing.T, m Model) {
				t.Helper()
				assert.True(t, m.Settings().BlockEmojis)
				result, _ := m.Result()
				assert.Positive(t, result.CategoryPoints(model.CategoryEmoji))
			},
		},
		{
			name: "political",
			text: "The election was close this year.",
			key:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p"), Alt: true},
			check: func(t *testing.T, m Model) {
				t.Helper()
				assert.True(t, m.Settings().BlockPolitical)
				result, _ := m.Result()
				assert.Positive(t, result.CategoryPoints(model.CategoryPolitical))
			},
		},
		{
			name: "youtube",
			text: "You won't believe what happened next",
			key:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y"), Alt: true},
			check: func(t *testing.T, m Model) {
				t.Helper()
				assert.Equal(t, model.ContextYouTube, m.Settings().Context)
				result, _ := m.Result()
				assert.Positive(t, result.CategoryPoints(model.CategoryYouTubeClickbait))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, WithText(tt.text))
			m, _ = update(t, m, tt.key)
			tt.check(t, m)
			assert.Equal(t, tt.text, m.editor.Value(), "toggle keys never reach the editor")
		})
	}
}

func TestModel_Clear(t *testing.T) {
	m := newTestModel(t, WithText("We need to delve into this paradigm shift."))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.Empty(t, m.editor.Value())
	result, class := m.Result()
	assert.Zero(t, result.Total)
	assert.Equal(t, model.Clean, class)
}

func TestModel_SwitchFocus(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusResults, m.focus)

	m = typeText(t, m, "ignored")
	assert.Empty(t, m.editor.Value(), "typing goes to the results pane")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusEditor, m.focus)
	m = typeText(t, m, "hello")
	assert.Equal(t, "hello", m.editor.Value())
}

func TestModel_Quit(t *testing.T) {
	for _, k := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		t.Run(k.String(), func(t *testing.T) {
			m := newTestModel(t)
			m, cmd := update(t, m, k)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
			assert.Empty(t, m.View())
		})
	}
}

func TestModel_HelpAndResize(t *testing.T) {
	m := newTestModel(t)
	before := m.results.Height

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyF1})
	assert.True(t, m.help.ShowAll)
	assert.Less(t, m.results.Height, before)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 60})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 116, m.results.Width)
}

func TestModel_View(t *testing.T) {
	m := newTestModel(t, WithText("Excited to announce our new release. We need to delve into this paradigm shift."))
	m.results.Height = 200
	m.refreshResults()

	view := m.View()
	assert.Contains(t, view, "Is my post slop?")
	assert.Contains(t, view, "Sensitivity 3 (threshold 9)")
	assert.Contains(t, view, "Score: 9")
	assert.Contains(t, view, "SLOP DETECTED")

	content := m.renderResults()
	assert.Contains(t, content, "Highlighted")
	assert.Contains(t, content, "Breakdown")
	assert.Contains(t, content, "Suggestions")
	assert.Contains(t, content, "Thresholds")
	assert.Contains(t, content, `"delve into"`)
}
