package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive checker and blocks until the user quits or ctx
// is canceled.
func Run(ctx context.Context, opts ...Option) error {
	cfg := NewConfig(opts...)

	p := tea.NewProgram(
		newModel(cfg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("interactive checker failed: %w", err)
	}
	return nil
}
