package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the explorer and blocks until the user quits or ctx is canceled.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Engine == nil {
		return fmt.Errorf("engine is required")
	}

	p := tea.NewProgram(
		newModel(cfg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("explorer failed: %w", err)
	}
	return nil
}
