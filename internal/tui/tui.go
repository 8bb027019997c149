// Package tui implements the interactive Pomodoro timer.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run launches the timer and blocks until the user quits.
func Run(cfg Config, notifier Notifier) error {
	if cfg.Work <= 0 || cfg.Break <= 0 {
		return fmt.Errorf("work and break durations must be positive")
	}

	p := tea.NewProgram(NewModel(cfg, notifier), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run pomodoro timer: %w", err)
	}
	return nil
}
