package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const notifyTimeout = 5 * time.Second

// Notifier announces a finished session.
type Notifier interface {
	NotifyPomodoroComplete(ctx context.Context, sessionType string, duration int, taskTitle *string) error
}

func notifyCmd(n Notifier, sessionType string, minutes int, task *string) tea.Cmd {
	if n == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		return notifiedMsg{
			sessionType: sessionType,
			err:         n.NotifyPomodoroComplete(ctx, sessionType, minutes, task),
		}
	}
}
