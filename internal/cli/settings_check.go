package cli

import (
	"fmt"

	"github.com/overlearn/overlearn/internal/daemon/reminder"
	"github.com/overlearn/overlearn/internal/models"
	"github.com/overlearn/overlearn/internal/notification"
)

// settingsProblems lists settings the daemon will ignore.
func settingsProblems(n models.NotificationsConfig, reminders []models.Reminder) []string {
	var problems []string

	switch n.Backend {
	case "", notification.BackendAuto, notification.BackendDBus, notification.BackendBeeep, notification.BackendLog:
	default:
		problems = append(problems, fmt.Sprintf("unknown notifications.backend %q, auto is used", n.Backend))
	}
	if n.Backend == notification.BackendDBus && !notification.NativeSupported() {
		problems = append(problems, "notifications.backend dbus is not supported on this platform, log is used")
	}

	if _, err := notification.PreferencesFromSettings(n); err != nil {
		problems = append(problems, fmt.Sprintf("quiet hours ignored: %v", err))
	}

	for _, r := range reminders {
		if r.Title == "" {
			problems = append(problems, fmt.Sprintf("reminder %q has no title", r.Name))
			continue
		}
		if err := reminder.Validate(r.Schedule); err != nil {
			problems = append(problems, fmt.Sprintf("reminder %q: %v", r.Name, err))
		}
	}
	return problems
}
