package notification

import (
	"fmt"
	"time"

	"github.com/overlearn/overlearn/internal/models"
)

// QuietHours is a daily window, in minutes since midnight, during which
// notifications are suppressed. Both ends are inclusive; Start > End means
// the window spans midnight.
type QuietHours struct {
	Enabled bool
	Start   int
	End     int
}

// Contains reports whether t falls inside the window.
func (q QuietHours) Contains(t time.Time) bool {
	if !q.Enabled {
		return false
	}
	now := t.Hour()*60 + t.Minute()
	if q.Start > q.End {
		return now >= q.Start || now <= q.End
	}
	return now >= q.Start && now <= q.End
}

// ParseClock parses an "HH:MM" 24-hour time into minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q (expected HH:MM): %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Preferences decide which requests reach the sink.
type Preferences struct {
	Enabled           bool
	PomodoroEnabled   bool
	StudyGoalsEnabled bool
	QuietHours        QuietHours
}

// DefaultPreferences lets every request through.
func DefaultPreferences() Preferences {
	return Preferences{
		Enabled:           true,
		PomodoroEnabled:   true,
		StudyGoalsEnabled: true,
	}
}

// PreferencesFromSettings converts the notifications section of the
// settings file. An unparseable quiet-hours window is returned disabled
// together with the parse error.
func PreferencesFromSettings(cfg models.NotificationsConfig) (Preferences, error) {
	prefs := Preferences{
		Enabled:           cfg.Enabled,
		PomodoroEnabled:   cfg.PomodoroEnabled,
		StudyGoalsEnabled: cfg.StudyGoalsEnabled,
	}
	if !cfg.QuietHours.Enabled {
		return prefs, nil
	}

	start, err := ParseClock(cfg.QuietHours.Start)
	if err != nil {
		return prefs, fmt.Errorf("quiet hours start: %w", err)
	}
	end, err := ParseClock(cfg.QuietHours.End)
	if err != nil {
		return prefs, fmt.Errorf("quiet hours end: %w", err)
	}
	prefs.QuietHours = QuietHours{Enabled: true, Start: start, End: end}
	return prefs, nil
}

// suppressReason returns why req must not be delivered at now, or "".
func (p Preferences) suppressReason(kind string, now time.Time) string {
	switch {
	case !p.Enabled:
		return "notifications disabled"
	case kind == KindPomodoro && !p.PomodoroEnabled:
		return "pomodoro notifications disabled"
	case kind == KindMilestone && !p.StudyGoalsEnabled:
		return "study goal notifications disabled"
	case p.QuietHours.Contains(now):
		return "quiet hours"
	}
	return ""
}
