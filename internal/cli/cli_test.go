package cli

import (
	"strings"
	"testing"

	"github.com/overlearn/overlearn/internal/models"
)

func TestParsePercent(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"50", 50, false},
		{"75%", 75, false},
		{"130", 130, false},
		{"half", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePercent(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parsePercent(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parsePercent(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestSettingsProblems(t *testing.T) {
	defaults := models.NewSettings()
	if got := settingsProblems(defaults.Notifications, nil); len(got) != 0 {
		t.Errorf("defaults reported problems: %v", got)
	}

	n := defaults.Notifications
	n.Backend = "growl"
	n.QuietHours.Enabled = true
	n.QuietHours.End = "7am"
	reminders := []models.Reminder{
		{Name: "ok", Schedule: "0 9 * * *", Title: "Study"},
		{Name: "bad", Schedule: "sometimes", Title: "Bad"},
		{Name: "empty", Schedule: "0 9 * * *"},
	}

	got := strings.Join(settingsProblems(n, reminders), "\n")
	for _, want := range []string{`"growl"`, "quiet hours", `reminder "bad"`, `reminder "empty" has no title`} {
		if !strings.Contains(got, want) {
			t.Errorf("problems missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, `reminder "ok"`) {
		t.Errorf("valid reminder reported:\n%s", got)
	}
}

func TestCommandTree(t *testing.T) {
	for _, path := range [][]string{
		{"daemon", "start"},
		{"daemon", "status"},
		{"daemon", "stop"},
		{"notify", "send"},
		{"notify", "native"},
		{"notify", "pomodoro"},
		{"notify", "milestone"},
		{"pomodoro"},
		{"settings", "show"},
		{"settings", "path"},
		{"version"},
	} {
		cmd, _, err := rootCmd.Find(path)
		if err != nil || cmd.Name() != path[len(path)-1] {
			t.Errorf("command %v not found: %v", path, err)
		}
	}
}
