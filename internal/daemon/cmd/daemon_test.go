package cmd

import (
	"context"
	"testing"

	"github.com/overlearn/overlearn/internal/models"
	"github.com/overlearn/overlearn/internal/notification"
)

func TestApplySettings(t *testing.T) {
	settings := models.NewSettings()
	settings.Notifications.Backend = notification.BackendLog
	d := newDaemon(settings)
	defer d.reminders.Stop()

	next := models.NewSettings()
	next.Notifications.Backend = notification.BackendLog
	next.Notifications.PomodoroEnabled = false
	next.Reminders = []models.Reminder{
		{Name: "stretch", Schedule: "0 * * * *", Title: "Stretch"},
		{Name: "bad", Schedule: "nope", Title: "Bad"},
	}
	d.applySettings(next)

	if d.dispatcher.SinkName() != "log" {
		t.Errorf("sink = %q, want log", d.dispatcher.SinkName())
	}
	if d.reminders.Count() != 1 {
		t.Errorf("reminders = %d, want 1", d.reminders.Count())
	}
	if d.settings != next {
		t.Error("settings not replaced")
	}
}

func TestApplySettingsBadQuietHoursKeepsDelivering(t *testing.T) {
	settings := models.NewSettings()
	settings.Notifications.Backend = notification.BackendLog
	settings.Notifications.QuietHours.Enabled = true
	settings.Notifications.QuietHours.Start = "25:99"
	d := newDaemon(settings)
	defer d.reminders.Stop()

	var delivered []string
	d.onDelivered = func(title string) { delivered = append(delivered, title) }
	d.applySettings(settings)

	if err := d.dispatcher.Notify(context.Background(), "Hello", "World", "normal"); err != nil {
		t.Fatal(err)
	}
	if len(delivered) != 1 || delivered[0] != "Hello" {
		t.Errorf("delivered = %v", delivered)
	}
}
