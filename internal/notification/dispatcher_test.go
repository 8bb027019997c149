package notification

import (
	"context"
	"errors"
	"testing"
	"time"
)

type recordingSink struct {
	requests []Request
	err      error
}

func (s *recordingSink) Name() string { return "recording" }

func (s *recordingSink) Deliver(_ context.Context, req Request) error {
	s.requests = append(s.requests, req)
	return s.err
}

func TestDispatcherNoDeduplication(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink)

	for i := 0; i < 2; i++ {
		if err := d.Notify(context.Background(), "Same", "Same", "normal"); err != nil {
			t.Fatal(err)
		}
	}
	if len(sink.requests) != 2 {
		t.Errorf("sink saw %d requests, want 2", len(sink.requests))
	}
}

func TestDispatcherWrapsSinkErrors(t *testing.T) {
	sink := &recordingSink{err: errors.New("org.freedesktop.DBus.Error.ServiceUnknown")}
	var outcomes []string
	d := NewDispatcher(sink, WithObserver(func(req Request, outcome string) {
		outcomes = append(outcomes, req.Kind+"/"+outcome)
	}))

	err := d.NotifyMilestone(context.Background(), "Go", 50)
	var de *DeliveryError
	if !errors.As(err, &de) {
		t.Fatalf("error = %v, want *DeliveryError", err)
	}
	if de.Reason != "org.freedesktop.DBus.Error.ServiceUnknown" {
		t.Errorf("Reason = %q", de.Reason)
	}
	if len(outcomes) != 1 || outcomes[0] != "milestone/failed" {
		t.Errorf("outcomes = %v", outcomes)
	}
}

func TestDispatcherKeepsDeliveryError(t *testing.T) {
	orig := &DeliveryError{Reason: "no session"}
	d := NewDispatcher(&recordingSink{err: orig})

	err := d.Notify(context.Background(), "t", "b", "low")
	if err != orig {
		t.Errorf("error = %v, want the sink's own *DeliveryError", err)
	}
}

func TestDispatcherPomodoroTaskField(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink)

	task := "Chapter 3"
	if err := d.NotifyPomodoro(context.Background(), "work", 25, &task); err != nil {
		t.Fatal(err)
	}
	if err := d.NotifyPomodoro(context.Background(), "break", 5, nil); err != nil {
		t.Fatal(err)
	}

	if got := sink.requests[0].Fields["task"]; got != task {
		t.Errorf("task field = %q, want %q", got, task)
	}
	if sink.requests[0].Body != MapPomodoro("work", 25).Body {
		t.Error("task title must not change the body")
	}
	if sink.requests[1].Fields != nil {
		t.Errorf("Fields = %v, want nil", sink.requests[1].Fields)
	}
}

func TestDispatcherPreferences(t *testing.T) {
	noon := func() time.Time { return time.Date(2026, 1, 1, 12, 0, 0, 0, time.Local) }

	tests := []struct {
		name  string
		prefs Preferences
		send  func(*Dispatcher) error
		want  int
	}{
		{
			name:  "defaults deliver",
			prefs: DefaultPreferences(),
			send:  func(d *Dispatcher) error { return d.Notify(context.Background(), "t", "b", "") },
			want:  1,
		},
		{
			name:  "master switch",
			prefs: Preferences{PomodoroEnabled: true, StudyGoalsEnabled: true},
			send:  func(d *Dispatcher) error { return d.Notify(context.Background(), "t", "b", "") },
			want:  0,
		},
		{
			name:  "pomodoro disabled",
			prefs: Preferences{Enabled: true, StudyGoalsEnabled: true},
			send:  func(d *Dispatcher) error { return d.NotifyPomodoro(context.Background(), "work", 25, nil) },
			want:  0,
		},
		{
			name:  "pomodoro disabled keeps generic",
			prefs: Preferences{Enabled: true, StudyGoalsEnabled: true},
			send:  func(d *Dispatcher) error { return d.Notify(context.Background(), "t", "b", "") },
			want:  1,
		},
		{
			name:  "study goals disabled",
			prefs: Preferences{Enabled: true, PomodoroEnabled: true},
			send:  func(d *Dispatcher) error { return d.NotifyMilestone(context.Background(), "Go", 25) },
			want:  0,
		},
		{
			name: "quiet hours",
			prefs: Preferences{
				Enabled:    true,
				QuietHours: QuietHours{Enabled: true, Start: 11 * 60, End: 13 * 60},
			},
			send: func(d *Dispatcher) error { return d.Notify(context.Background(), "t", "b", "critical") },
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &recordingSink{}
			d := NewDispatcher(sink, WithPreferences(tt.prefs), WithClock(noon))
			if err := tt.send(d); err != nil {
				t.Fatalf("send error = %v", err)
			}
			if len(sink.requests) != tt.want {
				t.Errorf("delivered %d, want %d", len(sink.requests), tt.want)
			}
		})
	}
}

func TestDispatcherSetSink(t *testing.T) {
	first, second := &recordingSink{}, &recordingSink{}
	d := NewDispatcher(first)

	_ = d.Notify(context.Background(), "1", "", "")
	d.SetSink(second)
	_ = d.Notify(context.Background(), "2", "", "")

	if len(first.requests) != 1 || len(second.requests) != 1 {
		t.Errorf("first=%d second=%d, want 1 and 1", len(first.requests), len(second.requests))
	}
}
