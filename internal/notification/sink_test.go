package notification

import (
	"bytes"
	"context"
	"log"
	"regexp"
	"strings"
	"testing"
)

func TestLoggingSinkNeverFails(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLoggingSink(log.New(&buf, "", 0))

	inputs := []Request{
		{},
		{Title: "", Body: "", Urgency: UrgencyCritical},
		{Title: "\x00\x1b[31m", Body: strings.Repeat("b", 10000)},
		MapMilestone("Go", 50),
	}
	for _, req := range inputs {
		if err := sink.Deliver(context.Background(), req); err != nil {
			t.Errorf("Deliver(%+v) error = %v", req, err)
		}
	}
	if got := strings.Count(buf.String(), "\n"); got != len(inputs) {
		t.Errorf("wrote %d lines, want %d", got, len(inputs))
	}
}

func TestLoggingSinkLineIncludesFields(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLoggingSink(log.New(&buf, "", 0))

	req := MapPomodoro("work", 25)
	req.Fields = map[string]string{"task": "Read chapter 3", "a": "first"}
	if err := sink.Deliver(context.Background(), req); err != nil {
		t.Fatal(err)
	}

	line := buf.String()
	for _, want := range []string{
		"🎯 Work Session Complete!",
		"25-minute work session",
		"urgency=normal",
		"kind=pomodoro",
		`a="first" task="Read chapter 3"`,
	} {
		if !strings.Contains(line, want) {
			t.Errorf("line %q missing %q", line, want)
		}
	}
}

func TestLoggingSinkDistinctDeliveryIDs(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLoggingSink(log.New(&buf, "", 0))

	req := MapGeneric("Same", "Same", "low")
	for i := 0; i < 2; i++ {
		if err := sink.Deliver(context.Background(), req); err != nil {
			t.Fatal(err)
		}
	}

	ids := regexp.MustCompile(`id=([0-9a-f-]{36})`).FindAllStringSubmatch(buf.String(), -1)
	if len(ids) != 2 {
		t.Fatalf("found %d delivery ids, want 2", len(ids))
	}
	if ids[0][1] == ids[1][1] {
		t.Errorf("identical delivery ids %q for two deliveries", ids[0][1])
	}
}

func TestDeliveryErrorMessage(t *testing.T) {
	err := &DeliveryError{Reason: "no notification daemon"}
	if got, want := err.Error(), "notification delivery failed: no notification daemon"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestBeeepSinkRoutesCriticalToAlert(t *testing.T) {
	var calls []string
	sink := &BeeepSink{
		notify: func(title, _ string) error { calls = append(calls, "notify:"+title); return nil },
		alert:  func(title, _ string) error { calls = append(calls, "alert:"+title); return nil },
	}

	_ = sink.Deliver(context.Background(), MapGeneric("a", "", "low"))
	_ = sink.Deliver(context.Background(), MapGeneric("b", "", "critical"))

	want := []string{"notify:a", "alert:b"}
	if strings.Join(calls, ",") != strings.Join(want, ",") {
		t.Errorf("calls = %v, want %v", calls, want)
	}
}

func TestNewSinkSelection(t *testing.T) {
	if got := NewSink("log", nil).Name(); got != BackendLog {
		t.Errorf("NewSink(log) = %s", got)
	}
	if got := NewSink("beeep", nil).Name(); got != BackendBeeep {
		t.Errorf("NewSink(beeep) = %s", got)
	}

	want := BackendLog
	if NativeSupported() {
		want = BackendDBus
	}
	for _, backend := range []string{"auto", "", "carrier-pigeon", "dbus"} {
		if got := NewSink(backend, nil).Name(); got != want {
			t.Errorf("NewSink(%q) = %s, want %s", backend, got, want)
		}
	}
}
