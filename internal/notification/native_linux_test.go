//go:build linux

package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/esiqveland/notify"
	"github.com/godbus/dbus/v5"
)

func TestNativeSinkBuildsNotification(t *testing.T) {
	var sent notify.Notification
	sink := &NativeSink{
		connect: func(context.Context) (*dbus.Conn, error) { return nil, nil },
		send: func(_ *dbus.Conn, n notify.Notification) (uint32, error) {
			sent = n
			return 7, nil
		},
	}

	if err := sink.Deliver(context.Background(), MapGeneric("Title", "Body", "critical")); err != nil {
		t.Fatalf("Deliver() error = %v", err)
	}

	if sent.AppName != "OverLearn" {
		t.Errorf("AppName = %q", sent.AppName)
	}
	if sent.AppIcon != IconName {
		t.Errorf("AppIcon = %q", sent.AppIcon)
	}
	if sent.Summary != "Title" || sent.Body != "Body" {
		t.Errorf("Summary/Body = %q/%q", sent.Summary, sent.Body)
	}
	if sent.ExpireTimeout != Timeout {
		t.Errorf("ExpireTimeout = %v, want %v", sent.ExpireTimeout, Timeout)
	}
	urgency, ok := sent.Hints["urgency"]
	if !ok {
		t.Fatal("missing urgency hint")
	}
	if got, _ := urgency.Value().(byte); got != byte(UrgencyCritical) {
		t.Errorf("urgency hint = %v, want %d", urgency.Value(), UrgencyCritical)
	}
}

func TestNativeSinkConnectFailure(t *testing.T) {
	sink := &NativeSink{
		connect: func(context.Context) (*dbus.Conn, error) {
			return nil, errors.New("no session bus")
		},
		send: func(*dbus.Conn, notify.Notification) (uint32, error) {
			t.Fatal("send must not be called without a connection")
			return 0, nil
		},
	}

	err := sink.Deliver(context.Background(), MapGeneric("t", "b", ""))
	var de *DeliveryError
	if !errors.As(err, &de) {
		t.Fatalf("error = %v, want *DeliveryError", err)
	}
}

func TestNativeSinkSendFailure(t *testing.T) {
	sink := &NativeSink{
		connect: func(context.Context) (*dbus.Conn, error) { return nil, nil },
		send: func(*dbus.Conn, notify.Notification) (uint32, error) {
			return 0, errors.New("The name org.freedesktop.Notifications was not provided")
		},
	}

	err := sink.Deliver(context.Background(), MapGeneric("t", "b", ""))
	var de *DeliveryError
	if !errors.As(err, &de) || de.Reason != "The name org.freedesktop.Notifications was not provided" {
		t.Fatalf("error = %v", err)
	}
}
