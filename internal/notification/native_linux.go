//go:build linux

package notification

import (
	"context"
	"fmt"

	"github.com/esiqveland/notify"
	"github.com/godbus/dbus/v5"

	"github.com/overlearn/overlearn/internal/buildinfo"
)

const nativeSupported = true

// NativeSink shows notifications through the freedesktop notification
// service on the D-Bus session bus.
type NativeSink struct {
	connect func(ctx context.Context) (*dbus.Conn, error)
	send    func(conn *dbus.Conn, n notify.Notification) (uint32, error)
}

// NewNativeSink creates a sink that talks to the session bus. A connection
// is opened per delivery and closed afterwards.
func NewNativeSink() *NativeSink {
	return &NativeSink{
		connect: func(ctx context.Context) (*dbus.Conn, error) {
			return dbus.ConnectSessionBus(dbus.WithContext(ctx))
		},
		send: notify.SendNotification,
	}
}

// Name returns the backend name.
func (s *NativeSink) Name() string {
	return BackendDBus
}

// Deliver sends req to the notification daemon. Any bus or daemon failure
// is returned as a *DeliveryError.
func (s *NativeSink) Deliver(ctx context.Context, req Request) error {
	conn, err := s.connect(ctx)
	if err != nil {
		return &DeliveryError{Reason: fmt.Sprintf("connect to session bus: %v", err)}
	}
	if conn != nil {
		defer conn.Close()
	}

	if _, err := s.send(conn, buildNativeNotification(req)); err != nil {
		return &DeliveryError{Reason: err.Error()}
	}
	return nil
}

func buildNativeNotification(req Request) notify.Notification {
	return notify.Notification{
		AppName: buildinfo.AppName,
		AppIcon: IconName,
		Summary: req.Title,
		Body:    req.Body,
		Hints: map[string]dbus.Variant{
			"urgency": dbus.MakeVariant(byte(req.Urgency)),
		},
		ExpireTimeout: Timeout,
	}
}

func newNativeSink() Sink {
	return NewNativeSink()
}
