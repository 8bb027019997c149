package notification

import (
	"context"

	"github.com/gen2brain/beeep"
)

// BeeepSink shows notifications with gen2brain/beeep, which covers macOS and
// Windows toasts as well as Linux. Critical requests use beeep's alert form,
// which also plays a sound.
type BeeepSink struct {
	notify func(title, message string) error
	alert  func(title, message string) error
}

// NewBeeepSink creates a beeep-backed sink.
func NewBeeepSink() *BeeepSink {
	return &BeeepSink{
		notify: func(title, message string) error { return beeep.Notify(title, message, "") },
		alert:  func(title, message string) error { return beeep.Alert(title, message, "") },
	}
}

// Name returns the backend name.
func (s *BeeepSink) Name() string {
	return BackendBeeep
}

// Deliver shows req as a desktop toast.
func (s *BeeepSink) Deliver(_ context.Context, req Request) error {
	show := s.notify
	if req.Urgency == UrgencyCritical {
		show = s.alert
	}
	if err := show(req.Title, req.Body); err != nil {
		return &DeliveryError{Reason: err.Error()}
	}
	return nil
}
