package notification

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// IconName is the freedesktop icon name shown next to native notifications.
	IconName = "dialog-information"

	// Timeout is how long native notifications stay on screen.
	Timeout = 5000 * time.Millisecond
)

// Sink delivers a notification to the user.
type Sink interface {
	Name() string
	Deliver(ctx context.Context, req Request) error
}

// DeliveryError is returned when a sink could not hand a notification to the
// platform notification service.
type DeliveryError struct {
	Reason string
}

func (e *DeliveryError) Error() string {
	return "notification delivery failed: " + e.Reason
}

// LoggingSink writes notifications to a log stream instead of the desktop.
// It is the fallback on platforms without a native notification service and
// never fails.
type LoggingSink struct {
	logger *log.Logger
}

// NewLoggingSink creates a logging sink. If logger is nil, the standard
// logger is used.
func NewLoggingSink(logger *log.Logger) *LoggingSink {
	if logger == nil {
		logger = log.Default()
	}
	return &LoggingSink{logger: logger}
}

// Name returns the backend name.
func (s *LoggingSink) Name() string {
	return BackendLog
}

// Deliver logs one line for req. Every call gets its own delivery id.
func (s *LoggingSink) Deliver(_ context.Context, req Request) error {
	s.logger.Printf("[notify] 📢 Notification: %s - %s (urgency=%s kind=%s id=%s%s)",
		req.Title, req.Body, req.Urgency, kindOrGeneric(req.Kind), uuid.NewString(), formatFields(req.Fields))
	return nil
}

func kindOrGeneric(kind string) string {
	if kind == "" {
		return KindGeneric
	}
	return kind
}

// formatFields renders fields as ` key="value"` pairs in key order.
func formatFields(fields map[string]string) string {
	if len(fields) == 0 {
		return ""
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%q", k, fields[k])
	}
	return b.String()
}
