package notification

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"
)

// Delivery outcomes reported to an Observer.
const (
	OutcomeDelivered  = "delivered"
	OutcomeFailed     = "failed"
	OutcomeSuppressed = "suppressed"
)

// Observer is told the outcome of every request the dispatcher handles.
// req.Kind is never empty.
type Observer func(req Request, outcome string)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithPreferences sets the initial preferences.
func WithPreferences(p Preferences) Option {
	return func(d *Dispatcher) { d.prefs = p }
}

// WithObserver registers an outcome observer.
func WithObserver(o Observer) Option {
	return func(d *Dispatcher) { d.observer = o }
}

// WithClock overrides the time source used for quiet hours.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

// Dispatcher turns events into requests and hands them to a Sink. Calls are
// independent: there is no queue, no deduplication and no retry.
type Dispatcher struct {
	mu       sync.RWMutex
	sink     Sink
	prefs    Preferences
	observer Observer
	now      func() time.Time
}

// NewDispatcher creates a dispatcher delivering to sink.
func NewDispatcher(sink Sink, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		prefs: DefaultPreferences(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SetSink replaces the sink used by subsequent deliveries.
func (d *Dispatcher) SetSink(sink Sink) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sink = sink
}

// SetPreferences replaces the preferences used by subsequent deliveries.
func (d *Dispatcher) SetPreferences(p Preferences) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.prefs = p
}

// SinkName returns the name of the current sink.
func (d *Dispatcher) SinkName() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.sink.Name()
}

// Notify delivers a generic notification.
func (d *Dispatcher) Notify(ctx context.Context, title, body, urgencyTag string) error {
	return d.Deliver(ctx, MapGeneric(title, body, urgencyTag))
}

// NotifyPomodoro delivers a Pomodoro completion notification. The task
// title, when given, is only carried as a log field.
func (d *Dispatcher) NotifyPomodoro(ctx context.Context, sessionType string, durationMinutes int, taskTitle *string) error {
	req := MapPomodoro(sessionType, durationMinutes)
	if taskTitle != nil && *taskTitle != "" {
		req.Fields = map[string]string{"task": *taskTitle}
	}
	return d.Deliver(ctx, req)
}

// NotifyMilestone delivers a study goal milestone notification.
func (d *Dispatcher) NotifyMilestone(ctx context.Context, goalTitle string, milestonePercent int) error {
	return d.Deliver(ctx, MapMilestone(goalTitle, milestonePercent))
}

// Deliver hands req to the current sink unless preferences suppress it.
// Sink failures are returned as *DeliveryError.
func (d *Dispatcher) Deliver(ctx context.Context, req Request) error {
	d.mu.RLock()
	sink, prefs, observer := d.sink, d.prefs, d.observer
	d.mu.RUnlock()

	kind := kindOrGeneric(req.Kind)
	req.Kind = kind

	if reason := prefs.suppressReason(kind, d.now()); reason != "" {
		log.Printf("[notify] Suppressed %s notification %q: %s", kind, req.Title, reason)
		observe(observer, req, OutcomeSuppressed)
		return nil
	}

	err := sink.Deliver(ctx, req)
	if err != nil {
		var de *DeliveryError
		if !errors.As(err, &de) {
			err = &DeliveryError{Reason: err.Error()}
		}
		log.Printf("[notify] %s sink failed for %s notification: %v", sink.Name(), kind, err)
		observe(observer, req, OutcomeFailed)
		return err
	}

	observe(observer, req, OutcomeDelivered)
	return nil
}

func observe(o Observer, req Request, outcome string) {
	if o != nil {
		o(req, outcome)
	}
}
