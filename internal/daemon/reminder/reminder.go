// Package reminder fires configured notifications on cron schedules.
package reminder

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/overlearn/overlearn/internal/models"
)

// Notifier delivers a generic notification.
type Notifier interface {
	Notify(ctx context.Context, title, body, urgencyTag string) error
}

// Scheduler owns one cron runner whose jobs are replaced wholesale by Reload.
type Scheduler struct {
	cron     *cron.Cron
	notifier Notifier
	timeout  time.Duration

	mu      sync.Mutex
	entries []cron.EntryID
}

// New creates a scheduler. Call Start to begin firing jobs.
func New(notifier Notifier) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		notifier: notifier,
		timeout:  10 * time.Second,
	}
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() { s.cron.Start() }

// Stop halts the scheduler. Running jobs are not waited for.
func (s *Scheduler) Stop() { s.cron.Stop() }

// Validate reports whether expr is a valid 5-field cron expression.
func Validate(expr string) error {
	if _, err := cron.ParseStandard(expr); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", expr, err)
	}
	return nil
}

// Reload replaces all jobs with reminders. Entries with an invalid schedule
// or no title are skipped with a warning. It returns the number scheduled.
func (s *Scheduler) Reload(reminders []models.Reminder) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.entries {
		s.cron.Remove(id)
	}
	s.entries = s.entries[:0]

	for _, r := range reminders {
		if r.Title == "" {
			log.Printf("[reminder] Skipping %q: no title", r.Name)
			continue
		}
		if err := Validate(r.Schedule); err != nil {
			log.Printf("[reminder] Skipping %q: %v", r.Name, err)
			continue
		}

		reminder := r
		id, err := s.cron.AddFunc(r.Schedule, func() { s.fire(reminder) })
		if err != nil {
			log.Printf("[reminder] Failed to schedule %q: %v", r.Name, err)
			continue
		}
		s.entries = append(s.entries, id)
	}

	log.Printf("[reminder] %d reminder(s) scheduled", len(s.entries))
	return len(s.entries)
}

// Count returns the number of scheduled reminders.
func (s *Scheduler) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Next returns the earliest upcoming fire time. Entries are only given a
// next time once the scheduler is running.
func (s *Scheduler) Next() (time.Time, bool) {
	s.mu.Lock()
	ids := append([]cron.EntryID(nil), s.entries...)
	s.mu.Unlock()

	var earliest time.Time
	for _, id := range ids {
		next := s.cron.Entry(id).Next
		if next.IsZero() {
			continue
		}
		if earliest.IsZero() || next.Before(earliest) {
			earliest = next
		}
	}
	return earliest, !earliest.IsZero()
}

func (s *Scheduler) fire(r models.Reminder) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.notifier.Notify(ctx, r.Title, r.Body, r.Urgency); err != nil {
		log.Printf("[reminder] %q failed: %v", r.Name, err)
	}
}
