package annotate

import (
	"context"
	"sync/atomic"
	"time"
)

// DefaultReminderInterval is how often unsaved labels are pointed out.
const DefaultReminderInterval = 5 * time.Minute

// Reminder periodically calls notify while the session has unsaved labels.
// notify receives a dismiss func; no further reminder fires until it is
// called.
type Reminder struct {
	session  *Session
	interval time.Duration
	notify   func(dismiss func())
	active   atomic.Bool
}

// NewReminder creates a reminder for s. A non-positive interval selects
// DefaultReminderInterval.
func NewReminder(s *Session, interval time.Duration, notify func(dismiss func())) *Reminder {
	if interval <= 0 {
		interval = DefaultReminderInterval
	}
	return &Reminder{session: s, interval: interval, notify: notify}
}

// Run blocks until ctx is done.
func (r *Reminder) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.tick()
		}
	}
}

func (r *Reminder) tick() {
	if !r.session.Unsaved() {
		return
	}
	if !r.active.CompareAndSwap(false, true) {
		return
	}
	r.session.logger.Debug("unsaved labels reminder")
	r.notify(func() { r.active.Store(false) })
}

// Showing reports whether a reminder is waiting to be dismissed.
func (r *Reminder) Showing() bool { return r.active.Load() }
