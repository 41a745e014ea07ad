package notifier

import (
	"context"
	"time"

	"lucas-asistente/internal/model"
	"lucas-asistente/internal/store"
	syncpkg "lucas-asistente/internal/sync"
	pkgLog "lucas-asistente/pkg/log"
)

// Store is the slice of the local store the notifier needs.
type Store interface {
	ListReminders(ctx context.Context, q store.ReminderQuery) ([]model.Reminder, error)
	MarkOffsetNotified(ctx context.Context, id int64, minutes int) error
	AppendNotification(ctx context.Context, n model.Notification) (int64, error)
	GetSettings(ctx context.Context) (model.Settings, error)
}

// Worker periodically scans open reminders and records a notification
// for every notify-before offset that has come due.
type Worker struct {
	store    Store
	outbox   syncpkg.Emitter
	l        pkgLog.Logger
	interval time.Duration
	now      func() time.Time
}

// NewWorker creates a reminder notification worker.
func NewWorker(l pkgLog.Logger, st Store, outbox syncpkg.Emitter, interval time.Duration) *Worker {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Worker{
		store:    st,
		outbox:   outbox,
		l:        l,
		interval: interval,
		now:      time.Now,
	}
}
