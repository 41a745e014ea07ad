package sync

import (
	"context"
	"errors"
	"time"

	"lucas-asistente/internal/model"
	"lucas-asistente/internal/store"
	"lucas-asistente/pkg/gcalendar"
)

const pushTimeout = 30 * time.Second

// Run processes queued events until the context is cancelled. Call it
// from its own goroutine.
func (w *Worker) Run(ctx context.Context) {
	if !w.Enabled() {
		w.l.Info(ctx, "sync: no remote configured, mirroring disabled")
		return
	}

	w.l.Info(ctx, "sync: mirror worker started")
	for {
		select {
		case <-ctx.Done():
			w.l.Info(ctx, "sync: mirror worker stopped")
			return
		case e := <-w.events:
			pushCtx, cancel := context.WithTimeout(context.Background(), pushTimeout)
			w.pushWithRetry(pushCtx, e)
			cancel()
		}
	}
}

// pushWithRetry mirrors one event with exponential backoff. All
// retries exhausted means the rows have drifted until the next write
// touches them.
func (w *Worker) pushWithRetry(ctx context.Context, e Event) {
	maxRetries := 3
	backoff := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		err := w.push(ctx, e)
		if err == nil {
			return
		}
		if errors.Is(err, store.ErrNotFound) {
			// Row deleted after the event was queued; nothing to mirror.
			w.l.Warnf(ctx, "sync: %s id=%d gone locally, skipping", e.Collection, e.ID)
			return
		}

		w.l.Warnf(ctx, "sync: push %s %s id=%d failed (retry %d/%d): %v",
			e.Action, e.Collection, e.ID, i+1, maxRetries, err)
		time.Sleep(backoff)
		backoff *= 2
	}

	w.l.Errorf(ctx, "sync: failed to mirror %s %s id=%d after %d retries",
		e.Action, e.Collection, e.ID, maxRetries)
}

func (w *Worker) push(ctx context.Context, e Event) error {
	if e.Action == ActionDelete {
		if w.remote == nil {
			return nil
		}
		return w.remote.Delete(ctx, string(e.Collection), e.ID)
	}

	switch e.Collection {
	case CollectionTasks:
		if w.remote == nil {
			return nil
		}
		task, err := w.source.GetTask(ctx, e.ID)
		if err != nil {
			return err
		}
		return w.remote.Upsert(ctx, string(e.Collection), taskRecord(task))
	case CollectionReminders:
		reminder, err := w.source.GetReminder(ctx, e.ID)
		if err != nil {
			return err
		}
		if w.remote != nil {
			if err := w.remote.Upsert(ctx, string(e.Collection), reminderRecord(reminder)); err != nil {
				return err
			}
		}
		w.exportToCalendar(ctx, reminder)
		return nil
	default:
		w.l.Errorf(ctx, "sync: unknown collection %q", e.Collection)
		return nil
	}
}

// exportToCalendar creates a calendar event for a reminder once. Best
// effort: a failed export is retried the next time the reminder row
// changes.
func (w *Worker) exportToCalendar(ctx context.Context, r model.Reminder) {
	if w.calendar == nil || r.ExportedToCalendar || r.Completed {
		return
	}

	_, err := w.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		Summary:     r.Title,
		Description: r.Description,
		StartTime:   r.FireAt,
		EndTime:     r.FireAt.Add(30 * time.Minute),
		Timezone:    w.timezone,
	})
	if err != nil {
		w.l.Warnf(ctx, "sync: calendar export for reminder %d failed: %v", r.ID, err)
		return
	}

	if err := w.source.SetExportedToCalendar(ctx, r.ID); err != nil {
		w.l.Errorf(ctx, "sync: failed to flag reminder %d as exported: %v", r.ID, err)
		return
	}
	w.l.Infof(ctx, "sync: reminder %d exported to calendar", r.ID)
}
