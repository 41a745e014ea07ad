package notifier

import (
	"context"
	"fmt"
	"time"

	"lucas-asistente/internal/model"
	"lucas-asistente/internal/store"
	syncpkg "lucas-asistente/internal/sync"
)

// graceWindow bounds how long after its fire moment a reminder still
// produces notifications. Past that the moment is simply gone.
const graceWindow = 5 * time.Minute

// Run scans on the configured interval until the context is cancelled.
func (w *Worker) Run(ctx context.Context) {
	w.l.Info(ctx, "notifier: worker started")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.l.Info(ctx, "notifier: worker stopped")
			return
		case <-ticker.C:
			w.scan(ctx)
		}
	}
}

func (w *Worker) scan(ctx context.Context) {
	settings, err := w.store.GetSettings(ctx)
	if err != nil {
		w.l.Errorf(ctx, "notifier: failed to load settings: %v", err)
		return
	}
	if !settings.NotificationsEnabled {
		return
	}

	now := w.now()
	reminders, err := w.store.ListReminders(ctx, store.ReminderQuery{
		Filter: store.ReminderFilterTodos,
		Now:    now,
	})
	if err != nil {
		w.l.Errorf(ctx, "notifier: failed to list reminders: %v", err)
		return
	}

	for _, r := range reminders {
		for _, offset := range DueOffsets(r, now) {
			w.emit(ctx, r, offset, now)
		}
	}
}

func (w *Worker) emit(ctx context.Context, r model.Reminder, offset int, now time.Time) {
	if _, err := w.store.AppendNotification(ctx, model.Notification{
		ReminderID:    r.ID,
		OffsetMinutes: offset,
		Title:         r.Title,
		Body:          notificationBody(r.Title, offset),
		EmittedAt:     now,
	}); err != nil {
		w.l.Errorf(ctx, "notifier: failed to record notification for reminder %d: %v", r.ID, err)
		return
	}

	if err := w.store.MarkOffsetNotified(ctx, r.ID, offset); err != nil {
		w.l.Errorf(ctx, "notifier: failed to mark offset %d for reminder %d: %v", offset, r.ID, err)
		return
	}

	w.l.Infof(ctx, "notifier: reminder %d offset %d notified", r.ID, offset)
	w.outbox.Emit(ctx, syncpkg.Event{
		Collection: syncpkg.CollectionReminders,
		Action:     syncpkg.ActionUpsert,
		ID:         r.ID,
	})
}

// DueOffsets returns the notify-before offsets of r that should fire
// at the given instant: their notify moment has passed, the reminder's
// fire moment is not long gone, and they were not sent before.
func DueOffsets(r model.Reminder, now time.Time) []int {
	if r.Completed || now.After(r.FireAt.Add(graceWindow)) {
		return nil
	}

	var due []int
	for _, offset := range r.NotifyBefore {
		if r.OffsetNotified(offset) {
			continue
		}
		notifyAt := r.FireAt.Add(-time.Duration(offset) * time.Minute)
		if !now.Before(notifyAt) {
			due = append(due, offset)
		}
	}
	return due
}

func notificationBody(title string, offset int) string {
	switch {
	case offset == 0:
		return fmt.Sprintf("Es hora de: %s", title)
	case offset == 60:
		return fmt.Sprintf("Recordatorio en 1 hora: %s", title)
	case offset > 60 && offset%60 == 0:
		return fmt.Sprintf("Recordatorio en %d horas: %s", offset/60, title)
	default:
		return fmt.Sprintf("Recordatorio en %d minutos: %s", offset, title)
	}
}
