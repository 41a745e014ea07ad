package sync

import (
	"context"

	"lucas-asistente/internal/model"
	"lucas-asistente/pkg/gcalendar"
	pkgLog "lucas-asistente/pkg/log"
)

// RecordSource reads and flags local row state when an event is
// processed.
type RecordSource interface {
	GetTask(ctx context.Context, id int64) (model.Task, error)
	GetReminder(ctx context.Context, id int64) (model.Reminder, error)
	SetExportedToCalendar(ctx context.Context, id int64) error
}

// CalendarExporter creates calendar events for reminders that have not
// been exported yet.
type CalendarExporter interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// Worker pushes local mutations to the remote mirror in the
// background. Emitters fire-and-forget into a bounded queue; push
// failures are logged and never surfaced to the user path.
type Worker struct {
	source   RecordSource
	remote   Remote
	calendar CalendarExporter
	timezone string
	l        pkgLog.Logger
	events   chan Event
}

// NewWorker creates a mirror-push worker. A nil remote disables
// mirroring; a nil calendar disables calendar export. Either may be
// configured without the other.
func NewWorker(l pkgLog.Logger, source RecordSource, remote Remote, calendar CalendarExporter, timezone string, queueSize int) *Worker {
	if queueSize <= 0 {
		queueSize = 256
	}
	return &Worker{
		source:   source,
		remote:   remote,
		calendar: calendar,
		timezone: timezone,
		l:        l,
		events:   make(chan Event, queueSize),
	}
}

// Enabled reports whether any downstream collaborator is configured.
func (w *Worker) Enabled() bool {
	return w.remote != nil || w.calendar != nil
}

// Emit queues an event without blocking. A full queue drops the event.
func (w *Worker) Emit(ctx context.Context, e Event) {
	if !w.Enabled() {
		return
	}
	select {
	case w.events <- e:
	default:
		w.l.Warnf(ctx, "sync: queue full, dropping %s %s id=%d", e.Action, e.Collection, e.ID)
	}
}

var _ Emitter = (*Worker)(nil)
