package sync_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"lucas-asistente/internal/model"
	syncpkg "lucas-asistente/internal/sync"
	"lucas-asistente/pkg/gcalendar"
)

// mockLogger
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type fakeSource struct {
	mu       sync.Mutex
	task     model.Task
	reminder model.Reminder
	exported []int64
}

func (s *fakeSource) GetTask(ctx context.Context, id int64) (model.Task, error) {
	return s.task, nil
}

func (s *fakeSource) GetReminder(ctx context.Context, id int64) (model.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reminder, nil
}

func (s *fakeSource) SetExportedToCalendar(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exported = append(s.exported, id)
	s.reminder.ExportedToCalendar = true
	return nil
}

type remoteCall struct {
	table  string
	id     int64
	upsert bool
}

type fakeRemote struct {
	mu    sync.Mutex
	calls []remoteCall
}

func (r *fakeRemote) Upsert(ctx context.Context, table string, record interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, remoteCall{table: table, upsert: true})
	return nil
}

func (r *fakeRemote) Delete(ctx context.Context, table string, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, remoteCall{table: table, id: id})
	return nil
}

func (r *fakeRemote) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

type fakeCalendar struct {
	mu     sync.Mutex
	events []gcalendar.CreateEventRequest
}

func (c *fakeCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, req)
	return &gcalendar.Event{ID: "evt-1", Summary: req.Summary}, nil
}

func (c *fakeCalendar) eventCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestWorkerMirrorsEvents(t *testing.T) {
	source := &fakeSource{
		task: model.Task{ID: 1, Title: "Comprar pan", Priority: model.PriorityMedia},
		reminder: model.Reminder{
			ID:     2,
			Title:  "Pagar luz",
			FireAt: time.Now().Add(time.Hour),
		},
	}
	remote := &fakeRemote{}
	calendar := &fakeCalendar{}

	w := syncpkg.NewWorker(&mockLogger{}, source, remote, calendar, "UTC", 16)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	w.Emit(ctx, syncpkg.Event{Collection: syncpkg.CollectionTasks, Action: syncpkg.ActionUpsert, ID: 1})
	w.Emit(ctx, syncpkg.Event{Collection: syncpkg.CollectionReminders, Action: syncpkg.ActionUpsert, ID: 2})
	w.Emit(ctx, syncpkg.Event{Collection: syncpkg.CollectionTasks, Action: syncpkg.ActionDelete, ID: 1})

	waitFor(t, func() bool { return remote.callCount() == 3 })
	waitFor(t, func() bool { return calendar.eventCount() == 1 })

	source.mu.Lock()
	exported := len(source.exported)
	source.mu.Unlock()
	if exported != 1 {
		t.Errorf("reminder flagged exported %d times, want 1", exported)
	}

	// A second reminder upsert must not create a second event.
	w.Emit(ctx, syncpkg.Event{Collection: syncpkg.CollectionReminders, Action: syncpkg.ActionUpsert, ID: 2})
	waitFor(t, func() bool { return remote.callCount() == 4 })
	if calendar.eventCount() != 1 {
		t.Errorf("calendar event created twice for the same reminder")
	}
}

func TestWorkerDisabledWithoutCollaborators(t *testing.T) {
	w := syncpkg.NewWorker(&mockLogger{}, &fakeSource{}, nil, nil, "UTC", 4)
	if w.Enabled() {
		t.Error("worker should be disabled with no remote and no calendar")
	}
	// Emit on a disabled worker is a no-op, not a panic or block.
	w.Emit(context.Background(), syncpkg.Event{Collection: syncpkg.CollectionTasks, Action: syncpkg.ActionUpsert, ID: 1})
}
