package tools_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"lucas-asistente/internal/assistant/tools"
	"lucas-asistente/internal/model"
	"lucas-asistente/internal/store"
	syncpkg "lucas-asistente/internal/sync"
	"lucas-asistente/pkg/dateparse"
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

// recordingEmitter captures sync events.
type recordingEmitter struct {
	events []syncpkg.Event
}

func (e *recordingEmitter) Emit(ctx context.Context, ev syncpkg.Event) {
	e.events = append(e.events, ev)
}

// memStore is an in-memory task/reminder store for tool tests.
type memStore struct {
	tasks     []model.Task
	reminders []model.Reminder
	nextID    int64
	failAll   bool
}

var errStoreDown = errors.New("store down")

func (s *memStore) CreateTask(ctx context.Context, in store.CreateTaskInput) (model.Task, error) {
	if s.failAll {
		return model.Task{}, errStoreDown
	}
	s.nextID++
	priority := in.Priority
	if !priority.Valid() {
		priority = model.PriorityMedia
	}
	category := in.Category
	if category == "" {
		category = model.DefaultCategoryName
	}
	t := model.Task{
		ID:          s.nextID,
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Priority:    priority,
		Category:    category,
		ParentID:    in.ParentID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	s.tasks = append(s.tasks, t)
	return t, nil
}

func (s *memStore) GetTask(ctx context.Context, id int64) (model.Task, error) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, store.ErrNotFound
}

func (s *memStore) ListTasks(ctx context.Context, q store.TaskQuery) ([]model.Task, error) {
	if s.failAll {
		return nil, errStoreDown
	}
	var out []model.Task
	for _, t := range s.tasks {
		if !t.IsTopLevel() {
			continue
		}
		if q.Category != "" && t.Category != q.Category {
			continue
		}
		switch q.Filter {
		case store.TaskFilterPendientes:
			if t.Completed {
				continue
			}
		case store.TaskFilterCompletadas:
			if !t.Completed {
				continue
			}
		case store.TaskFilterHoy:
			if t.DueDate == nil || t.DueDate.Day() != q.Now.Day() {
				continue
			}
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *memStore) SearchOpenTasks(ctx context.Context, text string) ([]model.Task, error) {
	if s.failAll {
		return nil, errStoreDown
	}
	needle := strings.ToLower(text)
	var out []model.Task
	for _, t := range s.tasks {
		if t.Completed || !t.IsTopLevel() {
			continue
		}
		if strings.Contains(strings.ToLower(t.Title), needle) ||
			strings.Contains(strings.ToLower(t.Description), needle) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *memStore) CompleteTask(ctx context.Context, id int64) error {
	if s.failAll {
		return errStoreDown
	}
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = true
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *memStore) DeleteTask(ctx context.Context, id int64) error { return nil }

func (s *memStore) CreateReminder(ctx context.Context, in store.CreateReminderInput) (model.Reminder, error) {
	if s.failAll {
		return model.Reminder{}, errStoreDown
	}
	s.nextID++
	notify := in.NotifyBefore
	if len(notify) == 0 {
		notify = model.DefaultNotifyBefore
	}
	r := model.Reminder{
		ID:           s.nextID,
		Title:        in.Title,
		Description:  in.Description,
		FireAt:       in.FireAt,
		NotifyBefore: notify,
	}
	s.reminders = append(s.reminders, r)
	return r, nil
}

func (s *memStore) GetReminder(ctx context.Context, id int64) (model.Reminder, error) {
	for _, r := range s.reminders {
		if r.ID == id {
			return r, nil
		}
	}
	return model.Reminder{}, store.ErrNotFound
}

func (s *memStore) ListReminders(ctx context.Context, q store.ReminderQuery) ([]model.Reminder, error) {
	var out []model.Reminder
	for _, r := range s.reminders {
		if !r.Completed {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *memStore) MarkOffsetNotified(ctx context.Context, id int64, minutes int) error { return nil }
func (s *memStore) SetExportedToCalendar(ctx context.Context, id int64) error           { return nil }
func (s *memStore) CompleteReminder(ctx context.Context, id int64) error                { return nil }
func (s *memStore) DeleteReminder(ctx context.Context, id int64) error                  { return nil }

func newParser(t *testing.T) *dateparse.Parser {
	t.Helper()
	p, err := dateparse.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return p
}

func TestCreateTaskTool(t *testing.T) {
	ctx := context.Background()
	st := &memStore{}
	emitter := &recordingEmitter{}
	tool := tools.NewCreateTaskTool(st, newParser(t), emitter, &mockLogger{})

	t.Run("with due phrase", func(t *testing.T) {
		result, err := tool.Execute(ctx, map[string]interface{}{
			"titulo":      "Comprar leche",
			"fechaLimite": "mañana",
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if !strings.Contains(result, "He creado la tarea") {
			t.Errorf("unexpected result: %s", result)
		}
		if !strings.Contains(result, " para ") {
			t.Errorf("result missing due date mention: %s", result)
		}
		if st.tasks[0].DueDate == nil {
			t.Error("due date not stored")
		}
		if len(emitter.events) != 1 || emitter.events[0].Collection != syncpkg.CollectionTasks {
			t.Errorf("expected one task sync event, got %v", emitter.events)
		}
	})

	t.Run("unparseable due phrase is non-fatal", func(t *testing.T) {
		result, err := tool.Execute(ctx, map[string]interface{}{
			"titulo":      "Pagar alquiler",
			"fechaLimite": "cuando pueda",
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if !strings.Contains(result, "He creado la tarea") {
			t.Errorf("unexpected result: %s", result)
		}
		if st.tasks[1].DueDate != nil {
			t.Error("expected task without due date")
		}
	})

	t.Run("defaults", func(t *testing.T) {
		if _, err := tool.Execute(ctx, map[string]interface{}{"titulo": "Algo"}); err != nil {
			t.Fatalf("Execute: %v", err)
		}
		created := st.tasks[len(st.tasks)-1]
		if created.Priority != model.PriorityMedia || created.Category != "Personal" {
			t.Errorf("defaults not applied: %+v", created)
		}
	})
}

func TestCreateReminderTool(t *testing.T) {
	ctx := context.Background()
	st := &memStore{}
	emitter := &recordingEmitter{}
	tool := tools.NewCreateReminderTool(st, newParser(t), emitter, &mockLogger{})

	t.Run("unparseable phrase creates nothing", func(t *testing.T) {
		result, err := tool.Execute(ctx, map[string]interface{}{
			"titulo":    "Llamar",
			"fechaHora": "cuando sea",
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if !strings.Contains(result, "cuando sea") {
			t.Errorf("clarification should quote the phrase: %s", result)
		}
		if len(st.reminders) != 0 {
			t.Error("reminder created despite parse failure")
		}
		if len(emitter.events) != 0 {
			t.Error("sync event emitted despite parse failure")
		}
	})

	t.Run("success", func(t *testing.T) {
		result, err := tool.Execute(ctx, map[string]interface{}{
			"titulo":    "Llamar al médico",
			"fechaHora": "martes a las 9",
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if !strings.Contains(result, "He creado el recordatorio") {
			t.Errorf("unexpected result: %s", result)
		}
		if len(st.reminders) != 1 {
			t.Fatalf("expected one reminder, got %d", len(st.reminders))
		}
		r := st.reminders[0]
		if r.FireAt.Hour() != 9 {
			t.Errorf("fire hour = %d, want 9", r.FireAt.Hour())
		}
		if len(r.NotifyBefore) != 2 || r.NotifyBefore[0] != 0 || r.NotifyBefore[1] != 15 {
			t.Errorf("notify-before = %v, want [0 15]", r.NotifyBefore)
		}
		if len(emitter.events) != 1 || emitter.events[0].Collection != syncpkg.CollectionReminders {
			t.Errorf("expected one reminder sync event, got %v", emitter.events)
		}
	})

	t.Run("batch partial success", func(t *testing.T) {
		st2 := &memStore{}
		tool2 := tools.NewCreateReminderTool(st2, newParser(t), &recordingEmitter{}, &mockLogger{})

		first, err := tool2.Execute(ctx, map[string]interface{}{"titulo": "A", "fechaHora": "martes a las 9"})
		if err != nil {
			t.Fatalf("first call: %v", err)
		}
		second, err := tool2.Execute(ctx, map[string]interface{}{"titulo": "B", "fechaHora": "no tengo idea"})
		if err != nil {
			t.Fatalf("second call: %v", err)
		}

		if !strings.Contains(first, "He creado el recordatorio") {
			t.Errorf("first call should succeed: %s", first)
		}
		if !strings.Contains(second, "No pude entender") {
			t.Errorf("second call should clarify: %s", second)
		}
		if len(st2.reminders) != 1 {
			t.Errorf("expected exactly one reminder after partial batch, got %d", len(st2.reminders))
		}
	})

	t.Run("two weekdays give distinct moments", func(t *testing.T) {
		st3 := &memStore{}
		tool3 := tools.NewCreateReminderTool(st3, newParser(t), &recordingEmitter{}, &mockLogger{})

		for _, phrase := range []string{"martes a las 9", "jueves a las 9"} {
			if _, err := tool3.Execute(ctx, map[string]interface{}{"titulo": "X", "fechaHora": phrase}); err != nil {
				t.Fatalf("Execute(%q): %v", phrase, err)
			}
		}
		if len(st3.reminders) != 2 {
			t.Fatalf("expected two reminders, got %d", len(st3.reminders))
		}
		diff := st3.reminders[1].FireAt.Sub(st3.reminders[0].FireAt)
		if diff < 0 {
			diff = -diff
		}
		if diff < 48*time.Hour {
			t.Errorf("fire moments only %v apart", diff)
		}
	})
}

func TestCompleteTaskTool(t *testing.T) {
	ctx := context.Background()

	seed := func(titles ...string) (*memStore, *tools.CompleteTaskTool, *recordingEmitter) {
		st := &memStore{}
		for _, title := range titles {
			st.nextID++
			st.tasks = append(st.tasks, model.Task{ID: st.nextID, Title: title})
		}
		emitter := &recordingEmitter{}
		return st, tools.NewCompleteTaskTool(st, emitter, &mockLogger{}), emitter
	}

	t.Run("zero matches mutates nothing", func(t *testing.T) {
		st, tool, emitter := seed("Comprar pan")
		result, err := tool.Execute(ctx, map[string]interface{}{"busqueda": "leche"})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if !strings.Contains(result, "No encontré ninguna tarea pendiente") {
			t.Errorf("unexpected result: %s", result)
		}
		if st.tasks[0].Completed {
			t.Error("task mutated on zero-match path")
		}
		if len(emitter.events) != 0 {
			t.Error("sync event emitted on zero-match path")
		}
	})

	t.Run("single match completes and becomes unfindable", func(t *testing.T) {
		st, tool, emitter := seed("Comprar pan")
		result, err := tool.Execute(ctx, map[string]interface{}{"busqueda": "pan"})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if !strings.Contains(result, "completada") {
			t.Errorf("unexpected result: %s", result)
		}
		if !st.tasks[0].Completed {
			t.Error("task not completed")
		}
		if len(emitter.events) != 1 {
			t.Errorf("expected one sync event, got %d", len(emitter.events))
		}

		again, err := tool.Execute(ctx, map[string]interface{}{"busqueda": "pan"})
		if err != nil {
			t.Fatalf("second Execute: %v", err)
		}
		if !strings.Contains(again, "No encontré ninguna tarea pendiente") {
			t.Errorf("completed task still findable: %s", again)
		}
	})

	t.Run("multiple matches list at most five and mutate nothing", func(t *testing.T) {
		titles := make([]string, 7)
		for i := range titles {
			titles[i] = fmt.Sprintf("Llamar cliente %d", i+1)
		}
		st, tool, emitter := seed(titles...)

		result, err := tool.Execute(ctx, map[string]interface{}{"busqueda": "llamar"})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if !strings.Contains(result, "Encontré varias tareas") {
			t.Errorf("unexpected result: %s", result)
		}
		listed := strings.Count(result, "\n") // header blank line + 5 rows + blank + question
		candidates := 0
		for i := 1; i <= 7; i++ {
			if strings.Contains(result, fmt.Sprintf("Llamar cliente %d", i)) {
				candidates++
			}
		}
		if candidates != 5 {
			t.Errorf("listed %d candidates (lines %d), want 5", candidates, listed)
		}
		for _, task := range st.tasks {
			if task.Completed {
				t.Error("task mutated on ambiguous path")
			}
		}
		if len(emitter.events) != 0 {
			t.Error("sync event emitted on ambiguous path")
		}
	})
}

func TestListTasksTool(t *testing.T) {
	ctx := context.Background()
	st := &memStore{}
	tool := tools.NewListTasksTool(st, &mockLogger{})

	t.Run("empty pendientes", func(t *testing.T) {
		result, err := tool.Execute(ctx, map[string]interface{}{})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if result != "¡No tienes tareas pendientes! Todo al día." {
			t.Errorf("unexpected result: %s", result)
		}
	})

	t.Run("unknown filter", func(t *testing.T) {
		result, err := tool.Execute(ctx, map[string]interface{}{"filtro": "urgentes"})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if result != "No encontré tareas con ese filtro." {
			t.Errorf("unexpected result: %s", result)
		}
	})

	t.Run("truncates at ten", func(t *testing.T) {
		for i := 1; i <= 12; i++ {
			st.nextID++
			st.tasks = append(st.tasks, model.Task{
				ID:       st.nextID,
				Title:    fmt.Sprintf("Tarea %d", i),
				Priority: model.PriorityMedia,
			})
		}
		result, err := tool.Execute(ctx, map[string]interface{}{"filtro": "pendientes"})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if !strings.Contains(result, "...y 2 más") {
			t.Errorf("missing truncation note: %s", result)
		}
		if strings.Contains(result, "Tarea 11") {
			t.Errorf("row past the cap rendered: %s", result)
		}
		if !strings.Contains(result, "○ 🟡 Tarea 1") {
			t.Errorf("row annotations missing: %s", result)
		}
	})
}

func TestListRemindersTool(t *testing.T) {
	ctx := context.Background()
	st := &memStore{}
	tool := tools.NewListRemindersTool(st, &mockLogger{})

	t.Run("empty proximos", func(t *testing.T) {
		result, err := tool.Execute(ctx, map[string]interface{}{})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if result != "No tienes recordatorios próximos." {
			t.Errorf("unexpected result: %s", result)
		}
	})

	t.Run("rows carry fire moment", func(t *testing.T) {
		st.reminders = append(st.reminders, model.Reminder{
			ID:     1,
			Title:  "Pagar luz",
			FireAt: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		})
		result, err := tool.Execute(ctx, map[string]interface{}{"filtro": "todos"})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if !strings.Contains(result, "🔔 Pagar luz - 10/3 a las 09:00") {
			t.Errorf("unexpected row format: %s", result)
		}
	})
}

func TestRegistryDispatch(t *testing.T) {
	ctx := context.Background()
	st := &memStore{failAll: true}
	registry := tools.NewRegistry(&mockLogger{})
	registry.Register(tools.NewListTasksTool(st, &mockLogger{}))

	t.Run("unknown operation", func(t *testing.T) {
		result := registry.Dispatch(ctx, "delete_everything", nil)
		if result != "No reconozco esa acción." {
			t.Errorf("unexpected result: %s", result)
		}
	})

	t.Run("store failure becomes generic message", func(t *testing.T) {
		result := registry.Dispatch(ctx, "list_tasks", map[string]interface{}{"filtro": "pendientes"})
		if !strings.Contains(result, "Hubo un error") {
			t.Errorf("unexpected result: %s", result)
		}
	})

	t.Run("schema surface", func(t *testing.T) {
		defs := registry.ToOpenAITools()
		if len(defs) != 1 || defs[0].Function.Name != "list_tasks" {
			t.Fatalf("unexpected tool definitions: %+v", defs)
		}
	})
}
