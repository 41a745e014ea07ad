package sync

import (
	"time"

	"lucas-asistente/internal/model"
	"lucas-asistente/pkg/supabase"
)

// Action identifies the kind of change to mirror remotely.
type Action string

const (
	ActionUpsert Action = "upsert"
	ActionDelete Action = "delete"
)

// Collection names a mirrored table. Values match the remote table
// names.
type Collection string

const (
	CollectionTasks     Collection = "tareas"
	CollectionReminders Collection = "recordatorios"
)

// Event is an outbound change notice emitted after a successful local
// mutation. The worker reads the current row state when it processes
// the event, so events carry only the key.
type Event struct {
	Collection Collection
	Action     Action
	ID         int64
}

func taskRecord(t model.Task) supabase.TaskRecord {
	return supabase.TaskRecord{
		ID:          t.ID,
		Title:       t.Title,
		Description: optString(t.Description),
		DueDate:     optTime(t.DueDate),
		Priority:    string(t.Priority),
		Category:    t.Category,
		Completed:   t.Completed,
		CompletedAt: optTime(t.CompletedAt),
		Order:       t.Order,
		ParentID:    t.ParentID,
		Images:      []string{},
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func reminderRecord(r model.Reminder) supabase.ReminderRecord {
	notifyBefore := r.NotifyBefore
	if notifyBefore == nil {
		notifyBefore = []int{}
	}
	notified := r.NotifiedOffsets
	if notified == nil {
		notified = []int{}
	}
	return supabase.ReminderRecord{
		ID:                 r.ID,
		Title:              r.Title,
		Description:        optString(r.Description),
		FireAt:             r.FireAt.UTC().Format(time.RFC3339),
		NotifyBefore:       notifyBefore,
		Completed:          r.Completed,
		NotifiedOffsets:    notified,
		ExportedToCalendar: r.ExportedToCalendar,
		CreatedAt:          r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:          r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
