package model

import "time"

// Priority is a task priority level.
type Priority string

const (
	PriorityAlta  Priority = "alta"
	PriorityMedia Priority = "media"
	PriorityBaja  Priority = "baja"
)

// Valid reports whether the priority is one of the known levels.
func (p Priority) Valid() bool {
	return p == PriorityAlta || p == PriorityMedia || p == PriorityBaja
}

// Task is a user task. A task may have at most one level of subtask
// nesting: a subtask (ParentID set) never has subtasks of its own. That
// is enforced by convention, not validation.
type Task struct {
	ID          int64
	Title       string
	Description string
	DueDate     *time.Time
	Priority    Priority
	Category    string
	Completed   bool
	CompletedAt *time.Time
	Order       int
	ParentID    *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsTopLevel reports whether the task has no parent. Subtasks are
// excluded from chat search and completion matching.
func (t Task) IsTopLevel() bool {
	return t.ParentID == nil
}
