package store

import (
	"context"
	"time"

	"lucas-asistente/internal/model"
)

// TaskFilter selects which tasks a listing returns.
type TaskFilter string

const (
	TaskFilterHoy         TaskFilter = "hoy"
	TaskFilterPendientes  TaskFilter = "pendientes"
	TaskFilterCompletadas TaskFilter = "completadas"
	TaskFilterTodas       TaskFilter = "todas"
)

// ReminderFilter selects which reminders a listing returns.
type ReminderFilter string

const (
	ReminderFilterHoy      ReminderFilter = "hoy"
	ReminderFilterProximos ReminderFilter = "proximos"
	ReminderFilterTodos    ReminderFilter = "todos"
)

// CreateTaskInput carries the fields for a new task.
type CreateTaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	Priority    model.Priority
	Category    string
	ParentID    *int64
}

// CreateReminderInput carries the fields for a new reminder.
type CreateReminderInput struct {
	Title        string
	Description  string
	FireAt       time.Time
	NotifyBefore []int
}

// TaskQuery filters a task listing. Now anchors the "hoy" day window.
type TaskQuery struct {
	Filter   TaskFilter
	Category string
	Now      time.Time
}

// ReminderQuery filters a reminder listing. Now anchors the day/week
// windows. Results are always sorted ascending by fire moment.
type ReminderQuery struct {
	Filter ReminderFilter
	Now    time.Time
}

// TaskRepository is the task collection interface.
type TaskRepository interface {
	CreateTask(ctx context.Context, input CreateTaskInput) (model.Task, error)
	GetTask(ctx context.Context, id int64) (model.Task, error)
	// ListTasks returns top-level tasks matching the query.
	ListTasks(ctx context.Context, q TaskQuery) ([]model.Task, error)
	// SearchOpenTasks matches incomplete top-level tasks whose title or
	// description contains the text, case-insensitively.
	SearchOpenTasks(ctx context.Context, text string) ([]model.Task, error)
	CompleteTask(ctx context.Context, id int64) error
	DeleteTask(ctx context.Context, id int64) error
}

// ReminderRepository is the reminder collection interface.
type ReminderRepository interface {
	CreateReminder(ctx context.Context, input CreateReminderInput) (model.Reminder, error)
	GetReminder(ctx context.Context, id int64) (model.Reminder, error)
	// ListReminders returns incomplete reminders matching the query,
	// ascending by fire moment.
	ListReminders(ctx context.Context, q ReminderQuery) ([]model.Reminder, error)
	// MarkOffsetNotified appends the offset to the reminder's sent set.
	// The set only grows; marking twice is a no-op.
	MarkOffsetNotified(ctx context.Context, id int64, minutes int) error
	SetExportedToCalendar(ctx context.Context, id int64) error
	CompleteReminder(ctx context.Context, id int64) error
	DeleteReminder(ctx context.Context, id int64) error
}

// ConversationRepository persists chat threads and their messages.
type ConversationRepository interface {
	CreateConversation(ctx context.Context, conv model.Conversation) error
	GetConversation(ctx context.Context, id string) (model.Conversation, error)
	ListConversations(ctx context.Context) ([]model.Conversation, error)
	// DeleteConversation removes the conversation and all its messages.
	DeleteConversation(ctx context.Context, id string) error
	AppendMessage(ctx context.Context, msg model.Message) (int64, error)
	ListMessages(ctx context.Context, conversationID string) ([]model.Message, error)
}

// CategoryRepository is the category catalog interface.
type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	CategoryExists(ctx context.Context, name string) (bool, error)
}

// SettingsRepository holds the single settings row.
type SettingsRepository interface {
	GetSettings(ctx context.Context) (model.Settings, error)
	UpdateSettings(ctx context.Context, s model.Settings) error
}

// NotificationRepository records emitted reminder notifications.
type NotificationRepository interface {
	AppendNotification(ctx context.Context, n model.Notification) (int64, error)
	ListNotificationsSince(ctx context.Context, since time.Time) ([]model.Notification, error)
}

// Store bundles every collection backed by the local database.
type Store interface {
	TaskRepository
	ReminderRepository
	ConversationRepository
	CategoryRepository
	SettingsRepository
	NotificationRepository

	Close() error
}
