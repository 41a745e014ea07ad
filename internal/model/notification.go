package model

import "time"

// Notification is an emitted reminder notification, kept so the UI can
// poll and display it. One row per (reminder, offset) pair.
type Notification struct {
	ID            int64
	ReminderID    int64
	OffsetMinutes int
	Title         string
	Body          string
	EmittedAt     time.Time
}
