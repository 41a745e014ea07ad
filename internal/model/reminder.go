package model

import "time"

// Reminder is a scheduled notification. NotifyBefore holds the offsets in
// minutes before FireAt at which a notification should be emitted.
// NotifiedOffsets records which of those offsets were already sent; it
// only ever grows.
type Reminder struct {
	ID                 int64
	Title              string
	Description        string
	FireAt             time.Time
	NotifyBefore       []int
	Completed          bool
	NotifiedOffsets    []int
	ExportedToCalendar bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// OffsetNotified reports whether the given notify-before offset was
// already emitted for this reminder.
func (r Reminder) OffsetNotified(minutes int) bool {
	for _, m := range r.NotifiedOffsets {
		if m == minutes {
			return true
		}
	}
	return false
}

// DefaultNotifyBefore is the notify-before offset set applied to
// reminders created through the assistant.
var DefaultNotifyBefore = []int{0, 15}
