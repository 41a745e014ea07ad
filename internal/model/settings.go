package model

// Settings is the single user-settings row.
type Settings struct {
	ID                   int64
	NotificationsEnabled bool
	NotifyOffsets        []int
	DefaultCategory      string
}

// DefaultSettings is seeded into an empty store on first open.
var DefaultSettings = Settings{
	NotificationsEnabled: false,
	NotifyOffsets:        []int{0, 15},
	DefaultCategory:      DefaultCategoryName,
}
