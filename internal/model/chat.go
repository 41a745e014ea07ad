package model

import "time"

// Message roles stored with chat history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Conversation groups the messages of one chat thread.
type Conversation struct {
	ID        string
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Message is a single persisted chat message.
type Message struct {
	ID             int64
	ConversationID string
	Role           string
	Content        string
	CreatedAt      time.Time
}
