package assistant

import "lucas-asistente/internal/model"

// TurnInput is one user chat turn. An empty ConversationID starts a
// new conversation.
type TurnInput struct {
	ConversationID string
	Text           string
}

// TurnOutput is the assistant's final reply for a turn. Operations
// lists the operation names executed during the turn, in order.
type TurnOutput struct {
	ConversationID string
	Reply          string
	Operations     []string
}

// ConversationDetail pairs a conversation with its messages.
type ConversationDetail struct {
	Conversation model.Conversation
	Messages     []model.Message
}
