package assistant

import (
	"context"

	"lucas-asistente/internal/model"
)

// UseCase defines the business logic interface for the chat assistant
// domain.
type UseCase interface {
	// HandleUserTurn runs one full conversation turn: it persists the
	// user message, drives the language model (executing any operations
	// it requests) and returns the final reply.
	HandleUserTurn(ctx context.Context, sc model.Scope, input TurnInput) (TurnOutput, error)

	// ListConversations returns all conversations, most recent first.
	ListConversations(ctx context.Context, sc model.Scope) ([]model.Conversation, error)

	// GetConversation returns one conversation with its messages.
	GetConversation(ctx context.Context, sc model.Scope, id string) (ConversationDetail, error)

	// DeleteConversation removes a conversation and its messages.
	DeleteConversation(ctx context.Context, sc model.Scope, id string) error
}
