package usecase

import (
	"context"
	"errors"
	"fmt"

	"lucas-asistente/internal/assistant"
	"lucas-asistente/internal/model"
	"lucas-asistente/internal/store"
)

// ListConversations returns all conversations, most recent first.
func (uc *implUsecase) ListConversations(ctx context.Context, sc model.Scope) ([]model.Conversation, error) {
	convs, err := uc.repo.ListConversations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return convs, nil
}

// GetConversation returns one conversation with its messages.
func (uc *implUsecase) GetConversation(ctx context.Context, sc model.Scope, id string) (assistant.ConversationDetail, error) {
	conv, err := uc.repo.GetConversation(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return assistant.ConversationDetail{}, assistant.ErrConversationNotFound
	}
	if err != nil {
		return assistant.ConversationDetail{}, fmt.Errorf("failed to load conversation: %w", err)
	}

	messages, err := uc.repo.ListMessages(ctx, id)
	if err != nil {
		return assistant.ConversationDetail{}, fmt.Errorf("failed to load messages: %w", err)
	}

	return assistant.ConversationDetail{
		Conversation: conv,
		Messages:     messages,
	}, nil
}

// DeleteConversation removes a conversation and its messages.
func (uc *implUsecase) DeleteConversation(ctx context.Context, sc model.Scope, id string) error {
	err := uc.repo.DeleteConversation(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return assistant.ErrConversationNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete conversation: %w", err)
	}
	return nil
}

// truncateTitle derives a conversation title from the first message.
func truncateTitle(text string) string {
	runes := []rune(text)
	if len(runes) <= titleMaxRunes {
		return text
	}
	return string(runes[:titleMaxRunes]) + "..."
}
