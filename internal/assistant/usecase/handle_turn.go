package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"lucas-asistente/internal/assistant"
	"lucas-asistente/internal/model"
	"lucas-asistente/internal/store"
	"lucas-asistente/pkg/openai"
)

// HandleUserTurn drives one conversation turn. The protocol is bounded
// to at most two oracle calls: if the first reply requests operations
// they are executed in order, their results are echoed back with their
// call ids, and the second reply is final.
func (uc *implUsecase) HandleUserTurn(ctx context.Context, sc model.Scope, input assistant.TurnInput) (assistant.TurnOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return assistant.TurnOutput{}, assistant.ErrEmptyMessage
	}

	conv, err := uc.ensureConversation(ctx, input.ConversationID, text)
	if err != nil {
		return assistant.TurnOutput{}, err
	}

	if _, err := uc.repo.AppendMessage(ctx, model.Message{
		ConversationID: conv.ID,
		Role:           model.RoleUser,
		Content:        text,
	}); err != nil {
		return assistant.TurnOutput{}, fmt.Errorf("failed to persist user message: %w", err)
	}

	messages, err := uc.buildHistory(ctx, conv.ID)
	if err != nil {
		return assistant.TurnOutput{}, err
	}

	first, err := uc.oracle.CreateChatCompletion(ctx, openai.ChatRequest{
		Model:       uc.oracle.Model(),
		Messages:    messages,
		Tools:       uc.registry.ToOpenAITools(),
		ToolChoice:  "auto",
		Temperature: chatTemperature,
		MaxTokens:   firstPassMaxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "assistant: %s: %v", ErrMsgOracleFirstPass, err)
		return assistant.TurnOutput{}, assistant.ErrOracleUnavailable
	}
	if len(first.Choices) == 0 {
		uc.l.Errorf(ctx, "assistant: %s", ErrMsgEmptyReply)
		return assistant.TurnOutput{}, assistant.ErrOracleUnavailable
	}

	reply := first.Choices[0].Message
	if len(reply.ToolCalls) == 0 {
		return uc.finishTurn(ctx, conv.ID, reply.Content, nil)
	}

	// Execute every requested operation in the order received. Each
	// call commits before the next starts; a later failure does not
	// undo earlier ones.
	uc.l.Infof(ctx, "assistant: executing %d operation(s)", len(reply.ToolCalls))
	messages = append(messages, reply)
	executed := make([]string, 0, len(reply.ToolCalls))
	for _, call := range reply.ToolCalls {
		result := uc.registry.DispatchCall(ctx, call)
		executed = append(executed, call.Function.Name)
		messages = append(messages, openai.Message{
			Role:       openai.RoleTool,
			ToolCallID: call.ID,
			Content:    result,
		})
	}

	final, err := uc.oracle.CreateChatCompletion(ctx, openai.ChatRequest{
		Model:       uc.oracle.Model(),
		Messages:    messages,
		Temperature: chatTemperature,
		MaxTokens:   finalPassMaxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "assistant: %s: %v", ErrMsgOracleFinalPass, err)
		return assistant.TurnOutput{}, assistant.ErrOracleUnavailable
	}
	if len(final.Choices) == 0 {
		uc.l.Errorf(ctx, "assistant: %s", ErrMsgEmptyReply)
		return assistant.TurnOutput{}, assistant.ErrOracleUnavailable
	}

	return uc.finishTurn(ctx, conv.ID, final.Choices[0].Message.Content, executed)
}

// ensureConversation loads the conversation or starts a new one titled
// after the first message.
func (uc *implUsecase) ensureConversation(ctx context.Context, id, text string) (model.Conversation, error) {
	if id != "" {
		conv, err := uc.repo.GetConversation(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			return model.Conversation{}, assistant.ErrConversationNotFound
		}
		if err != nil {
			return model.Conversation{}, fmt.Errorf("failed to load conversation: %w", err)
		}
		return conv, nil
	}

	now := uc.now()
	conv := model.Conversation{
		ID:        uuid.NewString(),
		Title:     truncateTitle(text),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.CreateConversation(ctx, conv); err != nil {
		return model.Conversation{}, fmt.Errorf("failed to create conversation: %w", err)
	}
	return conv, nil
}

// buildHistory assembles the oracle message list: system prompt with
// time context, then the most recent persisted messages.
func (uc *implUsecase) buildHistory(ctx context.Context, conversationID string) ([]openai.Message, error) {
	history, err := uc.repo.ListMessages(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}
	if len(history) > maxHistoryMessages {
		history = history[len(history)-maxHistoryMessages:]
	}

	messages := make([]openai.Message, 0, len(history)+1)
	messages = append(messages, openai.Message{
		Role:    openai.RoleSystem,
		Content: systemPrompt + uc.timeContext(),
	})
	for _, m := range history {
		messages = append(messages, openai.Message{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}
	return messages, nil
}

func (uc *implUsecase) finishTurn(ctx context.Context, conversationID, reply string, executed []string) (assistant.TurnOutput, error) {
	if _, err := uc.repo.AppendMessage(ctx, model.Message{
		ConversationID: conversationID,
		Role:           model.RoleAssistant,
		Content:        reply,
	}); err != nil {
		return assistant.TurnOutput{}, fmt.Errorf("failed to persist assistant message: %w", err)
	}
	return assistant.TurnOutput{
		ConversationID: conversationID,
		Reply:          reply,
		Operations:     executed,
	}, nil
}

func (uc *implUsecase) timeContext() string {
	now := uc.now()
	tomorrow := now.AddDate(0, 0, 1)
	return fmt.Sprintf(timeContextTemplate,
		spanishWeekday(now), now.Format("2006-01-02"), spanishWeekday(tomorrow))
}

var spanishWeekdayNames = [...]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

func spanishWeekday(t time.Time) string {
	return spanishWeekdayNames[t.Weekday()]
}
