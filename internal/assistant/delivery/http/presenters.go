package http

import (
	"time"

	"lucas-asistente/internal/assistant"
	"lucas-asistente/internal/model"
)

// --- Request DTOs ---

type chatReq struct {
	ConversationID string `json:"conversation_id"`
	Message        string `json:"message" binding:"required,min=1,max=2000"`
}

func (r chatReq) toInput() assistant.TurnInput {
	return assistant.TurnInput{
		ConversationID: r.ConversationID,
		Text:           r.Message,
	}
}

type listNotificationsReq struct {
	Since string `form:"since"`
}

// sinceTime defaults to the start of today when no bound is given.
func (r listNotificationsReq) sinceTime(now time.Time) (time.Time, error) {
	if r.Since == "" {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	return time.Parse(time.RFC3339, r.Since)
}

// --- Response DTOs ---

type chatResp struct {
	ConversationID    string   `json:"conversation_id"`
	Reply             string   `json:"reply"`
	FunctionsExecuted []string `json:"functions_executed"`
}

type conversationResp struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newConversationResp(conv model.Conversation) conversationResp {
	return conversationResp{
		ID:        conv.ID,
		Title:     conv.Title,
		CreatedAt: conv.CreatedAt,
		UpdatedAt: conv.UpdatedAt,
	}
}

type messageResp struct {
	ID        int64     `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type conversationDetailResp struct {
	Conversation conversationResp `json:"conversation"`
	Messages     []messageResp    `json:"messages"`
}

func newConversationDetailResp(detail assistant.ConversationDetail) conversationDetailResp {
	out := conversationDetailResp{
		Conversation: newConversationResp(detail.Conversation),
		Messages:     make([]messageResp, 0, len(detail.Messages)),
	}
	for _, m := range detail.Messages {
		out.Messages = append(out.Messages, messageResp{
			ID:        m.ID,
			Role:      string(m.Role),
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}
	return out
}

type notificationResp struct {
	ID            int64     `json:"id"`
	ReminderID    int64     `json:"reminder_id"`
	OffsetMinutes int       `json:"offset_minutes"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	EmittedAt     time.Time `json:"emitted_at"`
}

func newNotificationResp(n model.Notification) notificationResp {
	return notificationResp{
		ID:            n.ID,
		ReminderID:    n.ReminderID,
		OffsetMinutes: n.OffsetMinutes,
		Title:         n.Title,
		Body:          n.Body,
		EmittedAt:     n.EmittedAt,
	}
}
