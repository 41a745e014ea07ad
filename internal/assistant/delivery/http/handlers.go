package http

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"lucas-asistente/internal/assistant"
	"lucas-asistente/internal/model"
	"lucas-asistente/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Runs one assistant turn: persists the message, lets the model request operations and returns the final reply.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "User message"
// @Success     200 {object} response.Resp{data=chatResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errEmptyMessage, nil)
		return
	}

	out, err := h.uc.HandleUserTurn(ctx, model.Scope{}, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.HandleUserTurn: %v", err)
		if errors.Is(err, assistant.ErrOracleUnavailable) {
			response.InternalError(c, h.mapError(err))
			return
		}
		response.Error(c, h.mapError(err), nil)
		return
	}

	executed := out.Operations
	if executed == nil {
		executed = []string{}
	}
	response.OK(c, chatResp{
		ConversationID:    out.ConversationID,
		Reply:             out.Reply,
		FunctionsExecuted: executed,
	})
}

// ListConversations godoc
// @Summary     List conversations
// @Description Returns all conversations, most recently active first.
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} response.Resp{data=[]conversationResp}
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/conversations [GET]
func (h *handler) ListConversations(c *gin.Context) {
	ctx := c.Request.Context()

	convs, err := h.uc.ListConversations(ctx, model.Scope{})
	if err != nil {
		h.l.Errorf(ctx, "uc.ListConversations: %v", err)
		response.InternalError(c, err)
		return
	}

	out := make([]conversationResp, 0, len(convs))
	for _, conv := range convs {
		out = append(out, newConversationResp(conv))
	}
	response.OK(c, out)
}

// GetConversation godoc
// @Summary     Get a conversation
// @Description Returns one conversation with its full message history.
// @Tags        Assistant
// @Produce     json
// @Param       id path string true "Conversation ID"
// @Success     200 {object} response.Resp{data=conversationDetailResp}
// @Failure     400 {object} response.Resp "Not Found"
// @Router      /api/v1/conversations/{id} [GET]
func (h *handler) GetConversation(c *gin.Context) {
	ctx := c.Request.Context()

	detail, err := h.uc.GetConversation(ctx, model.Scope{}, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.GetConversation: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newConversationDetailResp(detail))
}

// DeleteConversation godoc
// @Summary     Delete a conversation
// @Description Removes a conversation and all its messages.
// @Tags        Assistant
// @Produce     json
// @Param       id path string true "Conversation ID"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Not Found"
// @Router      /api/v1/conversations/{id} [DELETE]
func (h *handler) DeleteConversation(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DeleteConversation(ctx, model.Scope{}, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.DeleteConversation: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, map[string]string{"status": "deleted"})
}

// ListNotifications godoc
// @Summary     List emitted notifications
// @Description Returns reminder notifications emitted since the given time (default: start of today).
// @Tags        Assistant
// @Produce     json
// @Param       since query string false "RFC3339 lower bound"
// @Success     200 {object} response.Resp{data=[]notificationResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/notifications [GET]
func (h *handler) ListNotifications(c *gin.Context) {
	ctx := c.Request.Context()

	var req listNotificationsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	since, err := req.sinceTime(time.Now())
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	notifications, err := h.notifications.ListNotificationsSince(ctx, since)
	if err != nil {
		h.l.Errorf(ctx, "notifications.ListNotificationsSince: %v", err)
		response.InternalError(c, err)
		return
	}

	out := make([]notificationResp, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, newNotificationResp(n))
	}
	response.OK(c, out)
}
