package http

import (
	"github.com/gin-gonic/gin"

	"lucas-asistente/internal/assistant"
	"lucas-asistente/internal/store"
	pkgLog "lucas-asistente/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery
// layer.
type Handler interface {
	Chat(c *gin.Context)
	ListConversations(c *gin.Context)
	GetConversation(c *gin.Context)
	DeleteConversation(c *gin.Context)
	ListNotifications(c *gin.Context)
}

type handler struct {
	l             pkgLog.Logger
	uc            assistant.UseCase
	notifications store.NotificationRepository
}

// New creates the HTTP handler for the assistant domain.
func New(l pkgLog.Logger, uc assistant.UseCase, notifications store.NotificationRepository) *handler {
	return &handler{
		l:             l,
		uc:            uc,
		notifications: notifications,
	}
}
