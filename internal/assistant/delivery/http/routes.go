package http

import (
	"github.com/gin-gonic/gin"

	"lucas-asistente/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The
// chat endpoint is rate limited; the rest are plain reads/deletes.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.ChatRateLimit(), h.Chat)

	conversations := rg.Group("/conversations")
	{
		conversations.GET("", h.ListConversations)
		conversations.GET("/:id", h.GetConversation)
		conversations.DELETE("/:id", h.DeleteConversation)
	}

	rg.GET("/notifications", h.ListNotifications)
}
