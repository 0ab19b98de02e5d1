package telegram

import (
	"github.com/gin-gonic/gin"

	"uxo-chatbot/internal/chat"
	pkgLog "uxo-chatbot/pkg/log"
	pkgTelegram "uxo-chatbot/pkg/telegram"
)

// Handler is the Telegram webhook handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc chat.UseCase, bot *pkgTelegram.Bot) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		bot: bot,
	}
}

// RegisterRoutes maps the webhook endpoint.
func RegisterRoutes(r *gin.RouterGroup, h Handler) {
	r.POST("/webhook/telegram", h.HandleWebhook)
}
