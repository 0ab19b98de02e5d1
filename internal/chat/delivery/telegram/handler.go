package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"uxo-chatbot/internal/chat"
	pkgLog "uxo-chatbot/pkg/log"
	pkgResponse "uxo-chatbot/pkg/response"
	pkgTelegram "uxo-chatbot/pkg/telegram"
)

type handler struct {
	l   pkgLog.Logger
	uc  chat.UseCase
	bot *pkgTelegram.Bot
}

// HandleWebhook acknowledges the update right away and answers in the
// background, since a RAG answer can outlast Telegram's webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "internal.chat.delivery.telegram.HandleWebhook: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	msg := update.IncomingMessage()
	if msg == nil || msg.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// keeps the request id, drops the request cancellation
	bgCtx := context.WithoutCancel(ctx)
	go func() {
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "internal.chat.delivery.telegram.processMessage: chat_id=%d: %v", msg.Chat.ID, err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, messageError)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}
	sessionID := SessionID(msg.Chat.ID)

	switch command(text) {
	case commandStart:
		return h.bot.SendMessage(ctx, msg.Chat.ID, messageStart)
	case commandHelp:
		return h.bot.SendMessage(ctx, msg.Chat.ID, messageHelp)
	case commandReset:
		if err := h.uc.Reset(ctx, sessionID); err != nil {
			return err
		}
		return h.bot.SendMessage(ctx, msg.Chat.ID, messageReset)
	}

	if err := h.bot.SendChatAction(ctx, msg.Chat.ID, pkgTelegram.ChatActionTyping); err != nil {
		h.l.Warnf(ctx, "internal.chat.delivery.telegram.processMessage: chat action: %v", err)
	}

	out, err := h.uc.Answer(ctx, chat.AnswerInput{
		Question:  text,
		Language:  Language,
		SessionID: sessionID,
	})
	if err != nil {
		return err
	}
	return h.bot.SendMessage(ctx, msg.Chat.ID, out.Answer)
}

// SessionID is the session key used for a Telegram chat.
func SessionID(chatID int64) string {
	return fmt.Sprintf("%s%d", SessionPrefix, chatID)
}

// command returns the bot command in text, without any "@botname" suffix.
func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd := strings.Fields(text)[0]
	if i := strings.Index(cmd, "@"); i > 0 {
		cmd = cmd[:i]
	}
	return strings.ToLower(cmd)
}
