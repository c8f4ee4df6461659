package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"multilanguage-agent/internal/conversation"
	"multilanguage-agent/internal/metrics"
	"multilanguage-agent/internal/model"
	pkgLog "multilanguage-agent/pkg/log"
	pkgResponse "multilanguage-agent/pkg/response"
	pkgTelegram "multilanguage-agent/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a background
// goroutine, since generation regularly takes longer than Telegram waits.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (edits, polls, channel posts)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	go func() {
		// the request context is cancelled once the response is written
		bgCtx := context.WithValue(context.Background(), pkgLog.SessionIDKey{}, sessionID(msg.Chat.ID))
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, MsgFailed)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	sc := model.Scope{SessionID: sessionID(msg.Chat.ID), Channel: model.ChannelTelegram}
	if msg.From != nil {
		sc.Username = msg.From.Username
	}

	// ---- Built-in commands ----
	switch command(text) {
	case CmdStart:
		return h.bot.SendMessage(ctx, msg.Chat.ID, MsgWelcome)
	case CmdHelp:
		return h.bot.SendMessage(ctx, msg.Chat.ID, MsgHelp)
	case CmdClear:
		if err := h.uc.Clear(ctx, sc); err != nil {
			return fmt.Errorf("uc.Clear: %w", err)
		}
		return h.bot.SendMessage(ctx, msg.Chat.ID, MsgCleared)
	}

	if h.limiter != nil && !h.limiter.Allow(sc.SessionID) {
		metrics.RateLimitHits.WithLabelValues(string(model.ChannelTelegram)).Inc()
		return h.bot.SendMessage(ctx, msg.Chat.ID, MsgRateLimited)
	}

	if err := h.bot.SendChatAction(ctx, msg.Chat.ID, ChatActionTyping); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to send chat action: %v", err)
	}

	output, err := h.uc.Send(ctx, sc, conversation.SendInput{Text: text})
	if err != nil {
		return fmt.Errorf("uc.Send: %w", err)
	}

	return h.bot.SendMessage(ctx, msg.Chat.ID, formatReply(output))
}

// formatReply prefixes the reply with the language tag of the exchange.
func formatReply(out conversation.SendOutput) string {
	return out.Entry.LabelDisplay + "\n\n" + out.Entry.Reply
}

// command returns the bot command in text, without a "@botname" suffix, or "".
func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd, _, _ := strings.Cut(strings.Fields(text)[0], "@")
	return strings.ToLower(cmd)
}

func sessionID(chatID int64) string {
	return fmt.Sprintf("telegram:%d", chatID)
}
