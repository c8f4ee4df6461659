package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"multilanguage-agent/internal/conversation"
	"multilanguage-agent/internal/metrics"
	"multilanguage-agent/internal/middleware"
	"multilanguage-agent/internal/model"
)

// Chat upgrades the request and serves the chat protocol until the client leaves.
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	// gorilla writes its own handshake response; forward the session cookie explicitly
	respHeader := http.Header{}
	for _, v := range c.Writer.Header().Values("Set-Cookie") {
		respHeader.Add("Set-Cookie", v)
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, respHeader)
	if err != nil {
		h.l.Warnf(ctx, "websocket.Chat: upgrade failed: %v", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	metrics.WebsocketConnections.Inc()
	defer metrics.WebsocketConnections.Dec()

	sc := model.Scope{SessionID: middleware.GetSessionID(c), Channel: model.ChannelWebSocket}
	h.l.Infof(ctx, "websocket.Chat: connection established remote=%s", c.ClientIP())

	h.serve(ctx, conn, sc)
}

func (h *handler) serve(ctx context.Context, conn *websocket.Conn, sc model.Scope) {
	conn.SetReadLimit(maxFrameSize)
	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(readTimeout))
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
					return
				}
			}
		}
	}()

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.l.Warnf(ctx, "websocket.serve: read error: %v", err)
			}
			return
		}
		metrics.WebsocketMessagesTotal.WithLabelValues("received").Inc()
		// any client activity keeps the connection alive
		_ = conn.SetReadDeadline(time.Now().Add(readTimeout))

		if messageType != websocket.TextMessage {
			h.sendError(conn, ErrTypeInvalidRequest, "only text frames are supported")
			continue
		}
		h.handleFrame(ctx, conn, sc, data)
	}
}

func (h *handler) handleFrame(ctx context.Context, conn *websocket.Conn, sc model.Scope, data []byte) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		h.sendError(conn, ErrTypeInvalidRequest, fmt.Sprintf("failed to parse request: %v", err))
		return
	}

	switch req.Type {
	case TypeMessage:
		h.handleMessage(ctx, conn, sc, req.Text)
	case TypeClear:
		if err := h.uc.Clear(ctx, sc); err != nil {
			h.l.Errorf(ctx, "uc.Clear: %v", err)
			h.sendError(conn, ErrTypeInternal, "failed to clear history")
			return
		}
		h.send(conn, Response{Type: TypeCleared})
	default:
		h.sendError(conn, ErrTypeInvalidRequest, "unsupported frame type: "+req.Type)
	}
}

func (h *handler) handleMessage(ctx context.Context, conn *websocket.Conn, sc model.Scope, text string) {
	if h.limiter != nil && !h.limiter.Allow(sc.SessionID) {
		metrics.RateLimitHits.WithLabelValues(string(model.ChannelWebSocket)).Inc()
		h.sendError(conn, ErrTypeRateLimited, "too many messages, slow down")
		return
	}

	out, err := h.uc.Send(ctx, sc, conversation.SendInput{Text: text})
	if err != nil {
		if errors.Is(err, conversation.ErrEmptyMessage) {
			h.sendError(conn, ErrTypeEmptyMessage, err.Error())
			return
		}
		h.l.Errorf(ctx, "uc.Send: %v", err)
		h.sendError(conn, ErrTypeInternal, "failed to process message")
		return
	}

	h.send(conn, Response{
		Type:    TypeLanguage,
		Label:   string(out.Detection.Label),
		Display: out.Detection.Display,
		Path:    string(out.Detection.Path),
	})
	h.send(conn, Response{
		Type:     TypeReply,
		Label:    string(out.Entry.Label),
		Display:  out.Entry.LabelDisplay,
		Reply:    out.Entry.Reply,
		Persona:  out.Entry.Persona,
		Fallback: out.Fallback,
		Failed:   out.Failed,
	})
}

func (h *handler) send(conn *websocket.Conn, resp Response) {
	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := conn.WriteJSON(resp); err != nil {
		h.l.Warnf(context.Background(), "websocket.send: %v", err)
		return
	}
	metrics.WebsocketMessagesTotal.WithLabelValues("sent").Inc()
}

func (h *handler) sendError(conn *websocket.Conn, errType, message string) {
	h.send(conn, Response{Type: TypeError, Error: message, ErrorType: errType})
}
