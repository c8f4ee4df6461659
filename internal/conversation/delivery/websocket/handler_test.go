package websocket_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multilanguage-agent/config"
	"multilanguage-agent/internal/conversation"
	ws "multilanguage-agent/internal/conversation/delivery/websocket"
	"multilanguage-agent/internal/conversation/repository/memory"
	"multilanguage-agent/internal/conversation/usecase"
	"multilanguage-agent/internal/dispatcher"
	"multilanguage-agent/internal/langid"
	"multilanguage-agent/internal/middleware"
	"multilanguage-agent/internal/model"
	"multilanguage-agent/pkg/log"
)

type fixedIdentifier struct{ label langid.Label }

func (f fixedIdentifier) Detect(context.Context, string) langid.Detection {
	return langid.Detection{Label: f.label, Display: f.label.Display(), Path: langid.PathPrimary}
}

type fixedDispatcher struct{}

func (fixedDispatcher) Dispatch(_ context.Context, _ string, label langid.Label) dispatcher.Result {
	if !label.Supported() {
		return dispatcher.Result{Text: dispatcher.FallbackMessage, Label: langid.Unsupported, Fallback: true}
	}
	return dispatcher.Result{Text: "Hallo!", Label: label, Persona: "German Assistant"}
}

func newServer(t *testing.T, label langid.Label, perMin int) (*httptest.Server, conversation.UseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := log.NewNop()
	uc := usecase.New(l, memory.New(l, 100, time.Hour), fixedIdentifier{label: label}, fixedDispatcher{})
	mw := middleware.New(l, config.SessionConfig{RateLimitPerMin: perMin}, false)

	r := gin.New()
	ws.RegisterRoutes(r, ws.New(l, uc, mw.Limiter()), mw)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, uc
}

func dial(t *testing.T, srv *httptest.Server) (*websocket.Conn, *http.Response) {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/chat"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn, resp
}

func read(t *testing.T, conn *websocket.Conn) ws.Response {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var resp ws.Response
	require.NoError(t, conn.ReadJSON(&resp))
	return resp
}

func TestChat_MessageThenClear(t *testing.T) {
	srv, uc := newServer(t, langid.German, 600)
	conn, resp := dial(t, srv)

	var sessionID string
	for _, ck := range resp.Cookies() {
		if ck.Name == middleware.DefaultCookieName {
			sessionID = ck.Value
		}
	}
	require.NotEmpty(t, sessionID, "handshake carries the session cookie")

	require.NoError(t, conn.WriteJSON(ws.Request{Type: ws.TypeMessage, Text: "Guten Tag"}))

	lang := read(t, conn)
	assert.Equal(t, ws.TypeLanguage, lang.Type)
	assert.Equal(t, "de", lang.Label)
	assert.Equal(t, "🇩🇪 German", lang.Display)

	reply := read(t, conn)
	assert.Equal(t, ws.TypeReply, reply.Type)
	assert.Equal(t, "Hallo!", reply.Reply)
	assert.Equal(t, "German Assistant", reply.Persona)

	hist, err := uc.History(context.Background(), model.Scope{SessionID: sessionID})
	require.NoError(t, err)
	assert.Len(t, hist.Entries, 1)

	require.NoError(t, conn.WriteJSON(ws.Request{Type: ws.TypeClear}))
	assert.Equal(t, ws.TypeCleared, read(t, conn).Type)

	hist, _ = uc.History(context.Background(), model.Scope{SessionID: sessionID})
	assert.Empty(t, hist.Entries)
}

func TestChat_Fallback(t *testing.T) {
	srv, _ := newServer(t, langid.Unsupported, 600)
	conn, _ := dial(t, srv)

	require.NoError(t, conn.WriteJSON(ws.Request{Type: ws.TypeMessage, Text: "Bonjour"}))
	assert.Equal(t, "unsupported", read(t, conn).Label)

	reply := read(t, conn)
	assert.True(t, reply.Fallback)
	assert.Equal(t, dispatcher.FallbackMessage, reply.Reply)
	assert.Equal(t, "❓ Unknown", reply.Display)
}

func TestChat_Errors(t *testing.T) {
	srv, _ := newServer(t, langid.English, 600)
	conn, _ := dial(t, srv)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	resp := read(t, conn)
	assert.Equal(t, ws.TypeError, resp.Type)
	assert.Equal(t, ws.ErrTypeInvalidRequest, resp.ErrorType)

	require.NoError(t, conn.WriteJSON(ws.Request{Type: "dance"}))
	assert.Equal(t, ws.ErrTypeInvalidRequest, read(t, conn).ErrorType)

	require.NoError(t, conn.WriteJSON(ws.Request{Type: ws.TypeMessage, Text: "   "}))
	assert.Equal(t, ws.ErrTypeEmptyMessage, read(t, conn).ErrorType)

	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, []byte{1, 2, 3}))
	assert.Equal(t, ws.ErrTypeInvalidRequest, read(t, conn).ErrorType)
}

func TestChat_RateLimited(t *testing.T) {
	// 10/min gives a burst of one message
	srv, _ := newServer(t, langid.English, 10)
	conn, _ := dial(t, srv)

	require.NoError(t, conn.WriteJSON(ws.Request{Type: ws.TypeMessage, Text: "hello"}))
	assert.Equal(t, ws.TypeLanguage, read(t, conn).Type)
	assert.Equal(t, ws.TypeReply, read(t, conn).Type)

	require.NoError(t, conn.WriteJSON(ws.Request{Type: ws.TypeMessage, Text: "hello again"}))
	assert.Equal(t, ws.ErrTypeRateLimited, read(t, conn).ErrorType)
}
