package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multilanguage-agent/config"
	"multilanguage-agent/internal/conversation/repository/memory"
	"multilanguage-agent/internal/conversation/usecase"
	"multilanguage-agent/internal/dispatcher"
	"multilanguage-agent/internal/langid"
	"multilanguage-agent/internal/middleware"
	"multilanguage-agent/pkg/log"
	"multilanguage-agent/pkg/telegram"
)

type stubIdentifier struct{}

func (stubIdentifier) Detect(context.Context, string) langid.Detection {
	return langid.Detection{Label: langid.English, Display: langid.English.Display(), Path: langid.PathKeyword}
}

type stubDispatcher struct{}

func (stubDispatcher) Dispatch(_ context.Context, _ string, label langid.Label) dispatcher.Result {
	return dispatcher.Result{Text: "hi", Label: label}
}

func newTestServer(t *testing.T, bot *telegram.Bot) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	srv, err := New(l, Config{
		Logger:         l,
		Port:           8080,
		Mode:           gin.TestMode,
		Environment:    "test",
		Middleware:     middleware.New(l, config.SessionConfig{}, false),
		ConversationUC: usecase.New(l, memory.New(l, 10, time.Hour), stubIdentifier{}, stubDispatcher{}),
		TelegramBot:    bot,
	})
	require.NoError(t, err)
	return srv
}

func TestNew_Validation(t *testing.T) {
	l := log.NewNop()
	_, err := New(l, Config{Mode: gin.TestMode, Port: 8080})
	assert.Error(t, err, "usecase is required")

	_, err = New(l, Config{Mode: gin.TestMode})
	assert.Error(t, err, "port is required")
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, nil)

	for _, path := range []string{"/health", "/ready", "/live", "/metrics"} {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Contains(t, w.Body.String(), ServiceName)
}

func TestDomainRoutes(t *testing.T) {
	srv := newTestServer(t, nil)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<form")

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/messages", strings.NewReader(`{"text":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook/telegram", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusNotFound, w.Code, "webhook is only mounted with a bot")
}

func TestTelegramRouteWithBot(t *testing.T) {
	srv := newTestServer(t, telegram.NewBot("test-token"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", strings.NewReader(`{"update_id":1}`))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRun_StopsOnCancel(t *testing.T) {
	l := log.NewNop()
	srv, err := New(l, Config{
		Logger:         l,
		Port:           18089,
		Mode:           gin.TestMode,
		Middleware:     middleware.New(l, config.SessionConfig{}, false),
		ConversationUC: usecase.New(l, memory.New(l, 10, time.Hour), stubIdentifier{}, stubDispatcher{}),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
