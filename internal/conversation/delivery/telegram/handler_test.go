package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"multilanguage-agent/internal/conversation"
	"multilanguage-agent/internal/conversation/delivery/telegram"
	"multilanguage-agent/internal/conversation/repository/memory"
	"multilanguage-agent/internal/conversation/usecase"
	"multilanguage-agent/internal/dispatcher"
	"multilanguage-agent/internal/langid"
	"multilanguage-agent/internal/middleware"
	"multilanguage-agent/internal/model"
	pkgLog "multilanguage-agent/pkg/log"
	pkgTelegram "multilanguage-agent/pkg/telegram"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type germanIdentifier struct{}

func (germanIdentifier) Detect(context.Context, string) langid.Detection {
	return langid.Detection{Label: langid.German, Display: langid.German.Display(), Path: langid.PathKeyword}
}

type cannedDispatcher struct{}

func (cannedDispatcher) Dispatch(_ context.Context, utterance string, label langid.Label) dispatcher.Result {
	return dispatcher.Result{Text: "Antwort auf: " + utterance, Label: label, Persona: "German Assistant"}
}

// capture records every Bot API call made against the fake Telegram server.
type capture struct {
	mu       sync.Mutex
	messages []string
	actions  []string
}

func (c *capture) snapshot() ([]string, []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.messages...), append([]string(nil), c.actions...)
}

// ── Test Helpers ───────────────────────────────────────────────────────────

type testEnv struct {
	engine *gin.Engine
	uc     conversation.UseCase
	rec    *capture
}

func newTestEnv(t *testing.T, limiter *middleware.RateLimiter) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := &capture{}
	tgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		json.NewDecoder(r.Body).Decode(&payload)

		rec.mu.Lock()
		switch {
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			text, _ := payload["text"].(string)
			rec.messages = append(rec.messages, text)
		case strings.HasSuffix(r.URL.Path, "/sendChatAction"):
			action, _ := payload["action"].(string)
			rec.actions = append(rec.actions, action)
		}
		rec.mu.Unlock()

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok": true}`))
	}))
	t.Cleanup(tgServer.Close)

	l := pkgLog.NewNop()
	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(tgServer.URL)

	uc := usecase.New(l, memory.New(l, 100, time.Hour), germanIdentifier{}, cannedDispatcher{})

	engine := gin.New()
	telegram.RegisterRoutes(engine, telegram.New(l, uc, bot, limiter))

	return &testEnv{engine: engine, uc: uc, rec: rec}
}

func sendWebhook(engine *gin.Engine, text string) *httptest.ResponseRecorder {
	update := pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 1,
			Chat:      &pkgTelegram.Chat{ID: 123},
			From:      &pkgTelegram.User{ID: 456, Username: "anna"},
			Text:      text,
		},
	}
	body, _ := json.Marshal(update)
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func waitForMessages(c *capture, atLeast int, timeout time.Duration) []string {
	deadline := time.Now().Add(timeout)
	for {
		msgs, _ := c.snapshot()
		if len(msgs) >= atLeast || time.Now().After(deadline) {
			return msgs
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func assertContains(t *testing.T, msgs []string, substr string) {
	t.Helper()
	for _, m := range msgs {
		if strings.Contains(m, substr) {
			return
		}
	}
	t.Errorf("expected a message containing %q, got: %v", substr, msgs)
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHandleWebhook_InvalidJSON(t *testing.T) {
	env := newTestEnv(t, nil)

	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBufferString("{bad json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHandleWebhook_IgnoresNonMessageUpdates(t *testing.T) {
	env := newTestEnv(t, nil)

	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBufferString(`{"update_id": 9}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ignored") {
		t.Errorf("expected ignored 200, got %d %s", w.Code, w.Body.String())
	}
}

func TestHandleWebhook_Commands(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"/start", "Willkommen"},
		{"/help", "Commands: /start, /help, /clear"},
		{"/help@multilang_bot", "Commands:"},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			env := newTestEnv(t, nil)
			w := sendWebhook(env.engine, tc.text)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			msgs := waitForMessages(env.rec, 1, 2*time.Second)
			assertContains(t, msgs, tc.want)
		})
	}
}

func TestHandleWebhook_MessageIsAnsweredAndLogged(t *testing.T) {
	env := newTestEnv(t, nil)

	w := sendWebhook(env.engine, "Wie spät ist es?")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "accepted") {
		t.Fatalf("expected accepted 200, got %d %s", w.Code, w.Body.String())
	}

	msgs := waitForMessages(env.rec, 1, 2*time.Second)
	assertContains(t, msgs, "🇩🇪 German")
	assertContains(t, msgs, "Antwort auf: Wie spät ist es?")

	_, actions := env.rec.snapshot()
	if len(actions) != 1 || actions[0] != "typing" {
		t.Errorf("expected one typing action, got %v", actions)
	}

	hist, err := env.uc.History(context.Background(), model.Scope{SessionID: "telegram:123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hist.Entries) != 1 || hist.Entries[0].Utterance != "Wie spät ist es?" {
		t.Errorf("unexpected history: %+v", hist.Entries)
	}
}

func TestHandleWebhook_Clear(t *testing.T) {
	env := newTestEnv(t, nil)

	sendWebhook(env.engine, "Hallo")
	waitForMessages(env.rec, 1, 2*time.Second)

	sendWebhook(env.engine, "/clear")
	msgs := waitForMessages(env.rec, 2, 2*time.Second)
	assertContains(t, msgs, "Chat history cleared!")

	hist, _ := env.uc.History(context.Background(), model.Scope{SessionID: "telegram:123"})
	if len(hist.Entries) != 0 {
		t.Errorf("expected empty history after /clear, got %d entries", len(hist.Entries))
	}
}

func TestHandleWebhook_RateLimited(t *testing.T) {
	// 10/min gives a burst of one
	env := newTestEnv(t, middleware.NewRateLimiter(10))

	sendWebhook(env.engine, "Erste Nachricht")
	waitForMessages(env.rec, 1, 2*time.Second)

	sendWebhook(env.engine, "Zweite Nachricht")
	msgs := waitForMessages(env.rec, 2, 2*time.Second)
	assertContains(t, msgs, "Too many messages")
}
