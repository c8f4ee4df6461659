package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multilanguage-agent/config"
	chathttp "multilanguage-agent/internal/conversation/delivery/http"
	"multilanguage-agent/internal/conversation/repository/memory"
	"multilanguage-agent/internal/conversation/usecase"
	"multilanguage-agent/internal/dispatcher"
	"multilanguage-agent/internal/langid"
	"multilanguage-agent/internal/middleware"
	"multilanguage-agent/pkg/log"
	"multilanguage-agent/pkg/response"
)

// keywordIdentifier labels German when the text contains "hallo".
type keywordIdentifier struct{}

func (keywordIdentifier) Detect(_ context.Context, text string) langid.Detection {
	label := langid.English
	if strings.Contains(strings.ToLower(text), "hallo") {
		label = langid.German
	}
	return langid.Detection{Label: label, Display: label.Display(), Path: langid.PathKeyword}
}

type echoDispatcher struct{}

func (echoDispatcher) Dispatch(_ context.Context, utterance string, label langid.Label) dispatcher.Result {
	return dispatcher.Result{Text: "**echo:** " + utterance, Label: label, Persona: "Echo <Agent>"}
}

func newServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := log.NewNop()
	uc := usecase.New(l, memory.New(l, 100, time.Hour), keywordIdentifier{}, echoDispatcher{})
	h, err := chathttp.New(l, uc)
	require.NoError(t, err)

	mw := middleware.New(l, config.SessionConfig{RateLimitPerMin: 600}, false)
	r := gin.New()
	chathttp.RegisterRoutes(r.Group("/api/v1"), h, mw)
	chathttp.RegisterUIRoutes(r, h, mw)
	return r
}

// client replays the session cookie across requests.
type client struct {
	t       *testing.T
	r       *gin.Engine
	cookies map[string]*http.Cookie
}

func newClient(t *testing.T, r *gin.Engine) *client {
	return &client{t: t, r: r, cookies: map[string]*http.Cookie{}}
}

func (c *client) do(req *http.Request) *httptest.ResponseRecorder {
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	c.r.ServeHTTP(w, req)
	for _, ck := range w.Result().Cookies() {
		if ck.MaxAge < 0 {
			delete(c.cookies, ck.Name)
			continue
		}
		c.cookies[ck.Name] = ck
	}
	return w
}

func (c *client) json(method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := c.do(req)

	var resp response.Resp
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	data, _ := resp.Data.(map[string]any)
	return w, data
}

func (c *client) form(path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

func TestAPI_SendHistoryClear(t *testing.T) {
	c := newClient(t, newServer(t))

	w, data := c.json(http.MethodPost, "/api/v1/chat/messages", `{"text":"Hallo zusammen"}`)
	require.Equal(t, http.StatusOK, w.Code)
	msg := data["message"].(map[string]any)
	assert.Equal(t, "de", msg["label"])
	assert.Equal(t, "🇩🇪 German", msg["label_display"])
	assert.Equal(t, "**echo:** Hallo zusammen", msg["reply"])
	assert.Equal(t, false, data["fallback"])

	_, _ = c.json(http.MethodPost, "/api/v1/chat/messages", `{"text":"good morning"}`)

	w, data = c.json(http.MethodGet, "/api/v1/chat/messages", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, data["total"])
	msgs := data["messages"].([]any)
	assert.Equal(t, "Hallo zusammen", msgs[0].(map[string]any)["utterance"])
	assert.Equal(t, "good morning", msgs[1].(map[string]any)["utterance"])

	w, _ = c.json(http.MethodDelete, "/api/v1/chat/messages", "")
	require.Equal(t, http.StatusOK, w.Code)

	_, data = c.json(http.MethodGet, "/api/v1/chat/messages", "")
	assert.EqualValues(t, 0, data["total"])
}

func TestAPI_SessionsAreSeparate(t *testing.T) {
	r := newServer(t)
	alice, bob := newClient(t, r), newClient(t, r)

	_, _ = alice.json(http.MethodPost, "/api/v1/chat/messages", `{"text":"hello"}`)

	_, data := bob.json(http.MethodGet, "/api/v1/chat/messages", "")
	assert.EqualValues(t, 0, data["total"])
	_, data = alice.json(http.MethodGet, "/api/v1/chat/messages", "")
	assert.EqualValues(t, 1, data["total"])
}

func TestAPI_SendRejectsBlank(t *testing.T) {
	c := newClient(t, newServer(t))

	for _, body := range []string{`{"text":""}`, `{"text":"   "}`, `{}`, `not json`} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/messages", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := c.do(req)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}

	_, data := c.json(http.MethodGet, "/api/v1/chat/messages", "")
	assert.EqualValues(t, 0, data["total"])
}

func TestAPI_Detect(t *testing.T) {
	c := newClient(t, newServer(t))

	w, data := c.json(http.MethodPost, "/api/v1/chat/detect", `{"text":"Hallo Welt"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "de", data["label"])
	assert.Equal(t, "keyword", data["path"])

	_, data = c.json(http.MethodGet, "/api/v1/chat/messages", "")
	assert.EqualValues(t, 0, data["total"], "detect does not touch history")
}

func TestUI_PostRedirectGet(t *testing.T) {
	c := newClient(t, newServer(t))

	w := c.do(httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No messages yet.")

	w = c.form("/chat/send", url.Values{"message": {"Hallo, wie geht's?"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	w = c.do(httptest.NewRequest(http.MethodGet, "/", nil))
	body := w.Body.String()
	assert.Contains(t, body, "Detected language: 🇩🇪 German")
	assert.Contains(t, body, "You (🇩🇪 German)")
	assert.Contains(t, body, "<strong>echo:</strong>", "reply is rendered from markdown")
	assert.Contains(t, body, "Echo &lt;Agent&gt;", "persona name is escaped")

	// flash is shown once
	w = c.do(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotContains(t, w.Body.String(), "Detected language")

	w = c.form("/chat/clear", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	w = c.do(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, w.Body.String(), "Chat history cleared!")
	assert.Contains(t, w.Body.String(), "No messages yet.")
}

func TestUI_BlankMessageWarns(t *testing.T) {
	c := newClient(t, newServer(t))

	w := c.form("/chat/send", url.Values{"message": {"   "}})
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = c.do(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, w.Body.String(), "Please enter a message.")
	assert.Contains(t, w.Body.String(), "No messages yet.")
}
