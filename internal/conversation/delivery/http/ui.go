package http

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"multilanguage-agent/internal/conversation"
	"multilanguage-agent/internal/model"
)

const (
	flashCookie = "chat_flash"
	flashMaxAge = 60

	FlashInfo    = "info"
	FlashSuccess = "success"
	FlashWarning = "warning"
	FlashError   = "error"

	MsgDetected     = "Detected language: %s"
	MsgCleared      = "Chat history cleared!"
	MsgEmptyMessage = "Please enter a message."
	MsgFailed       = "Something went wrong, please try again."
)

type flash struct {
	Kind string
	Text string
}

type entryView struct {
	Utterance    string
	Reply        template.HTML
	LabelDisplay string
	Persona      string
	Time         string
}

type pageView struct {
	Flash   *flash
	Entries []entryView
}

// Index renders the chat page with the session's history.
func (h *handler) Index(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.History(ctx, h.scope(c, model.ChannelWeb))
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		c.String(http.StatusInternalServerError, MsgFailed)
		return
	}

	view := pageView{Flash: h.popFlash(c), Entries: make([]entryView, len(output.Entries))}
	for i, e := range output.Entries {
		view.Entries[i] = entryView{
			Utterance:    e.Utterance,
			Reply:        h.renderMarkdown(e.Reply),
			LabelDisplay: e.LabelDisplay,
			Persona:      e.Persona,
			Time:         e.CreatedAt.Format("15:04"),
		}
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := h.tmpl.ExecuteTemplate(c.Writer, "index.html", view); err != nil {
		h.l.Errorf(ctx, "tmpl.Execute: %v", err)
	}
}

// UISend handles the chat form and redirects back to the page.
func (h *handler) UISend(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Send(ctx, h.scope(c, model.ChannelWeb), conversation.SendInput{Text: c.PostForm("message")})
	switch {
	case errors.Is(err, conversation.ErrEmptyMessage):
		h.setFlash(c, FlashWarning, MsgEmptyMessage)
	case err != nil:
		h.l.Errorf(ctx, "uc.Send: %v", err)
		h.setFlash(c, FlashError, MsgFailed)
	case output.Failed:
		h.setFlash(c, FlashError, fmt.Sprintf(MsgDetected, output.Entry.LabelDisplay))
	default:
		h.setFlash(c, FlashInfo, fmt.Sprintf(MsgDetected, output.Entry.LabelDisplay))
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// UIClear empties the history and redirects back to the page.
func (h *handler) UIClear(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Clear(ctx, h.scope(c, model.ChannelWeb)); err != nil {
		h.l.Errorf(ctx, "uc.Clear: %v", err)
		h.setFlash(c, FlashError, MsgFailed)
	} else {
		h.setFlash(c, FlashSuccess, MsgCleared)
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// renderMarkdown turns a reply into HTML. Raw HTML in the reply is not passed through.
func (h *handler) renderMarkdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := h.md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}

func (h *handler) setFlash(c *gin.Context, kind, text string) {
	c.SetCookie(flashCookie, kind+"|"+text, flashMaxAge, "/", "", false, true)
}

// popFlash reads the pending flash message and expires the cookie.
// gin escapes cookie values on write and unescapes them on read.
func (h *handler) popFlash(c *gin.Context) *flash {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	kind, text, ok := strings.Cut(raw, "|")
	if !ok {
		return nil
	}
	switch kind {
	case FlashInfo, FlashSuccess, FlashWarning, FlashError:
	default:
		kind = FlashInfo
	}
	return &flash{Kind: kind, Text: text}
}
