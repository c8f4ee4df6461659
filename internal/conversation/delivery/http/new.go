package http

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"multilanguage-agent/internal/conversation"
	"multilanguage-agent/pkg/log"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler is the public interface for the conversation HTTP delivery layer.
type Handler interface {
	// JSON API
	Send(c *gin.Context)
	History(c *gin.Context)
	Clear(c *gin.Context)
	Detect(c *gin.Context)

	// Form UI
	Index(c *gin.Context)
	UISend(c *gin.Context)
	UIClear(c *gin.Context)
}

type handler struct {
	l    log.Logger
	uc   conversation.UseCase
	tmpl *template.Template
	md   goldmark.Markdown
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the conversation domain.
func New(l log.Logger, uc conversation.UseCase) (Handler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &handler{
		l:    l,
		uc:   uc,
		tmpl: tmpl,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
		),
	}, nil
}
