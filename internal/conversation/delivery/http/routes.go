package http

import (
	"github.com/gin-gonic/gin"

	"multilanguage-agent/internal/middleware"
	"multilanguage-agent/internal/model"
)

// RegisterRoutes maps the JSON API. Sending is rate limited per session.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	chat := rg.Group("/chat", mw.Session())
	{
		chat.POST("/messages", mw.RateLimit(model.ChannelAPI), h.Send)
		chat.GET("/messages", h.History)
		chat.DELETE("/messages", h.Clear)
		chat.POST("/detect", h.Detect)
	}
}

// RegisterUIRoutes maps the server-rendered chat page.
func RegisterUIRoutes(r gin.IRouter, h Handler, mw middleware.Middleware) {
	ui := r.Group("", mw.Session())
	{
		ui.GET("/", h.Index)
		ui.POST("/chat/send", mw.RateLimit(model.ChannelWeb), h.UISend)
		ui.POST("/chat/clear", h.UIClear)
	}
}
