package http

import (
	"github.com/gin-gonic/gin"

	"multilanguage-agent/internal/middleware"
	"multilanguage-agent/internal/model"
)

// processSendReq binds and validates the send message request body.
func (h *handler) processSendReq(c *gin.Context) (sendReq, error) {
	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processDetectReq binds and validates the detect request body.
func (h *handler) processDetectReq(c *gin.Context) (detectReq, error) {
	var req detectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// scope builds the caller's scope from the session middleware.
func (h *handler) scope(c *gin.Context, channel model.Channel) model.Scope {
	return model.Scope{
		SessionID: middleware.GetSessionID(c),
		Channel:   channel,
	}
}
