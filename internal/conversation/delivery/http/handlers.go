package http

import (
	"github.com/gin-gonic/gin"

	"multilanguage-agent/internal/model"
	"multilanguage-agent/pkg/response"
)

// Send godoc
// @Summary     Send a chat message
// @Description Identifies the message language, answers it with the matching persona and appends the exchange to the session history.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body sendReq true "Message"
// @Success     200  {object} sendResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/messages [POST]
func (h *handler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Send(ctx, h.scope(c, model.ChannelAPI), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Send: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSendResp(output))
}

// History godoc
// @Summary     Get chat history
// @Description Returns the session's exchanges, oldest first.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} historyResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/messages [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.History(ctx, h.scope(c, model.ChannelAPI))
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newHistoryResp(output))
}

// Clear godoc
// @Summary     Clear chat history
// @Description Empties the session's history. The session itself is kept.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/messages [DELETE]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Clear(ctx, h.scope(c, model.ChannelAPI)); err != nil {
		h.l.Errorf(ctx, "uc.Clear: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Detect godoc
// @Summary     Detect message language
// @Description Reports the language decision for a text without answering it or touching the history.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body detectReq true "Text"
// @Success     200  {object} detectResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/detect [POST]
func (h *handler) Detect(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDetectReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	det, err := h.uc.Detect(ctx, req.Text)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newDetectResp(det))
}
