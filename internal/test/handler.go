package test

import (
	"github.com/gin-gonic/gin"
)

// HandleIdentify runs language identification only, without generating a reply
// @Summary Test language identification
// @Description Report which label, decision path and persona a text would get, without calling any model
// @Tags test
// @Accept json
// @Produce json
// @Param request body IdentifyRequest true "Text to identify"
// @Success 200 {object} IdentifyResponse
// @Router /test/identify [post]
func (h *handler) HandleIdentify(c *gin.Context) {
	ctx := c.Request.Context()

	var req IdentifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, IdentifyResponse{
			Success: false,
			Error:   "Invalid request",
			Details: err.Error(),
		})
		return
	}

	det := h.identifier.Detect(ctx, req.Text)

	resp := IdentifyResponse{
		Success:     true,
		Text:        req.Text,
		Label:       string(det.Label),
		Display:     det.Display,
		Path:        string(det.Path),
		Code:        det.Code,
		Confidence:  det.Confidence,
		GermanHits:  det.German,
		EnglishHits: det.English,
	}
	if h.personas != nil {
		if p, ok := h.personas.Get(det.Label); ok {
			resp.Persona = p.Name
		}
	}

	h.l.Infof(ctx, "internal.test.HandleIdentify: label=%s path=%s german=%d english=%d",
		det.Label, det.Path, det.German, det.English)

	c.JSON(200, resp)
}

// HandleHealthCheck returns the health status of test endpoints
// @Summary Test health check
// @Description Check if test endpoints are available, list the loaded personas and count live sessions
// @Tags test
// @Produce json
// @Success 200 {object} HealthCheckResponse
// @Router /test/health [get]
func (h *handler) HandleHealthCheck(c *gin.Context) {
	resp := HealthCheckResponse{
		Status:   "ok",
		Message:  "Test endpoints are available",
		Personas: []string{},
	}
	if h.personas != nil {
		for _, p := range h.personas.All() {
			resp.Personas = append(resp.Personas, p.Name)
		}
	}
	if h.sessions != nil {
		resp.ActiveSessions = h.sessions.ActiveSessions(c.Request.Context())
	}
	c.JSON(200, resp)
}
