package test

// IdentifyRequest represents a language identification request
type IdentifyRequest struct {
	Text string `json:"text" binding:"required"`
}

// IdentifyResponse represents a language identification response
type IdentifyResponse struct {
	Success     bool    `json:"success"`
	Text        string  `json:"text"`
	Label       string  `json:"label,omitempty"`
	Display     string  `json:"display,omitempty"`
	Path        string  `json:"path,omitempty"`
	Code        string  `json:"code,omitempty"`
	Confidence  float64 `json:"confidence,omitempty"`
	GermanHits  int     `json:"german_hits"`
	EnglishHits int     `json:"english_hits"`
	Persona     string  `json:"persona,omitempty"`
	Error       string  `json:"error,omitempty"`
	Details     string  `json:"details,omitempty"`
}

// HealthCheckResponse represents a health check response
type HealthCheckResponse struct {
	Status         string   `json:"status"`
	Message        string   `json:"message"`
	Personas       []string `json:"personas"`
	ActiveSessions int      `json:"active_sessions"`
}
