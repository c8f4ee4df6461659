package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chat_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Language identification
	DetectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_language_detections_total",
			Help: "Language detections by resulting label and deciding path",
		},
		[]string{"label", "path"}, // path: too_short, primary, keyword
	)

	// Dispatch
	DispatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_dispatch_total",
			Help: "Dispatched messages by label and outcome",
		},
		[]string{"label", "outcome"}, // outcome: reply, fallback, error
	)

	DispatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chat_dispatch_duration_seconds",
			Help:    "Time from identification to reply",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"label"},
	)

	// Sessions
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chat_active_sessions",
			Help: "Number of conversation logs currently held in memory",
		},
	)

	RateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_rate_limit_hits_total",
			Help: "Requests rejected by the per-session limiter",
		},
		[]string{"channel"},
	)

	// WebSocket
	WebsocketConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "chat_websocket_active_connections",
			Help: "Number of active WebSocket connections",
		},
	)

	WebsocketMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_websocket_messages_total",
			Help: "Total number of WebSocket frames",
		},
		[]string{"direction"}, // direction: sent, received
	)
)

// Dispatch outcomes
const (
	OutcomeReply    = "reply"
	OutcomeFallback = "fallback"
	OutcomeError    = "error"
)
