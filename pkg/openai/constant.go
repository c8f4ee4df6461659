package openai

import "time"

const (
	// DefaultModel is the default chat model
	DefaultModel = "gpt-4o-mini"

	// DefaultTimeout bounds a single completion call
	DefaultTimeout = 60 * time.Second
)
