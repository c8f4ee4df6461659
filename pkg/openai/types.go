package openai

import (
	"fmt"
	"time"

	oai "github.com/openai/openai-go/v3"
)

// Config holds OpenAI client configuration.
// BaseURL is optional; set it to target an OpenAI-compatible gateway.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openai: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}

type openAIImpl struct {
	client oai.Client
	model  string
}

// Request is a single chat completion request
type Request struct {
	System      string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Message is one turn of the conversation. Role is "user" or "assistant".
type Message struct {
	Role    string
	Content string
}

// Response is the first choice of a completion
type Response struct {
	Content string
	Usage   Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
