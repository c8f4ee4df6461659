package llmprovider

import (
	"context"
	"strings"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "qwen", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized LLM generation request
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	Temperature       float64
	MaxTokens         int
}

// Message represents a conversation message
type Message struct {
	Role  string // "user", "assistant", "system"
	Parts []Part
}

// Part represents a message part
type Part struct {
	Text string
}

// Text joins the non-empty text parts of the message.
func (m Message) Text() string {
	texts := make([]string, 0, len(m.Parts))
	for _, p := range m.Parts {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}
	return strings.Join(texts, "\n")
}

// Response represents a normalized LLM generation response.
// Content is the final message. Messages holds every message the model
// produced when a provider returns more than one.
type Response struct {
	Content      Message
	Messages     []Message
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// String returns the text of the response, falling back to the last non-empty
// entry of Messages when Content carries no text.
func (r *Response) String() string {
	if r == nil {
		return ""
	}
	if text := r.Content.Text(); text != "" {
		return text
	}
	for i := len(r.Messages) - 1; i >= 0; i-- {
		if text := r.Messages[i].Text(); text != "" {
			return text
		}
	}
	return ""
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// UserMessage builds a single-part user message
func UserMessage(text string) Message {
	return Message{Role: "user", Parts: []Part{{Text: text}}}
}

// SystemMessage builds a single-part system message
func SystemMessage(text string) *Message {
	return &Message{Role: "system", Parts: []Part{{Text: text}}}
}
