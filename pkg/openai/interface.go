package openai

import "context"

// IOpenAI defines the interface for any OpenAI-compatible chat completion endpoint.
// Implementations are safe for concurrent use.
type IOpenAI interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New creates a new OpenAI client with the given configuration
func New(cfg Config) (IOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOpenAIImpl(cfg), nil
}
