package dispatcher

import (
	"context"
	"fmt"

	"multilanguage-agent/internal/langid"
	"multilanguage-agent/internal/persona"
	"multilanguage-agent/pkg/llmprovider"
	"multilanguage-agent/pkg/log"
)

// Dispatcher turns a labelled utterance into a reply. It never returns an error.
type Dispatcher interface {
	Dispatch(ctx context.Context, utterance string, label langid.Label) Result
}

// Generator is the text-generation collaborator. *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Options tune the generation request sent for each reply.
type Options struct {
	Temperature float64
	MaxTokens   int
}

// New creates the dispatcher for strategy ("label" or "team").
func New(strategy string, l log.Logger, personas *persona.Registry, gen Generator, opts Options) (Dispatcher, error) {
	base := &labelDispatcher{l: l, personas: personas, gen: gen, opts: opts}
	switch strategy {
	case "", StrategyLabel:
		return base, nil
	case StrategyTeam:
		return &teamDispatcher{labelDispatcher: base}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}
