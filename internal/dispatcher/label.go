package dispatcher

import (
	"context"
	"fmt"
	"strings"

	"multilanguage-agent/internal/langid"
	"multilanguage-agent/internal/persona"
	"multilanguage-agent/pkg/llmprovider"
	"multilanguage-agent/pkg/log"
)

// labelDispatcher sends the utterance straight to the persona for its label.
type labelDispatcher struct {
	l        log.Logger
	personas *persona.Registry
	gen      Generator
	opts     Options
}

func (d *labelDispatcher) Dispatch(ctx context.Context, utterance string, label langid.Label) Result {
	p, ok := d.personas.Get(label)
	if !ok {
		d.l.Debugf(ctx, "%s: label=%s, returning fallback", LogPrefixDispatch, label)
		return fallback()
	}
	return d.answer(ctx, utterance, p)
}

// answer makes exactly one generation call with p as system context.
func (d *labelDispatcher) answer(ctx context.Context, utterance string, p persona.Persona) Result {
	res := Result{Label: p.Label, Persona: p.Name}

	resp, err := d.gen.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: llmprovider.SystemMessage(p.SystemPrompt()),
		Messages:          []llmprovider.Message{llmprovider.UserMessage(utterance)},
		Temperature:       d.opts.Temperature,
		MaxTokens:         d.opts.MaxTokens,
	})
	if err != nil {
		d.l.Errorf(ctx, "%s: persona=%s: %v", LogPrefixDispatch, p.ID, err)
		res.Err = err
		res.Text = fmt.Sprintf(ErrorReplyFormat, err)
		return res
	}

	res.Text = extractText(resp)
	if strings.TrimSpace(res.Text) == "" {
		d.l.Warnf(ctx, "%s: persona=%s: %v", LogPrefixDispatch, p.ID, ErrEmptyResponse)
		res.Err = ErrEmptyResponse
		res.Text = fmt.Sprintf(ErrorReplyFormat, ErrEmptyResponse)
		return res
	}
	d.l.Infof(ctx, "%s: persona=%s reply_len=%d", LogPrefixDispatch, p.ID, len(res.Text))
	return res
}

func fallback() Result {
	return Result{Text: FallbackMessage, Label: langid.Unsupported, Fallback: true}
}

// extractText prefers the direct content, then the last message of the
// sequence, then the response's own string form.
func extractText(resp *llmprovider.Response) string {
	if resp == nil {
		return ""
	}
	if text := resp.Content.Text(); text != "" {
		return text
	}
	if n := len(resp.Messages); n > 0 {
		if text := resp.Messages[n-1].Text(); text != "" {
			return text
		}
	}
	return resp.String()
}
