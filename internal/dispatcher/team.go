package dispatcher

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"multilanguage-agent/internal/langid"
	"multilanguage-agent/pkg/llmprovider"
)

// teamDispatcher lets the model pick the answering member before replying.
type teamDispatcher struct {
	*labelDispatcher
}

func (d *teamDispatcher) Dispatch(ctx context.Context, utterance string, label langid.Label) Result {
	if !label.Supported() {
		return fallback()
	}

	decision, err := d.route(ctx, utterance)
	if err != nil {
		d.l.Errorf(ctx, "%s: %v", LogPrefixRoute, err)
		p, _ := d.personas.Get(label)
		return Result{Label: label, Persona: p.Name, Err: err, Text: fmt.Sprintf(ErrorReplyFormat, err)}
	}

	target := label
	switch decision.Member {
	case MemberEnglish:
		target = langid.English
	case MemberGerman:
		target = langid.German
	case MemberNone:
		d.l.Infof(ctx, "%s: router declined: %s", LogPrefixRoute, decision.Reasoning)
		return fallback()
	default:
		if decision.Member != "" {
			d.l.Warnf(ctx, "%s: %s: %q", LogPrefixRoute, ErrMsgUnknownMember, decision.Member)
		}
	}

	p, ok := d.personas.Get(target)
	if !ok {
		return fallback()
	}
	return d.answer(ctx, utterance, p)
}

// route asks the model which member should answer. Malformed answers yield a
// zero decision so the caller keeps the detected label.
func (d *teamDispatcher) route(ctx context.Context, utterance string) (routeDecision, error) {
	resp, err := d.gen.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: llmprovider.SystemMessage(PromptTeamRouter),
		Messages:          []llmprovider.Message{llmprovider.UserMessage(utterance)},
		Temperature:       RouterTemperature,
	})
	if err != nil {
		return routeDecision{}, err
	}

	text := stripCodeFence(extractText(resp))
	if text == "" {
		return routeDecision{}, nil
	}

	var out routeDecision
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		d.l.Warnf(ctx, "%s: %s: %v", LogPrefixRoute, ErrMsgJSONParseFailed, err)
		return routeDecision{}, nil
	}
	out.Member = strings.ToLower(strings.TrimSpace(out.Member))

	d.l.Infof(ctx, "%s: member=%s", LogPrefixRoute, out.Member)
	return out, nil
}

// stripCodeFence removes a ```json ... ``` wrapper if present.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
