package http

import (
	"multilanguage-agent/internal/conversation"
	"multilanguage-agent/internal/langid"
	"multilanguage-agent/pkg/response"
)

// --- Request DTOs ---

type sendReq struct {
	Text string `json:"text" binding:"required,max=4000"`
}

func (r sendReq) validate() error { return nil }

func (r sendReq) toInput() conversation.SendInput {
	return conversation.SendInput{Text: r.Text}
}

// ---

type detectReq struct {
	Text string `json:"text" binding:"required,max=4000"`
}

func (r detectReq) validate() error { return nil }

// --- Response DTOs ---

type messageResp struct {
	Utterance    string            `json:"utterance"`
	Reply        string            `json:"reply"`
	Label        string            `json:"label"`
	LabelDisplay string            `json:"label_display"`
	Persona      string            `json:"persona,omitempty"`
	CreatedAt    response.DateTime `json:"created_at"`
}

func newMessageResp(e conversation.Entry) messageResp {
	return messageResp{
		Utterance:    e.Utterance,
		Reply:        e.Reply,
		Label:        string(e.Label),
		LabelDisplay: e.LabelDisplay,
		Persona:      e.Persona,
		CreatedAt:    response.DateTime(e.CreatedAt),
	}
}

type detectResp struct {
	Label       string  `json:"label"`
	Display     string  `json:"display"`
	Path        string  `json:"path"`
	Code        string  `json:"code,omitempty"`
	Confidence  float64 `json:"confidence,omitempty"`
	GermanHits  int     `json:"german_hits"`
	EnglishHits int     `json:"english_hits"`
}

func newDetectResp(d langid.Detection) detectResp {
	return detectResp{
		Label:       string(d.Label),
		Display:     d.Display,
		Path:        string(d.Path),
		Code:        d.Code,
		Confidence:  d.Confidence,
		GermanHits:  d.German,
		EnglishHits: d.English,
	}
}

type sendResp struct {
	Message   messageResp `json:"message"`
	Detection detectResp  `json:"detection"`
	Fallback  bool        `json:"fallback"`
	Failed    bool        `json:"failed"`
}

func (h *handler) newSendResp(out conversation.SendOutput) sendResp {
	return sendResp{
		Message:   newMessageResp(out.Entry),
		Detection: newDetectResp(out.Detection),
		Fallback:  out.Fallback,
		Failed:    out.Failed,
	}
}

type historyResp struct {
	Messages []messageResp `json:"messages"`
	Total    int           `json:"total"`
}

func (h *handler) newHistoryResp(out conversation.HistoryOutput) historyResp {
	msgs := make([]messageResp, len(out.Entries))
	for i, e := range out.Entries {
		msgs[i] = newMessageResp(e)
	}
	return historyResp{Messages: msgs, Total: len(msgs)}
}
