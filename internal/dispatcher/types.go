package dispatcher

import "multilanguage-agent/internal/langid"

// Result is the outcome of a dispatch. Text is always displayable.
type Result struct {
	Text     string
	Label    langid.Label
	Persona  string // persona name, empty for the fallback
	Fallback bool
	Err      error // generation failure already embedded in Text
}

// routeDecision is the structured answer of the team router.
type routeDecision struct {
	Member    string `json:"member"`
	Reasoning string `json:"reasoning"`
}
