package dispatcher

// Log prefixes
const (
	LogPrefixDispatch = "internal.dispatcher.Dispatch"
	LogPrefixRoute    = "internal.dispatcher.route"
)

// FallbackMessage is returned verbatim for any unsupported language.
const FallbackMessage = "I can currently assist in English and German. Please rephrase your question in one of these languages."

// ErrorReplyFormat embeds a generation failure into the reply text.
const ErrorReplyFormat = "Error processing request: %v"

// Strategies
const (
	StrategyLabel = "label"
	StrategyTeam  = "team"
)

// Team members
const (
	MemberEnglish = "english"
	MemberGerman  = "german"
	MemberNone    = "none"
)

// Router configuration
const (
	RouterTemperature = 0.1

	PromptTeamRouter = `You are a smart language router for a multi-language AI system.
Analyze the user's input language and route to the appropriate agent:
- English text → English Agent
- German text → German Agent
For unsupported languages, respond politely in English: '` + FallbackMessage + `'
Always maintain context and provide helpful responses.

Return JSON only, with this format:
{
  "member": "english|german|none",
  "reasoning": "short explanation"
}`
)

// Warning messages
const (
	ErrMsgJSONParseFailed = "failed to parse routing JSON, using detected label"
	ErrMsgUnknownMember   = "router chose unknown member, using detected label"
)
