package langid

const (
	// MinLength is the shortest trimmed input (in runes) that is inspected at all.
	MinLength = 2

	MatchWord      = "word"
	MatchSubstring = "substring"

	DetectorLingua   = "lingua"
	DetectorWhatlang = "whatlang"
	DetectorGoogle   = "google"
	DetectorKeyword  = "keyword"
)

// Path records which stage produced a Detection.
type Path string

const (
	PathTooShort Path = "too_short"
	PathPrimary  Path = "primary"
	PathKeyword  Path = "keyword"
)

const (
	LogPrefixDetect = "internal.langid.Detect"
	LogPrefixPolicy = "internal.langid.SetPolicy"
)
