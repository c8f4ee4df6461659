package langid

import "errors"

var (
	ErrUndetermined    = errors.New("language could not be determined")
	ErrLowConfidence   = errors.New("detection confidence below threshold")
	ErrUnknownMatcher  = errors.New("unknown keyword match mode")
	ErrUnknownLanguage = errors.New("unknown candidate language")
)
