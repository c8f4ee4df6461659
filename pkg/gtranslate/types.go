package gtranslate

import "errors"

var (
	ErrMissingCredentials = errors.New("gtranslate: api key or credentials required")
	ErrNoDetection        = errors.New("gtranslate: no detection returned")
)

// Detection is a single language guess.
type Detection struct {
	Language   string // BCP-47 code, e.g. "de" or "en"
	Confidence float64
	IsReliable bool
}
