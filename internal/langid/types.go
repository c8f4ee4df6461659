package langid

// Guess is what a primary detector reports.
type Guess struct {
	Code       string
	Confidence float64
}

// Detection is the full outcome of identifying a text.
type Detection struct {
	Label      Label   `json:"label"`
	Display    string  `json:"display"`
	Path       Path    `json:"path"`
	Code       string  `json:"code,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
	German     int     `json:"german_hits"`
	English    int     `json:"english_hits"`
}

// Policy is the keyword fallback table plus the confidence floor for the primary detector.
type Policy struct {
	MatchMode         string
	MinConfidence     float64
	GermanIndicators  []string
	EnglishIndicators []string
}
