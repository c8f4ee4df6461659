package langid

import (
	"context"
	"fmt"
	"strings"

	"github.com/pemistahl/lingua-go"
)

type linguaDetector struct {
	detector lingua.LanguageDetector
}

// NewLinguaDetector builds an n-gram detector restricted to the candidate
// ISO 639-1 codes. English and German are always candidates.
func NewLinguaDetector(candidates []string) (Detector, error) {
	langs, err := linguaLanguages(withRequired(candidates))
	if err != nil {
		return nil, err
	}
	d := lingua.NewLanguageDetectorBuilder().
		FromLanguages(langs...).
		Build()
	return linguaDetector{detector: d}, nil
}

func (d linguaDetector) Detect(_ context.Context, text string) (Guess, error) {
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return Guess{}, ErrUndetermined
	}
	return Guess{
		Code:       strings.ToLower(lang.IsoCode639_1().String()),
		Confidence: d.detector.ComputeLanguageConfidence(text, lang),
	}, nil
}

func linguaLanguages(codes []string) ([]lingua.Language, error) {
	byCode := make(map[string]lingua.Language)
	for _, l := range lingua.AllLanguages() {
		byCode[strings.ToLower(l.IsoCode639_1().String())] = l
	}

	out := make([]lingua.Language, 0, len(codes))
	for _, code := range codes {
		l, ok := byCode[code]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
		}
		out = append(out, l)
	}
	return out, nil
}

// withRequired normalizes codes, drops duplicates and makes sure en and de are present.
func withRequired(codes []string) []string {
	seen := make(map[string]bool, len(codes)+2)
	out := make([]string, 0, len(codes)+2)
	for _, c := range append([]string{"en", "de"}, codes...) {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
