package langid

import (
	"context"
	"fmt"

	"github.com/abadojack/whatlanggo"

	"multilanguage-agent/pkg/gtranslate"
)

// Detector is a statistical language detector returning a two-letter code.
type Detector interface {
	Detect(ctx context.Context, text string) (Guess, error)
}

type whatlangDetector struct {
	opts whatlanggo.Options
}

// NewWhatlangDetector returns an in-process trigram detector. Candidate ISO
// 639-1 codes, when given, restrict the languages it may answer with.
func NewWhatlangDetector(candidates ...string) Detector {
	d := whatlangDetector{}
	if len(candidates) > 0 {
		d.opts.Whitelist = whatlangWhitelist(withRequired(candidates))
	}
	return d
}

func (d whatlangDetector) Detect(_ context.Context, text string) (Guess, error) {
	info := whatlanggo.DetectWithOptions(text, d.opts)
	if info.Script == nil || info.Lang < 0 {
		return Guess{}, ErrUndetermined
	}
	code := info.Lang.Iso6391()
	if code == "" {
		return Guess{}, ErrUndetermined
	}
	return Guess{Code: code, Confidence: info.Confidence}, nil
}

func whatlangWhitelist(codes []string) map[whatlanggo.Lang]bool {
	want := make(map[string]bool, len(codes))
	for _, c := range codes {
		want[c] = true
	}
	out := make(map[whatlanggo.Lang]bool, len(codes))
	for l := whatlanggo.Afr; l <= whatlanggo.Zul; l++ {
		if want[l.Iso6391()] {
			out[l] = true
		}
	}
	return out
}

// cloudDetector is satisfied by *gtranslate.Client.
type cloudDetector interface {
	Detect(ctx context.Context, text string) (gtranslate.Detection, error)
}

type googleDetector struct {
	client cloudDetector
}

// NewGoogleDetector wraps the Cloud Translation detect endpoint.
func NewGoogleDetector(client cloudDetector) Detector {
	return googleDetector{client: client}
}

func (d googleDetector) Detect(ctx context.Context, text string) (Guess, error) {
	det, err := d.client.Detect(ctx, text)
	if err != nil {
		return Guess{}, fmt.Errorf("google detect: %w", err)
	}
	return Guess{Code: det.Language, Confidence: det.Confidence}, nil
}
