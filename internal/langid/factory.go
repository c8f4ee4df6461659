package langid

import (
	"context"
	"fmt"

	"multilanguage-agent/config"
	"multilanguage-agent/pkg/gtranslate"
)

// PolicyFromConfig converts the language config section into a Policy.
func PolicyFromConfig(cfg config.LanguageConfig) Policy {
	return Policy{
		MatchMode:         cfg.MatchMode,
		MinConfidence:     cfg.MinConfidence,
		GermanIndicators:  cfg.GermanIndicators,
		EnglishIndicators: cfg.EnglishIndicators,
	}
}

// NewDetectorFromConfig builds the primary detector named by cfg.Detector.
// The keyword detector has no primary stage and yields nil.
func NewDetectorFromConfig(ctx context.Context, cfg config.LanguageConfig, gcfg config.GoogleTranslateConfig) (Detector, error) {
	switch cfg.Detector {
	case "", DetectorLingua:
		d, err := NewLinguaDetector(cfg.Candidates)
		if err != nil {
			return nil, fmt.Errorf("lingua detector: %w", err)
		}
		return d, nil
	case DetectorWhatlang:
		return NewWhatlangDetector(cfg.Candidates...), nil
	case DetectorKeyword:
		return nil, nil
	case DetectorGoogle:
		var (
			client *gtranslate.Client
			err    error
		)
		switch {
		case gcfg.APIKey != "":
			client, err = gtranslate.NewClientFromAPIKey(ctx, gcfg.APIKey)
		case gcfg.CredentialsPath != "":
			client, err = gtranslate.NewClientFromCredentialsFile(ctx, gcfg.CredentialsPath)
		default:
			err = gtranslate.ErrMissingCredentials
		}
		if err != nil {
			return nil, fmt.Errorf("google detector: %w", err)
		}
		return NewGoogleDetector(client), nil
	default:
		return nil, fmt.Errorf("unknown language detector %q", cfg.Detector)
	}
}
