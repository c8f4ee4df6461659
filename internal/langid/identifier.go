package langid

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"multilanguage-agent/pkg/log"
)

// Identifier maps free text to a Label. It is safe for concurrent use and
// its keyword policy can be swapped at runtime.
type Identifier struct {
	l        log.Logger
	detector Detector

	mu     sync.RWMutex
	policy Policy
}

// New builds an Identifier. A nil detector means keyword matching only.
func New(l log.Logger, detector Detector, policy Policy) (*Identifier, error) {
	id := &Identifier{l: l, detector: detector}
	if err := id.SetPolicy(policy); err != nil {
		return nil, err
	}
	return id, nil
}

// SetPolicy replaces the keyword table and confidence floor.
func (id *Identifier) SetPolicy(p Policy) error {
	if p.MatchMode == "" {
		p.MatchMode = MatchWord
	}
	if p.MatchMode != MatchWord && p.MatchMode != MatchSubstring {
		return fmt.Errorf("%w: %q", ErrUnknownMatcher, p.MatchMode)
	}
	p.GermanIndicators = normalize(p.GermanIndicators)
	p.EnglishIndicators = normalize(p.EnglishIndicators)

	id.mu.Lock()
	id.policy = p
	id.mu.Unlock()

	id.l.Infof(context.Background(), "%s: match_mode=%s german=%d english=%d min_confidence=%.2f",
		LogPrefixPolicy, p.MatchMode, len(p.GermanIndicators), len(p.EnglishIndicators), p.MinConfidence)
	return nil
}

// Policy returns a copy of the active policy.
func (id *Identifier) Policy() Policy {
	id.mu.RLock()
	defer id.mu.RUnlock()
	p := id.policy
	p.GermanIndicators = append([]string(nil), p.GermanIndicators...)
	p.EnglishIndicators = append([]string(nil), p.EnglishIndicators...)
	return p
}

// Identify returns the label for text. It never fails; anything undecidable is Unsupported.
func (id *Identifier) Identify(ctx context.Context, text string) Label {
	return id.Detect(ctx, text).Label
}

// Detect is Identify plus the diagnostics of how the label was reached.
func (id *Identifier) Detect(ctx context.Context, text string) Detection {
	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < MinLength {
		return newDetection(Unsupported, PathTooShort)
	}

	id.mu.RLock()
	policy := id.policy
	id.mu.RUnlock()

	var guess Guess
	if id.detector != nil {
		g, err := id.primary(ctx, trimmed, policy.MinConfidence)
		if err == nil {
			if label, ok := fromCode(g.Code); ok {
				d := newDetection(label, PathPrimary)
				d.Code, d.Confidence = g.Code, g.Confidence
				return d
			}
		} else {
			id.l.Debugf(ctx, "%s: primary detector: %v", LogPrefixDetect, err)
		}
		guess = g
	}

	label, de, en := classify(trimmed, policy)
	d := newDetection(label, PathKeyword)
	d.Code, d.Confidence = guess.Code, guess.Confidence
	d.German, d.English = de, en
	return d
}

// primary runs the detector, turning panics and low-confidence guesses into errors.
func (id *Identifier) primary(ctx context.Context, text string, minConfidence float64) (g Guess, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("detector panic: %v", r)
		}
	}()

	g, err = id.detector.Detect(ctx, text)
	if err != nil {
		return Guess{}, err
	}
	if g.Confidence < minConfidence {
		return g, fmt.Errorf("%w: %s %.2f < %.2f", ErrLowConfidence, g.Code, g.Confidence, minConfidence)
	}
	return g, nil
}

func newDetection(label Label, path Path) Detection {
	return Detection{Label: label, Display: label.Display(), Path: path}
}
