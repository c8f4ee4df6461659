package langid

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// fold lower-cases text with German rules so that "ÜBER" matches "über".
func fold(text string) string {
	return cases.Lower(language.German).String(text)
}

func normalize(words []string) []string {
	out := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = fold(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// countIndicators returns how many distinct indicators occur in folded.
// Each indicator counts at most once.
func countIndicators(folded string, tokens map[string]struct{}, indicators []string, mode string) int {
	n := 0
	for _, ind := range indicators {
		switch mode {
		case MatchSubstring:
			if strings.Contains(folded, ind) {
				n++
			}
		default:
			if _, ok := tokens[ind]; ok {
				n++
			}
		}
	}
	return n
}

func tokenize(folded string) map[string]struct{} {
	fields := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

// classify applies the keyword rule: German needs a strict majority,
// English wins any remaining non-zero count.
func classify(text string, p Policy) (Label, int, int) {
	folded := fold(text)
	var tokens map[string]struct{}
	if p.MatchMode != MatchSubstring {
		tokens = tokenize(folded)
	}

	de := countIndicators(folded, tokens, p.GermanIndicators, p.MatchMode)
	en := countIndicators(folded, tokens, p.EnglishIndicators, p.MatchMode)

	switch {
	case de > en && de > 0:
		return German, de, en
	case en > 0:
		return English, de, en
	default:
		return Unsupported, de, en
	}
}
