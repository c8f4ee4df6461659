package langid

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"multilanguage-agent/config"
	"multilanguage-agent/pkg/log"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	germanWords  = []string{"ich", "du", "der", "die", "das", "und", "ist", "mit", "für", "auf", "von", "zu", "im", "über"}
	englishWords = []string{"the", "and", "is", "with", "for", "on", "from", "to", "in", "over", "this", "that"}
)

type fakeDetector struct {
	guess Guess
	err   error
	panic bool
	calls int
	mu    sync.Mutex
}

func (f *fakeDetector) Detect(context.Context, string) (Guess, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.panic {
		panic("boom")
	}
	return f.guess, f.err
}

func newIdentifier(t *testing.T, d Detector, mode string) *Identifier {
	t.Helper()
	id, err := New(log.NewNop(), d, Policy{
		MatchMode:         mode,
		GermanIndicators:  germanWords,
		EnglishIndicators: englishWords,
	})
	require.NoError(t, err)
	return id
}

func TestIdentify_TooShort(t *testing.T) {
	det := &fakeDetector{guess: Guess{Code: "en", Confidence: 1}}
	id := newIdentifier(t, det, MatchWord)

	for _, in := range []string{"", " ", "a", "  ü  "} {
		got := id.Detect(context.Background(), in)
		assert.Equal(t, Unsupported, got.Label, "input %q", in)
		assert.Equal(t, PathTooShort, got.Path)
	}
	assert.Zero(t, det.calls, "detector must not run on short input")
}

func TestIdentify_PrimaryPath(t *testing.T) {
	cases := []struct {
		name  string
		guess Guess
		want  Label
	}{
		{"english", Guess{Code: "en", Confidence: 0.9}, English},
		{"german", Guess{Code: "de", Confidence: 0.8}, German},
		{"unsure german", Guess{Code: "de", Confidence: 0.22}, German},
		{"unsure english", Guess{Code: "en", Confidence: 0.05}, English},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id := newIdentifier(t, &fakeDetector{guess: tc.guess}, MatchWord)
			got := id.Detect(context.Background(), "no indicator words here at all")

			want := Detection{Label: tc.want, Display: tc.want.Display(), Path: PathPrimary, Code: tc.guess.Code, Confidence: tc.guess.Confidence}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Detect() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIdentify_FallsThroughToKeywords(t *testing.T) {
	cases := []struct {
		name string
		det  *fakeDetector
		text string
		want Label
	}{
		{"other language code", &fakeDetector{guess: Guess{Code: "fr", Confidence: 0.99}}, "ich bin hier und du", German},
		{"detector error", &fakeDetector{err: errors.New("offline")}, "this is the way", English},
		{"detector panic", &fakeDetector{panic: true}, "the cat", English},
		{"no indicators", &fakeDetector{guess: Guess{Code: "es", Confidence: 0.9}}, "hola amigo como estas", Unsupported},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id := newIdentifier(t, tc.det, MatchWord)
			got := id.Detect(context.Background(), tc.text)
			assert.Equal(t, tc.want, got.Label)
			assert.Equal(t, PathKeyword, got.Path)
			assert.Equal(t, 1, tc.det.calls)
		})
	}
}

func TestIdentify_ConfiguredFloor(t *testing.T) {
	det := &fakeDetector{guess: Guess{Code: "en", Confidence: 0.1}}
	id, err := New(log.NewNop(), det, Policy{
		MinConfidence:     0.5,
		GermanIndicators:  germanWords,
		EnglishIndicators: englishWords,
	})
	require.NoError(t, err)

	got := id.Detect(context.Background(), "ich und du")
	assert.Equal(t, German, got.Label)
	assert.Equal(t, PathKeyword, got.Path)
	assert.Equal(t, "en", got.Code, "raw guess is still reported")
}

func TestIdentify_KeywordRule(t *testing.T) {
	id := newIdentifier(t, nil, MatchWord)

	cases := []struct {
		text   string
		want   Label
		de, en int
	}{
		// tie goes to English
		{"die the", English, 1, 1},
		{"ich und du mit the", German, 4, 1},
		{"the the the und", English, 1, 1},
		// distinct indicators count once
		{"und und und und", German, 1, 0},
		{"ÜBER ALLES", German, 1, 0},
		{"xyz qrs", Unsupported, 0, 0},
	}

	for _, tc := range cases {
		got := id.Detect(context.Background(), tc.text)
		assert.Equal(t, tc.want, got.Label, "text %q", tc.text)
		assert.Equal(t, tc.de, got.German, "german hits for %q", tc.text)
		assert.Equal(t, tc.en, got.English, "english hits for %q", tc.text)
	}
}

func TestIdentify_SubstringMode(t *testing.T) {
	word := newIdentifier(t, nil, MatchWord)
	sub := newIdentifier(t, nil, MatchSubstring)

	// "theory" contains "the", and "island" contains "is" and "and".
	text := "theory island"
	assert.Equal(t, Unsupported, word.Identify(context.Background(), text))
	assert.Equal(t, English, sub.Identify(context.Background(), text))
}

func TestIdentify_Whatlang(t *testing.T) {
	id, err := New(log.NewNop(), NewWhatlangDetector(), Policy{MinConfidence: 0.1})
	require.NoError(t, err)

	en := "The weather is lovely today and I would like to take a long walk through the park with my friends."
	de := "Das Wetter ist heute wunderschön und ich möchte mit meinen Freunden einen langen Spaziergang durch den Park machen."

	assert.Equal(t, English, id.Identify(context.Background(), en))
	assert.Equal(t, German, id.Identify(context.Background(), de))

	// deterministic
	first := id.Detect(context.Background(), de)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, id.Detect(context.Background(), de))
	}
}

func TestIdentify_ShortConversationalLines(t *testing.T) {
	d, err := NewLinguaDetector(config.DefaultCandidateLanguages)
	require.NoError(t, err)
	id, err := New(log.NewNop(), d, Policy{
		GermanIndicators:  config.DefaultGermanIndicators,
		EnglishIndicators: config.DefaultEnglishIndicators,
	})
	require.NoError(t, err)

	cases := []struct {
		text string
		want Label
	}{
		{"How are you?", English},
		{"Can you help me?", English},
		{"Good morning my friend", English},
		{"What time is it?", English},
		{"Guten Morgen", German},
		{"Wie geht es dir?", German},
		{"Kannst du mir helfen?", German},
		{"Vielen Dank für deine Hilfe", German},
		{"Bonjour, comment ça va ?", Unsupported},
		{"¿Dónde está la estación?", Unsupported},
	}

	for _, tc := range cases {
		got := id.Detect(context.Background(), tc.text)
		assert.Equal(t, tc.want, got.Label, "text %q (path=%s code=%s conf=%.2f)", tc.text, got.Path, got.Code, got.Confidence)
	}
}

func TestSetPolicy(t *testing.T) {
	id := newIdentifier(t, nil, MatchWord)
	assert.Equal(t, Unsupported, id.Identify(context.Background(), "hej och tack"))

	require.NoError(t, id.SetPolicy(Policy{EnglishIndicators: []string{" OCH ", "och", ""}}))
	assert.Equal(t, English, id.Identify(context.Background(), "hej och tack"))
	assert.Equal(t, []string{"och"}, id.Policy().EnglishIndicators)
	assert.Equal(t, MatchWord, id.Policy().MatchMode)

	err := id.SetPolicy(Policy{MatchMode: "regex"})
	assert.ErrorIs(t, err, ErrUnknownMatcher)
	assert.Equal(t, []string{"och"}, id.Policy().EnglishIndicators, "failed update must not apply")
}

func TestIdentify_ConcurrentPolicySwap(t *testing.T) {
	id := newIdentifier(t, nil, MatchWord)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				label := id.Identify(context.Background(), "ich und du")
				assert.Contains(t, []Label{German, Unsupported}, label)
			}
		}()
		go func(i int) {
			defer wg.Done()
			p := Policy{GermanIndicators: germanWords, EnglishIndicators: englishWords}
			if i%2 == 0 {
				p.GermanIndicators = nil
			}
			assert.NoError(t, id.SetPolicy(p))
		}(i)
	}
	wg.Wait()
}

func TestLabel_Display(t *testing.T) {
	assert.Equal(t, "🇺🇸 English", English.Display())
	assert.Equal(t, "🇩🇪 German", German.Display())
	assert.Equal(t, "❓ Unknown", Unsupported.Display())
	assert.True(t, German.Supported())
	assert.False(t, Unsupported.Supported())
}
