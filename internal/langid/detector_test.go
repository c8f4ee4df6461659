package langid

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multilanguage-agent/pkg/gtranslate"
)

type fakeCloud struct {
	det gtranslate.Detection
	err error
}

func (f fakeCloud) Detect(context.Context, string) (gtranslate.Detection, error) {
	return f.det, f.err
}

func TestGoogleDetector(t *testing.T) {
	d := NewGoogleDetector(fakeCloud{det: gtranslate.Detection{Language: "de", Confidence: 0.97}})
	g, err := d.Detect(context.Background(), "Guten Morgen")
	assert.NoError(t, err)
	assert.Equal(t, Guess{Code: "de", Confidence: 0.97}, g)

	d = NewGoogleDetector(fakeCloud{err: gtranslate.ErrNoDetection})
	_, err = d.Detect(context.Background(), "???")
	assert.True(t, errors.Is(err, gtranslate.ErrNoDetection))
}

func TestWhatlangDetector_Undetermined(t *testing.T) {
	_, err := NewWhatlangDetector().Detect(context.Background(), "12345 !!! ???")
	assert.ErrorIs(t, err, ErrUndetermined)
}

func TestWhatlangDetector_Candidates(t *testing.T) {
	g, err := NewWhatlangDetector("en", "de").Detect(context.Background(), "How are you?")
	require.NoError(t, err)
	assert.Equal(t, "en", g.Code)

	// en and de are always added
	d := NewWhatlangDetector("fr").(whatlangDetector)
	assert.Len(t, d.opts.Whitelist, 3)
}

func TestLinguaDetector(t *testing.T) {
	d, err := NewLinguaDetector([]string{"fr", "es"})
	require.NoError(t, err)

	g, err := d.Detect(context.Background(), "Wie geht es dir heute?")
	require.NoError(t, err)
	assert.Equal(t, "de", g.Code)
	assert.Greater(t, g.Confidence, 0.0)

	g, err = d.Detect(context.Background(), "Où est la gare, s'il vous plaît ?")
	require.NoError(t, err)
	assert.Equal(t, "fr", g.Code)

	_, err = NewLinguaDetector([]string{"en", "xx"})
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestWithRequired(t *testing.T) {
	assert.Equal(t, []string{"en", "de", "fr"}, withRequired([]string{" FR ", "de", "", "fr"}))
	assert.Equal(t, []string{"en", "de"}, withRequired(nil))
}
