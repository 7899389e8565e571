package locale

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestNormalizeCoercesUnsupported(t *testing.T) {
	t.Parallel()

	set := NewSet("en", "fr", "de")
	cases := map[string]string{
		"fr":      "fr",
		" FR ":    "fr",
		"de":      "de",
		"xx":      "en",
		"":        "en",
		"fr-CA":   "en",
		"../etc":  "en",
		"en":      "en",
		"Deutsch": "en",
	}
	for in, want := range cases {
		require.Equal(t, want, set.Normalize(in), "Normalize(%q)", in)
	}
}

func TestEverySupportedLocaleNormalizesToItself(t *testing.T) {
	t.Parallel()

	set := NewSet()
	for _, code := range set.Supported() {
		require.Equal(t, code, set.Normalize(code))
	}
}

func TestNewSetAlwaysIncludesDefault(t *testing.T) {
	t.Parallel()

	set := NewSet("fr", "fr", "es")
	require.Equal(t, []string{"en", "fr", "es"}, set.Supported())
	require.True(t, set.Contains("EN"))
}

func TestCountryDefaults(t *testing.T) {
	t.Parallel()

	require.Equal(t, "in", Country(""))
	require.Equal(t, "in", Country("   "))
	require.Equal(t, "us", Country("US"))
	require.Equal(t, "xx", Country("xx"))
}

func TestTag(t *testing.T) {
	t.Parallel()

	require.Equal(t, language.French, Tag("fr"))
	require.Equal(t, language.English, Tag("not a tag!"))
}

func TestCountryLabel(t *testing.T) {
	t.Parallel()

	require.Equal(t, "India", CountryLabel("in", "en"))
	require.Equal(t, "Deutschland", CountryLabel("DE", "de"))
	require.Equal(t, "NOT A CODE", CountryLabel("not a code", "en"))
}
