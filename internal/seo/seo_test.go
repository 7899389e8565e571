package seo

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"nessco.org/home-web/internal/cms"
	"nessco.org/home-web/internal/locale"
	"nessco.org/home-web/internal/requestctx"
)

type stubContent struct {
	doc     *cms.ContentDocument
	err     error
	locales []string
	calls   atomic.Int32
}

func (s *stubContent) ResolveContent(_ context.Context, localeCode string) (*cms.ContentDocument, error) {
	s.calls.Add(1)
	s.locales = append(s.locales, localeCode)
	return s.doc, s.err
}

type stubCountry struct {
	name    cms.CountryName
	err     error
	country string
	locale  string
}

func (s *stubCountry) ResolveCountryName(_ context.Context, countryCode, localeCode string) (cms.CountryName, error) {
	s.country, s.locale = countryCode, localeCode
	return s.name, s.err
}

func ptr(s string) *string { return &s }

func fullDocument() *cms.ContentDocument {
	return &cms.ContentDocument{Home: []cms.HomeEntry{{
		SEO: &cms.SEOData{
			Title:       ptr("Packaging Machines"),
			Description: ptr("Paper cup machines"),
			Keywords:    ptr("paper, cup"),
			Robots:      ptr("index, follow"),
			OpenGraph: &cms.OpenGraphData{
				Title:       ptr("OG Title"),
				Description: ptr("OG Description"),
				Images: []cms.ImageData{
					{URL: "https://cdn.example.com/a.webp", Alt: "A"},
					{URL: "https://cdn.example.com/b.webp", Alt: "B"},
				},
			},
			Alternates: &cms.AlternatesData{Canonical: ptr("https://www.nesscoindia.com")},
			Twitter: &cms.TwitterData{
				Card:        ptr("summary"),
				Site:        ptr("@nessco"),
				Title:       ptr("TW Title"),
				Description: ptr("TW Description"),
				Image:       ptr("https://cdn.example.com/tw.webp"),
			},
		},
	}}}
}

func newTestGenerator(content ContentResolver, country CountryResolver) *Generator {
	return NewGenerator(content, country, Options{
		Locales:  locale.NewSet("en", "fr", "de"),
		SiteName: "Nessco Industries",
		SiteURL:  "https://www.nesscoindia.com",
	})
}

func TestGenerateFromDocument(t *testing.T) {
	content := &stubContent{doc: fullDocument()}
	country := &stubCountry{name: cms.CountryName{Value: "India", Present: true}}
	g := newTestGenerator(content, country)

	md := g.Generate(context.Background(), requestctx.Site{Locale: "fr", Country: "in"})

	require.Equal(t, "Packaging Machines - India", md.Title)
	require.Equal(t, "Paper cup machines", md.Description)
	require.Equal(t, "paper, cup", md.Keywords)
	require.Equal(t, "index, follow", md.Robots)
	require.Equal(t, "https://nessco-services.vercel.app/in/fr", md.Canonical)
	require.Equal(t, "https://www.nesscoindia.com", md.OpenGraph.URL)
	require.Equal(t, []Image{
		{URL: "https://cdn.example.com/a.webp", Alt: "A"},
		{URL: "https://cdn.example.com/b.webp", Alt: "B"},
	}, md.OpenGraph.Images)
	require.Equal(t, Twitter{
		Card:        CardSummary,
		Site:        "@nessco",
		Title:       "TW Title",
		Description: "TW Description",
		Image:       "https://cdn.example.com/tw.webp",
	}, md.Twitter)
	require.Equal(t, "in", country.country)
	require.Equal(t, "fr", country.locale)
	require.Len(t, md.StructuredData, 2)
}

func TestGenerateCoercesUnsupportedLocale(t *testing.T) {
	content := &stubContent{doc: fullDocument()}
	country := &stubCountry{name: cms.CountryName{Value: "India", Present: true}}
	g := newTestGenerator(content, country)

	md := g.Generate(context.Background(), requestctx.Site{Locale: "klingon", Country: ""})

	require.Equal(t, []string{"en"}, content.locales)
	require.Equal(t, "en", country.locale)
	require.Equal(t, "in", country.country)
	require.Equal(t, "https://nessco-services.vercel.app/in/en", md.Canonical)
}

func TestGenerateReturnsDefaultsWhenEverythingFails(t *testing.T) {
	content := &stubContent{err: errors.New("down")}
	country := &stubCountry{err: errors.New("down")}
	g := newTestGenerator(content, country)

	md := g.Generate(context.Background(), requestctx.Site{Locale: "en", Country: "in"})

	require.Equal(t, Metadata{
		Title:       "Default Title",
		Description: "Default Description",
		Keywords:    "default, keywords",
		Robots:      "index, follow",
		Canonical:   "https://www.default.com",
		OpenGraph: OpenGraph{
			Title:       "Default OG Title",
			Description: "Default OG Description",
			Images:      []Image{{URL: "/default-image.webp", Alt: "Default Image Alt"}},
		},
		Twitter: Twitter{
			Card:        CardSummaryLargeImage,
			Site:        "@DefaultTwitter",
			Title:       "Default Twitter Title",
			Description: "Default Twitter Description",
		},
	}, md)
}

func TestGenerateDefaultsWhenContentFailsAndNameAbsent(t *testing.T) {
	g := newTestGenerator(&stubContent{err: errors.New("down")}, &stubCountry{})

	md := g.Generate(context.Background(), requestctx.Site{Locale: "en", Country: "in"})
	require.Equal(t, "Default Title", md.Title)
	require.Equal(t, "https://www.default.com", md.Canonical)
}

// A resolved document without a country name still produces a title, with the
// legacy "undefined" placeholder in place of the country.
func TestGenerateTitleWithMissingCountryName(t *testing.T) {
	g := newTestGenerator(&stubContent{doc: fullDocument()}, &stubCountry{err: errors.New("both fetches failed")})

	md := g.Generate(context.Background(), requestctx.Site{Locale: "en", Country: "xx"})

	require.Equal(t, "Packaging Machines - undefined", md.Title)
	require.Contains(t, md.Title, "undefined")
	require.Equal(t, "https://nessco-services.vercel.app/xx/en", md.Canonical)
}

func TestGenerateUsesFieldDefaultsWhenContentMissing(t *testing.T) {
	g := newTestGenerator(&stubContent{err: errors.New("down")}, &stubCountry{name: cms.CountryName{Value: "India", Present: true}})

	md := g.Generate(context.Background(), requestctx.Site{Locale: "de", Country: "in"})

	require.Equal(t, "Default Title - India", md.Title)
	require.Equal(t, "Default Description", md.Description)
	require.Equal(t, "https://nessco-services.vercel.app/in/de", md.Canonical)
	require.Equal(t, "https://nessco-services.vercel.app/in/de", md.OpenGraph.URL)
	require.Equal(t, CardSummaryLargeImage, md.Twitter.Card)
}

func TestGenerateFillsMissingSubFields(t *testing.T) {
	doc := &cms.ContentDocument{Home: []cms.HomeEntry{{
		SEO: &cms.SEOData{
			Title:     ptr("Only Title"),
			OpenGraph: &cms.OpenGraphData{Title: ptr("OG")},
			Twitter:   &cms.TwitterData{Title: ptr("")},
		},
	}}}
	g := newTestGenerator(&stubContent{doc: doc}, &stubCountry{name: cms.CountryName{Value: "France", Present: true}})

	md := g.Generate(context.Background(), requestctx.Site{Locale: "fr", Country: "fr"})

	require.Equal(t, "Only Title - France", md.Title)
	require.Equal(t, "Default Description", md.Description)
	require.Equal(t, "OG", md.OpenGraph.Title)
	require.Equal(t, "Default OG Description", md.OpenGraph.Description)
	require.Equal(t, []Image{{URL: "/default-image.webp", Alt: "Default Image Alt"}}, md.OpenGraph.Images)
	require.Equal(t, "Default Twitter Title", md.Twitter.Title)
	require.Equal(t, CardSummaryLargeImage, md.Twitter.Card)
}

func TestGeneratePassesUnknownTwitterCardThrough(t *testing.T) {
	doc := fullDocument()
	doc.Home[0].SEO.Twitter.Card = ptr("gallery")
	core, logs := observer.New(zap.WarnLevel)
	ctx := requestctx.WithLogger(context.Background(), zap.New(core))
	g := newTestGenerator(&stubContent{doc: doc}, &stubCountry{name: cms.CountryName{Value: "India", Present: true}})

	md := g.Generate(ctx, requestctx.Site{Locale: "en", Country: "in"})

	require.Equal(t, TwitterCard("gallery"), md.Twitter.Card)
	require.Equal(t, 1, logs.FilterMessage("seo: unknown twitter card type").Len())
}

func TestDefaultMetadataIsNotShared(t *testing.T) {
	g := newTestGenerator(&stubContent{err: errors.New("x")}, &stubCountry{})
	first := g.Generate(context.Background(), requestctx.Site{})
	first.OpenGraph.Images[0].URL = "mutated"

	second := g.Generate(context.Background(), requestctx.Site{})
	require.Equal(t, "/default-image.webp", second.OpenGraph.Images[0].URL)
}

func TestAlternates(t *testing.T) {
	g := newTestGenerator(&stubContent{}, &stubCountry{})
	require.Equal(t, []Alternate{
		{Hreflang: "en", Href: "https://nessco-services.vercel.app/us/en"},
		{Hreflang: "fr", Href: "https://nessco-services.vercel.app/us/fr"},
		{Hreflang: "de", Href: "https://nessco-services.vercel.app/us/de"},
		{Hreflang: "x-default", Href: "https://nessco-services.vercel.app/us/en"},
	}, g.Alternates("us"))
}

func TestCanonicalURLEscapesCountry(t *testing.T) {
	g := NewGenerator(nil, nil, Options{CanonicalTemplate: "https://example.com/{country}/{locale}/"})
	require.Equal(t, "https://example.com/a%2Fb/en/", g.CanonicalURL("a/b", "en"))
}

func TestParseDefaultsRejectsInvalidCard(t *testing.T) {
	_, err := ParseDefaults([]byte("metadata:\n  title: T\n  twitter:\n    card: poster\n"))
	require.Error(t, err)

	d, err := ParseDefaults([]byte("metadata:\n  title: T\n"))
	require.NoError(t, err)
	require.Equal(t, "T", d.Metadata.Title)
}

func TestMetadataJSONShape(t *testing.T) {
	raw, err := json.Marshal(BuiltinDefaults().Metadata)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, "Default Title", decoded["title"])
	require.Contains(t, decoded, "openGraph")
	require.NotContains(t, decoded, "alternates")
}

func TestJSONLD(t *testing.T) {
	org := Organization("Nessco", "https://nessco.example", "")
	require.Equal(t, `{"@context":"https://schema.org","@type":"Organization","name":"Nessco","url":"https://nessco.example"}`, JSON(org))
	require.Empty(t, JSON(map[string]any{"bad": make(chan int)}))
}
