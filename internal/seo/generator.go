package seo

import (
	"context"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"nessco.org/home-web/internal/cms"
	"nessco.org/home-web/internal/locale"
	"nessco.org/home-web/internal/requestctx"
)

// DefaultCanonicalTemplate is used when Options.CanonicalTemplate is empty.
const DefaultCanonicalTemplate = "https://nessco-services.vercel.app/{country}/{locale}"

var tracer = otel.Tracer("nessco.org/home-web/internal/seo")

// ContentResolver resolves the home document for a locale.
type ContentResolver interface {
	ResolveContent(ctx context.Context, localeCode string) (*cms.ContentDocument, error)
}

// CountryResolver resolves a country's display name in a locale.
type CountryResolver interface {
	ResolveCountryName(ctx context.Context, countryCode, localeCode string) (cms.CountryName, error)
}

type Options struct {
	Locales *locale.Set
	// CanonicalTemplate may reference {country} and {locale}.
	CanonicalTemplate string
	SiteName          string
	SiteURL           string
	LogoURL           string
	Defaults          *Defaults
}

// Generator produces page Metadata from the content and country resolvers.
type Generator struct {
	content   ContentResolver
	countries CountryResolver
	locales   *locale.Set
	template  string
	siteName  string
	siteURL   string
	logoURL   string
	defaults  Defaults
}

func NewGenerator(content ContentResolver, countries CountryResolver, opts Options) *Generator {
	g := &Generator{
		content:   content,
		countries: countries,
		locales:   opts.Locales,
		template:  strings.TrimSpace(opts.CanonicalTemplate),
		siteName:  opts.SiteName,
		siteURL:   opts.SiteURL,
		logoURL:   opts.LogoURL,
	}
	if g.locales == nil {
		g.locales = locale.NewSet(locale.DefaultSupported...)
	}
	if g.template == "" {
		g.template = DefaultCanonicalTemplate
	}
	if opts.Defaults != nil {
		g.defaults = *opts.Defaults
	} else {
		g.defaults = BuiltinDefaults()
	}
	return g
}

// Generate resolves content and country name concurrently and builds the metadata.
// Resolution failures never surface as errors: when both the document and the
// country name are unavailable the fixed default metadata is returned, otherwise
// missing fields take their named defaults.
func (g *Generator) Generate(ctx context.Context, site requestctx.Site) Metadata {
	ctx, span := tracer.Start(ctx, "seo.Generate")
	defer span.End()

	loc := g.locales.Normalize(site.Locale)
	country := locale.Country(site.Country)
	span.SetAttributes(attribute.String("home.locale", loc), attribute.String("home.country", country))
	logger := requestctx.Logger(ctx)

	var (
		doc  *cms.ContentDocument
		name cms.CountryName
		eg   errgroup.Group
	)
	eg.Go(func() error {
		d, err := g.content.ResolveContent(ctx, loc)
		if err != nil {
			logger.Warn("seo: content unavailable", zap.String("locale", loc), zap.Error(err))
			return nil
		}
		doc = d
		return nil
	})
	eg.Go(func() error {
		n, err := g.countries.ResolveCountryName(ctx, country, loc)
		if err != nil {
			logger.Warn("seo: country name unavailable", zap.String("country", country), zap.Error(err))
			return nil
		}
		name = n
		return nil
	})
	_ = eg.Wait()

	if doc.Entry() == nil && !name.Present {
		span.SetAttributes(attribute.Bool("home.default_metadata", true))
		return g.defaults.Metadata.clone()
	}
	return g.Build(ctx, doc, name, requestctx.Site{Locale: loc, Country: country})
}

// Build maps a resolved document and country name onto Metadata. doc may be nil, in
// which case every field takes its default. site must already be normalized.
func (g *Generator) Build(ctx context.Context, doc *cms.ContentDocument, name cms.CountryName, site requestctx.Site) Metadata {
	d := g.defaults.Metadata
	var data cms.SEOData
	if entry := doc.Entry(); entry != nil && entry.SEO != nil {
		data = *entry.SEO
	}

	countryLabel := name.Value
	if !name.Present {
		countryLabel = g.defaults.MissingCountryName
	}
	canonical := g.CanonicalURL(site.Country, site.Locale)

	md := Metadata{
		Title:       pick(data.Title, d.Title) + " - " + countryLabel,
		Description: pick(data.Description, d.Description),
		Keywords:    pick(data.Keywords, d.Keywords),
		Robots:      pick(data.Robots, d.Robots),
		Canonical:   canonical,
		OpenGraph:   g.openGraph(data, canonical),
		Twitter:     g.twitter(ctx, data),
		Alternates:  g.Alternates(site.Country),
	}
	md.StructuredData = []string{
		JSON(Organization(g.siteName, g.siteURL, g.logoURL)),
		JSON(WebPage(md.Title, md.Description, canonical, site.Locale, g.siteName)),
	}
	return md
}

func (g *Generator) openGraph(data cms.SEOData, canonical string) OpenGraph {
	d := g.defaults.Metadata.OpenGraph
	og := OpenGraph{
		Title:       d.Title,
		Description: d.Description,
		URL:         canonical,
		Images:      append([]Image(nil), d.Images...),
	}
	if data.Alternates != nil {
		og.URL = pick(data.Alternates.Canonical, canonical)
	}
	if data.OpenGraph == nil {
		return og
	}
	og.Title = pick(data.OpenGraph.Title, d.Title)
	og.Description = pick(data.OpenGraph.Description, d.Description)
	if data.OpenGraph.Images != nil {
		og.Images = make([]Image, 0, len(data.OpenGraph.Images))
		for _, img := range data.OpenGraph.Images {
			og.Images = append(og.Images, Image{URL: img.URL, Alt: img.Alt})
		}
	}
	return og
}

func (g *Generator) twitter(ctx context.Context, data cms.SEOData) Twitter {
	d := g.defaults.Metadata.Twitter
	if data.Twitter == nil {
		return d
	}
	tw := Twitter{
		Card:        d.Card,
		Site:        pick(data.Twitter.Site, d.Site),
		Title:       pick(data.Twitter.Title, d.Title),
		Description: pick(data.Twitter.Description, d.Description),
		Image:       pick(data.Twitter.Image, d.Image),
	}
	if data.Twitter.Card != nil && strings.TrimSpace(*data.Twitter.Card) != "" {
		tw.Card = TwitterCard(strings.TrimSpace(*data.Twitter.Card))
		if !tw.Card.Valid() {
			requestctx.Logger(ctx).Warn("seo: unknown twitter card type", zap.String("card", string(tw.Card)))
		}
	}
	return tw
}

// CanonicalURL interpolates country and locale into the canonical template.
func (g *Generator) CanonicalURL(country, localeCode string) string {
	return strings.NewReplacer(
		"{country}", url.PathEscape(country),
		"{locale}", url.PathEscape(localeCode),
	).Replace(g.template)
}

// Alternates lists a hreflang link per supported locale plus x-default.
func (g *Generator) Alternates(country string) []Alternate {
	supported := g.locales.Supported()
	out := make([]Alternate, 0, len(supported)+1)
	for _, code := range supported {
		out = append(out, Alternate{Hreflang: code, Href: g.CanonicalURL(country, code)})
	}
	return append(out, Alternate{Hreflang: "x-default", Href: g.CanonicalURL(country, locale.Default)})
}

func pick(value *string, fallback string) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return fallback
	}
	return *value
}
