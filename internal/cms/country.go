package cms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"nessco.org/home-web/internal/locale"
	"nessco.org/home-web/internal/observability"
	"nessco.org/home-web/internal/requestctx"
)

// CountryName is the display name of a country in some locale. Present is false
// when neither the requested locale nor English carried a non-empty name.
type CountryName struct {
	Value   string
	Present bool
}

// CountryURL returns the name-map location for countryCode.
func (c *Client) CountryURL(countryCode string) string {
	return documentURL(c.countryBase, countryCode+".json")
}

// ResolveCountryName returns the display name of countryCode in localeCode. When the
// country's document cannot be fetched the fallback country's document is used
// instead. Within a document the requested locale is preferred, then English.
// A missing name is not an error; only a failure of both fetches is.
func (c *Client) ResolveCountryName(ctx context.Context, countryCode, localeCode string) (CountryName, error) {
	ctx, span := tracer.Start(ctx, "cms.ResolveCountryName")
	defer span.End()

	countryCode = locale.Country(countryCode)
	span.SetAttributes(
		attribute.String("home.country", countryCode),
		attribute.String("home.locale", localeCode),
	)

	names, err := c.fetchCountry(ctx, countryCode, observability.SourcePrimary)
	if err != nil {
		requestctx.Logger(ctx).Warn("cms: country fetch failed, trying fallback country",
			zap.String("country", countryCode),
			zap.String("fallback_country", c.fallbackCountry),
			zap.Error(err),
		)
		span.SetAttributes(attribute.Bool("home.fallback", true))

		var fbErr error
		names, fbErr = c.fetchCountry(ctx, c.fallbackCountry, observability.SourceFallback)
		if fbErr != nil {
			joined := fmt.Errorf("cms: resolve country name for %q: %w", countryCode, errors.Join(err, fbErr))
			span.RecordError(joined)
			return CountryName{}, joined
		}
	}
	return names.Lookup(localeCode), nil
}

func (c *Client) fetchCountry(ctx context.Context, countryCode, source string) (CountryNameMap, error) {
	var names CountryNameMap
	if err := c.fetchJSON(ctx, resourceCountry, source, c.CountryURL(countryCode), true, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// Lookup picks the name for localeCode, falling back to the English entry.
// Blank names count as absent.
func (m CountryNameMap) Lookup(localeCode string) CountryName {
	localeCode = strings.ToLower(strings.TrimSpace(localeCode))
	if v := strings.TrimSpace(m[localeCode]); v != "" {
		return CountryName{Value: v, Present: true}
	}
	if v := strings.TrimSpace(m[locale.Default]); v != "" {
		return CountryName{Value: v, Present: true}
	}
	return CountryName{}
}
