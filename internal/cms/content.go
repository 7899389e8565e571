package cms

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"nessco.org/home-web/internal/observability"
	"nessco.org/home-web/internal/requestctx"
)

// ContentURL returns the hero.json location for localeCode.
func (c *Client) ContentURL(localeCode string) string {
	return documentURL(c.contentBase, localeCode, "hero.json")
}

// ResolveContent fetches the home document for localeCode. The primary fetch may be
// served from the response cache. On any failure exactly one fallback fetch of the
// fallback locale is made, bypassing the cache. If that fails too, both errors are
// returned joined.
func (c *Client) ResolveContent(ctx context.Context, localeCode string) (*ContentDocument, error) {
	ctx, span := tracer.Start(ctx, "cms.ResolveContent")
	defer span.End()
	span.SetAttributes(attribute.String("home.locale", localeCode))

	doc, err := c.fetchContent(ctx, localeCode, observability.SourcePrimary, true)
	if err == nil {
		return doc, nil
	}

	requestctx.Logger(ctx).Warn("cms: content fetch failed, trying fallback locale",
		zap.String("locale", localeCode),
		zap.String("fallback_locale", c.fallbackLocale),
		zap.Error(err),
	)
	span.SetAttributes(attribute.Bool("home.fallback", true))

	fallback, fbErr := c.fetchContent(ctx, c.fallbackLocale, observability.SourceFallback, false)
	if fbErr != nil {
		joined := fmt.Errorf("cms: resolve content for %q: %w", localeCode, errors.Join(err, fbErr))
		span.RecordError(joined)
		span.SetStatus(codes.Error, "content unavailable")
		return nil, joined
	}
	return fallback, nil
}

func (c *Client) fetchContent(ctx context.Context, localeCode, source string, cached bool) (*ContentDocument, error) {
	var doc ContentDocument
	if err := c.fetchJSON(ctx, resourceContent, source, c.ContentURL(localeCode), cached, &doc); err != nil {
		return nil, err
	}
	if doc.Entry() == nil {
		return nil, fmt.Errorf("%w (locale %q)", ErrEmptyDocument, localeCode)
	}
	return &doc, nil
}
