package cms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"nessco.org/home-web/internal/cache"
	"nessco.org/home-web/internal/locale"
	"nessco.org/home-web/internal/observability"
	"nessco.org/home-web/internal/requestctx"
)

const (
	resourceContent = "content"
	resourceCountry = "country"

	maxDocumentBytes = 8 << 20
)

var (
	// ErrUpstreamStatus is returned when an upstream answers outside the 2xx range.
	ErrUpstreamStatus = errors.New("cms: unexpected upstream status")
	// ErrEmptyDocument is returned when a content document carries no home entry.
	ErrEmptyDocument = errors.New("cms: content document has no home entry")
)

var tracer = otel.Tracer("nessco.org/home-web/internal/cms")

// Options configures a Client.
type Options struct {
	ContentBaseURL  string
	CountryBaseURL  string
	FallbackLocale  string
	FallbackCountry string
	// HTTPClient defaults to an otelhttp-instrumented client with a 10s timeout.
	HTTPClient *http.Client
	// Cache is consulted for primary fetches only. Nil disables caching.
	Cache    cache.Store
	CacheTTL time.Duration
}

// Client resolves home page content and country names from remote JSON documents.
type Client struct {
	contentBase     string
	countryBase     string
	fallbackLocale  string
	fallbackCountry string
	http            *http.Client
	cache           cache.Store
	cacheTTL        time.Duration
}

// NewClient constructs a Client, filling unset options with defaults.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return &Client{
		contentBase:     strings.TrimRight(strings.TrimSpace(opts.ContentBaseURL), "/"),
		countryBase:     strings.TrimRight(strings.TrimSpace(opts.CountryBaseURL), "/"),
		fallbackLocale:  firstNonEmpty(opts.FallbackLocale, locale.Default),
		fallbackCountry: firstNonEmpty(opts.FallbackCountry, locale.DefaultCountry),
		http:            httpClient,
		cache:           opts.Cache,
		cacheTTL:        opts.CacheTTL,
	}
}

// fetchJSON GETs endpoint and decodes it into out. When cached is true the response
// cache is read and written; otherwise the request bypasses every cache layer.
func (c *Client) fetchJSON(ctx context.Context, resource, source, endpoint string, cached bool, out any) error {
	useCache := cached && c.cache != nil && c.cacheTTL > 0
	logger := requestctx.Logger(ctx)

	if useCache {
		body, ok, err := c.cache.Get(ctx, endpoint)
		if err != nil {
			logger.Warn("cms: cache read failed", zap.String("endpoint", endpoint), zap.Error(err))
		} else if ok {
			if err := json.Unmarshal(body, out); err == nil {
				observability.UpstreamCacheHits.WithLabelValues(resource).Inc()
				return nil
			}
		}
	}

	started := time.Now()
	body, err := c.get(ctx, endpoint, cached)
	if err == nil {
		err = json.Unmarshal(body, out)
		if err != nil {
			err = fmt.Errorf("cms: decode %s: %w", endpoint, err)
		}
	}
	observability.ObserveFetch(resource, source, started, err)
	if err != nil {
		return err
	}

	if useCache {
		if err := c.cache.Set(ctx, endpoint, body, c.cacheTTL); err != nil {
			logger.Warn("cms: cache write failed", zap.String("endpoint", endpoint), zap.Error(err))
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpoint string, cached bool) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if !cached {
		req.Header.Set("Cache-Control", "no-cache")
		req.Header.Set("Pragma", "no-cache")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("%w: %s returned %d", ErrUpstreamStatus, endpoint, resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
}

// documentURL joins escaped path segments onto base so that caller-supplied codes
// cannot add path segments of their own.
func documentURL(base string, segments ...string) string {
	escaped := make([]string, 0, len(segments)+1)
	escaped = append(escaped, base)
	for _, s := range segments {
		escaped = append(escaped, url.PathEscape(s))
	}
	return strings.Join(escaped, "/")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
