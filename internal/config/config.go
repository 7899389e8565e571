package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var analyticsID = regexp.MustCompile(`^[A-Z0-9]+-[A-Z0-9]+$`)

const (
	envPrefix      = "HOME_"
	defaultEnvFile = ".env"
	defaultPort    = "8080"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server    ServerConfig    `envPrefix:"SERVER_"`
	Upstream  UpstreamConfig  `envPrefix:"UPSTREAM_"`
	Site      SiteConfig      `envPrefix:"SITE_"`
	Cache     CacheConfig     `envPrefix:"CACHE_"`
	Enquiry   EnquiryConfig   `envPrefix:"ENQUIRY_"`
	Analytics AnalyticsConfig `envPrefix:"ANALYTICS_"`
	Log       LogConfig       `envPrefix:"LOG_"`
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port              string        `env:"PORT"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"10s"`
	ReadTimeout       time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout      time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout       time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	RequestTimeout    time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	Dev               bool          `env:"DEV"`
}

// UpstreamConfig points at the remote JSON documents.
type UpstreamConfig struct {
	ContentBaseURL  string        `env:"CONTENT_BASE_URL" envDefault:"https://jsondatafromhostingertosheet.nesscoindustries.com/"`
	CountryBaseURL  string        `env:"COUNTRY_BASE_URL" envDefault:"https://countryjson.nesscoindustries.com/"`
	Timeout         time.Duration `env:"TIMEOUT" envDefault:"10s"`
	FallbackLocale  string        `env:"FALLBACK_LOCALE" envDefault:"en"`
	FallbackCountry string        `env:"FALLBACK_COUNTRY" envDefault:"in"`
}

// SiteConfig holds values baked into rendered pages and metadata.
type SiteConfig struct {
	Locales           []string `env:"LOCALES" envDefault:"en,fr,es,de,it,pt,ru,ar,ja,ko,zh,nl" envSeparator:","`
	CanonicalTemplate string   `env:"CANONICAL_TEMPLATE" envDefault:"https://nessco-services.vercel.app/{country}/{locale}"`
	Name              string   `env:"NAME" envDefault:"Nessco Industries"`
	URL               string   `env:"URL" envDefault:"https://nessco-services.vercel.app"`
	LogoURL           string   `env:"LOGO_URL"`
	Countries         []string `env:"COUNTRIES" envDefault:"in,us,gb,ae,fr,de,es" envSeparator:","`
}

// CacheConfig controls the upstream response cache.
type CacheConfig struct {
	TTL           time.Duration `env:"TTL" envDefault:"1s"`
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	KeyPrefix     string        `env:"KEY_PREFIX" envDefault:"home:"`
}

// EnquiryConfig controls where contact enquiries are delivered.
type EnquiryConfig struct {
	WebhookURL string        `env:"WEBHOOK_URL"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"5s"`
}

// AnalyticsConfig holds client instrumentation identifiers surfaced to pages.
type AnalyticsConfig struct {
	GA4MeasurementID string `env:"GA4_MEASUREMENT_ID"` // e.g. G-XXXXXXXXXX
	GTMContainerID   string `env:"GTM_CONTAINER_ID"`   // e.g. GTM-XXXXXXX
	Debug            bool   `env:"DEBUG"`
}

// LogConfig controls logger construction.
type LogConfig struct {
	Level string `env:"LEVEL" envDefault:"info"`
}

// ValidationError is returned when configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path used for local overrides. An empty path disables it.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects explicit key/value pairs that take precedence over the system environment.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load assembles configuration from defaults, the .env file, the process environment
// and explicit overrides, in increasing order of precedence.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	values, err := environment(options)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{
		Environment: values,
		Prefix:      envPrefix,
	}); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}

	// Cloud Run style PORT is honoured when the prefixed variable is absent.
	if strings.TrimSpace(cfg.Server.Port) == "" {
		cfg.Server.Port = firstNonEmpty(values["PORT"], defaultPort)
	}
	cfg.Site.Locales = trimAll(cfg.Site.Locales)
	cfg.Site.Countries = trimAll(cfg.Site.Countries)
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Analytics.GA4MeasurementID = strings.TrimSpace(cfg.Analytics.GA4MeasurementID)
	cfg.Analytics.GTMContainerID = strings.TrimSpace(cfg.Analytics.GTMContainerID)

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	port := strings.TrimPrefix(strings.TrimSpace(c.Server.Port), ":")
	return ":" + port
}

func environment(options loaderOptions) (map[string]string, error) {
	values := make(map[string]string)
	if path := strings.TrimSpace(options.envFile); path != "" {
		dotenv, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		for k, v := range dotenv {
			values[k] = v
		}
	}
	if options.useSystemEnv {
		for k, v := range env.ToMap(os.Environ()) {
			values[k] = v
		}
	}
	for k, v := range options.envMap {
		values[k] = v
	}
	return values, nil
}

func validate(cfg Config) error {
	var invalid []string
	if !isHTTPURL(cfg.Upstream.ContentBaseURL) {
		invalid = append(invalid, "HOME_UPSTREAM_CONTENT_BASE_URL")
	}
	if !isHTTPURL(cfg.Upstream.CountryBaseURL) {
		invalid = append(invalid, "HOME_UPSTREAM_COUNTRY_BASE_URL")
	}
	if strings.TrimSpace(cfg.Upstream.FallbackLocale) == "" {
		invalid = append(invalid, "HOME_UPSTREAM_FALLBACK_LOCALE")
	}
	if strings.TrimSpace(cfg.Upstream.FallbackCountry) == "" {
		invalid = append(invalid, "HOME_UPSTREAM_FALLBACK_COUNTRY")
	}
	if tpl := cfg.Site.CanonicalTemplate; !strings.Contains(tpl, "{country}") || !strings.Contains(tpl, "{locale}") {
		invalid = append(invalid, "HOME_SITE_CANONICAL_TEMPLATE")
	}
	if len(cfg.Site.Locales) == 0 {
		invalid = append(invalid, "HOME_SITE_LOCALES")
	}
	if cfg.Cache.TTL < 0 {
		invalid = append(invalid, "HOME_CACHE_TTL")
	}
	if cfg.Upstream.Timeout < 0 {
		invalid = append(invalid, "HOME_UPSTREAM_TIMEOUT")
	}
	if cfg.Enquiry.WebhookURL != "" && !isHTTPURL(cfg.Enquiry.WebhookURL) {
		invalid = append(invalid, "HOME_ENQUIRY_WEBHOOK_URL")
	}
	if id := cfg.Analytics.GA4MeasurementID; id != "" && !analyticsID.MatchString(id) {
		invalid = append(invalid, "HOME_ANALYTICS_GA4_MEASUREMENT_ID")
	}
	if id := cfg.Analytics.GTMContainerID; id != "" && !analyticsID.MatchString(id) {
		invalid = append(invalid, "HOME_ANALYTICS_GTM_CONTAINER_ID")
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		invalid = append(invalid, "HOME_LOG_LEVEL")
	}
	if len(invalid) > 0 {
		return &ValidationError{fields: invalid}
	}
	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
