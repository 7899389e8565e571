package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"nessco.org/home-web/internal/cache"
	"nessco.org/home-web/internal/cms"
	"nessco.org/home-web/internal/config"
	"nessco.org/home-web/internal/contact"
	"nessco.org/home-web/internal/home"
	"nessco.org/home-web/internal/i18n"
	"nessco.org/home-web/internal/locale"
	mw "nessco.org/home-web/internal/middleware"
	"nessco.org/home-web/internal/observability"
	"nessco.org/home-web/internal/richtext"
	"nessco.org/home-web/internal/seo"
	"nessco.org/home-web/public"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// the logger level comes from config, so fall back to a default logger here
		fallback, _ := observability.NewLogger("info")
		fallback.Fatal("load config", zap.Error(err))
	}

	logger, err := observability.NewLogger(cfg.Log.Level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore := buildCache(ctx, cfg.Cache, logger)
	defer closeStore()

	a, err := newApp(cfg, logger, store, buildForwarder(cfg.Enquiry, logger))
	if err != nil {
		logger.Fatal("build app", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           otelhttp.NewHandler(a.routes(), "home-web"),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()
	logger.Info("web listening", zap.String("addr", srv.Addr), zap.Bool("dev", cfg.Server.Dev))

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// app holds the long-lived collaborators shared by every request.
type app struct {
	cfg       config.Config
	logger    *zap.Logger
	locales   *locale.Set
	bundle    *i18n.Bundle
	content   *cms.Client
	metadata  *seo.Generator
	composer  *home.Composer
	enquiries *contact.Service
}

func newApp(cfg config.Config, logger *zap.Logger, store cache.Store, forwarder contact.Forwarder) (*app, error) {
	locales := locale.NewSet(cfg.Site.Locales...)

	bundle, err := i18n.Embedded(locale.Default, locales.Supported())
	if err != nil {
		return nil, err
	}
	icons, err := home.DefaultIcons()
	if err != nil {
		return nil, err
	}

	client := cms.NewClient(cms.Options{
		ContentBaseURL:  cfg.Upstream.ContentBaseURL,
		CountryBaseURL:  cfg.Upstream.CountryBaseURL,
		FallbackLocale:  cfg.Upstream.FallbackLocale,
		FallbackCountry: cfg.Upstream.FallbackCountry,
		HTTPClient: &http.Client{
			Timeout:   cfg.Upstream.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		Cache:    store,
		CacheTTL: cfg.Cache.TTL,
	})

	return &app{
		cfg:     cfg,
		logger:  logger,
		locales: locales,
		bundle:  bundle,
		content: client,
		metadata: seo.NewGenerator(client, client, seo.Options{
			Locales:           locales,
			CanonicalTemplate: cfg.Site.CanonicalTemplate,
			SiteName:          cfg.Site.Name,
			SiteURL:           cfg.Site.URL,
			LogoURL:           cfg.Site.LogoURL,
		}),
		composer:  home.NewComposer(richtext.New(), icons),
		enquiries: contact.NewService(forwarder),
	}, nil
}

func (a *app) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	// RealIP trusts X-Forwarded-For; deploy behind a proxy that sets it.
	r.Use(middleware.RealIP)
	r.Use(observability.InjectLoggerMiddleware(a.logger))
	r.Use(observability.TraceMiddleware)
	r.Use(observability.RequestLoggerMiddleware)
	r.Use(observability.RecoveryMiddleware(a.logger))
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(a.cfg.Server.RequestTimeout))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", observability.MetricsHandler())

	if assets, err := public.AssetsFS(); err == nil {
		r.Handle("/assets/*", mw.AssetsWithCache(assets, "/assets"))
	} else {
		a.logger.Error("static assets unavailable", zap.Error(err))
	}

	r.Group(func(r chi.Router) {
		r.Use(mw.CSRF(!a.cfg.Server.Dev))

		r.Get("/", a.rootRedirect)
		r.Post("/country", a.selectCountry)
		r.Route("/{country}/{locale}", func(r chi.Router) {
			r.Use(mw.Site(a.locales))
			r.Get("/", a.homePage)
			r.Get("/metadata.json", a.metadataJSON)
			r.Post("/enquiry", a.submitEnquiry)
		})
	})
	return r
}

func buildCache(ctx context.Context, cfg config.CacheConfig, logger *zap.Logger) (cache.Store, func()) {
	if cfg.RedisAddr == "" {
		return cache.NewMemory(), func() {}
	}
	rc, err := cache.NewRedis(ctx, cache.RedisOptions{
		Addr:      cfg.RedisAddr,
		Password:  cfg.RedisPassword,
		DB:        cfg.RedisDB,
		KeyPrefix: cfg.KeyPrefix,
	})
	if err != nil {
		logger.Warn("redis unavailable, using in-memory cache", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		return cache.NewMemory(), func() {}
	}
	logger.Info("redis cache enabled", zap.String("addr", cfg.RedisAddr))
	return rc, func() { _ = rc.Close() }
}

func buildForwarder(cfg config.EnquiryConfig, logger *zap.Logger) contact.Forwarder {
	if cfg.WebhookURL == "" {
		logger.Info("enquiry webhook not set; enquiries are logged only")
		return contact.LogForwarder{}
	}
	return contact.NewWebhookForwarder(cfg.WebhookURL, nil, cfg.Timeout)
}
