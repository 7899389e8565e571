package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Fetch sources and outcomes used as metric labels.
const (
	SourcePrimary  = "primary"
	SourceFallback = "fallback"

	OutcomeOK    = "ok"
	OutcomeError = "error"
)

var (
	UpstreamFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "home_upstream_fetch_total",
			Help: "Upstream JSON document fetches by resource, source and outcome",
		},
		[]string{"resource", "source", "outcome"},
	)

	UpstreamFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "home_upstream_fetch_duration_seconds",
			Help:    "Duration of upstream JSON document fetches in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"resource", "source"},
	)

	UpstreamCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "home_upstream_cache_hits_total",
			Help: "Upstream documents served from the response cache",
		},
		[]string{"resource"},
	)

	Enquiries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "home_enquiries_total",
			Help: "Contact enquiries by outcome",
		},
		[]string{"outcome"},
	)
)

// ObserveFetch records one upstream fetch attempt.
func ObserveFetch(resource, source string, started time.Time, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	UpstreamFetches.WithLabelValues(resource, source, outcome).Inc()
	UpstreamFetchDuration.WithLabelValues(resource, source).Observe(time.Since(started).Seconds())
}

// MetricsHandler exposes the default prometheus registry.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
