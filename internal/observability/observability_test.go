package observability

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"nessco.org/home-web/internal/requestctx"
)

func TestNewLoggerFallsBackToInfo(t *testing.T) {
	logger, err := NewLogger("chatty")
	require.NoError(t, err)
	require.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	require.False(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = NewLogger("debug")
	require.NoError(t, err)
	require.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestRequestLoggerRecordsRouteAndStatus(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	r := chi.NewRouter()
	r.Use(InjectLoggerMiddleware(zap.New(core)))
	r.Use(RequestLoggerMiddleware)
	r.Get("/{country}/{locale}", func(w http.ResponseWriter, r *http.Request) {
		requestctx.Logger(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/in/en", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)

	inside := logs.FilterMessage("inside handler").All()
	require.Len(t, inside, 1)
	require.Equal(t, "GET", inside[0].ContextMap()["method"])

	done := logs.FilterMessage("request completed").All()
	require.Len(t, done, 1)
	fields := done[0].ContextMap()
	require.Equal(t, "/{country}/{locale}", fields["route"])
	require.EqualValues(t, http.StatusTeapot, fields["status"])
	require.Equal(t, zapcore.WarnLevel, done[0].Level)
}

func TestRecoveryMiddlewareAnswers500(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	h := RecoveryMiddleware(zap.New(core))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}

func TestTraceMiddlewareWithoutSpanLeavesContextAlone(t *testing.T) {
	var traceID string
	h := TraceMiddleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		traceID = requestctx.TraceID(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Empty(t, traceID)
}

func TestObserveFetchCountsOutcomes(t *testing.T) {
	before := testutil.ToFloat64(UpstreamFetches.WithLabelValues("test-resource", SourceFallback, OutcomeError))
	ObserveFetch("test-resource", SourceFallback, time.Now(), errors.New("down"))
	after := testutil.ToFloat64(UpstreamFetches.WithLabelValues("test-resource", SourceFallback, OutcomeError))
	require.Equal(t, before+1, after)
}
