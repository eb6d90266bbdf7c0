package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/numguard/pkg/metrics"
)

func TestObserveCheck(t *testing.T) {
	t.Parallel()

	c := metrics.New()
	c.ObserveCheck("")
	c.ObserveCheck("")
	c.ObserveCheck("malformed")

	assert.InDelta(t, 2, testutil.ToFloat64(c.Checks.WithLabelValues(metrics.VerdictValid, metrics.ReasonNone)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.Checks.WithLabelValues(metrics.VerdictInvalid, "malformed")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(c.Checks.WithLabelValues(metrics.VerdictInvalid, "scale_exceeded")), 0)
}

func TestObserveBatch(t *testing.T) {
	t.Parallel()

	c := metrics.New()
	c.ObserveBatch(3)
	c.ObserveBatch(700)

	assert.Equal(t, 1, testutil.CollectAndCount(c.BatchSize))
}

func TestCollectorsAreIndependent(t *testing.T) {
	t.Parallel()

	a, b := metrics.New(), metrics.New()
	a.ObserveCheck("")

	assert.InDelta(t, 1, testutil.ToFloat64(a.Checks.WithLabelValues(metrics.VerdictValid, metrics.ReasonNone)), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(b.Checks.WithLabelValues(metrics.VerdictValid, metrics.ReasonNone)), 0)
}

func TestHandler(t *testing.T) {
	t.Parallel()

	c := metrics.New()
	c.ObserveCheck("negative_not_allowed")

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `numguard_checks_total{reason="negative_not_allowed",verdict="invalid"} 1`)
	assert.Contains(t, body, "numguard_batch_size_bucket")
	assert.Contains(t, body, "go_goroutines")
}
