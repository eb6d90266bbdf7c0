// Package metrics holds the Prometheus instruments for number checks.
// Each Collector owns its registry, so several validators can be served
// from one process without clashing.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "numguard"

// Label values.
const (
	VerdictValid   = "valid"
	VerdictInvalid = "invalid"

	ReasonNone = "none"
)

type Collector struct {
	registry *prometheus.Registry

	// Checks counts verdicts by verdict and reason code. Valid checks are
	// labelled with ReasonNone.
	Checks *prometheus.CounterVec

	// BatchSize observes the number of values per batch request.
	BatchSize prometheus.Histogram
}

// New creates a Collector with Go runtime and process collectors
// registered next to the check instruments.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		Checks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "checks_total",
				Help:      "Cumulative number of checked values by verdict and reason.",
			},
			[]string{"verdict", "reason"},
		),
		BatchSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "batch_size",
				Help:      "Number of values per batch request.",
				Buckets:   []float64{1, 10, 50, 100, 250, 500, 1000},
			},
		),
	}

	c.registry.MustRegister(
		c.Checks,
		c.BatchSize,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// ObserveCheck records one verdict. An empty reason means the value was
// valid.
func (c *Collector) ObserveCheck(reason string) {
	verdict := VerdictInvalid
	if reason == "" {
		verdict, reason = VerdictValid, ReasonNone
	}
	c.Checks.WithLabelValues(verdict, reason).Inc()
}

func (c *Collector) ObserveBatch(n int) {
	c.BatchSize.Observe(float64(n))
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
