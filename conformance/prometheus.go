package conformance

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/distances"
)

// PrometheusCollector exports harness metrics to Prometheus.
type PrometheusCollector struct {
	checks          *prometheus.CounterVec
	pairs           *prometheus.CounterVec
	failures        *prometheus.CounterVec
	checkDuration   *prometheus.HistogramVec
	fixtures        *prometheus.CounterVec
	fixtureDuration prometheus.Histogram
}

var _ distances.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheusCollector creates the collector and registers its metrics
// with reg. A nil reg uses prometheus.DefaultRegisterer.
func NewPrometheusCollector(reg prometheus.Registerer) (*PrometheusCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &PrometheusCollector{
		checks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "distances_conformance_checks_total",
				Help: "Conformance checks run per dimensionality",
			},
			[]string{"check", "status"},
		),
		pairs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "distances_conformance_pairs_total",
				Help: "Vector pairs compared",
			},
			[]string{"check"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "distances_conformance_failures_total",
				Help: "Vector pairs outside tolerance",
			},
			[]string{"check"},
		),
		checkDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "distances_conformance_check_duration_seconds",
				Help:    "Time to check one dimensionality",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
			},
			[]string{"check"},
		),
		fixtures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "distances_conformance_fixtures_total",
				Help: "Fixture lookups by result",
			},
			[]string{"result"},
		),
		fixtureDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "distances_conformance_fixture_duration_seconds",
				Help:    "Time to load or generate a fixture",
				Buckets: prometheus.DefBuckets,
			},
		),
	}

	for _, m := range []prometheus.Collector{
		c.checks, c.pairs, c.failures, c.checkDuration, c.fixtures, c.fixtureDuration,
	} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordCheck implements distances.MetricsCollector.
func (c *PrometheusCollector) RecordCheck(name string, _, pairs, failures int, duration time.Duration, err error) {
	status := "pass"
	switch {
	case err != nil:
		status = "error"
	case failures > 0:
		status = "fail"
	}
	c.checks.WithLabelValues(name, status).Inc()
	c.pairs.WithLabelValues(name).Add(float64(pairs))
	c.failures.WithLabelValues(name).Add(float64(failures))
	c.checkDuration.WithLabelValues(name).Observe(duration.Seconds())
}

// RecordFixture implements distances.MetricsCollector.
func (c *PrometheusCollector) RecordFixture(hit bool, duration time.Duration, err error) {
	result := "miss"
	switch {
	case err != nil:
		result = "error"
	case hit:
		result = "hit"
	}
	c.fixtures.WithLabelValues(result).Inc()
	c.fixtureDuration.Observe(duration.Seconds())
}
