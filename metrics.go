package distances

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting harness metrics.
// Implement this interface to integrate with monitoring systems;
// conformance.PrometheusCollector is the Prometheus implementation.
type MetricsCollector interface {
	// RecordCheck is called after each dimensionality of a conformance check.
	// pairs is the number of compared pairs and failures the number outside
	// tolerance; err is non-nil if the check could not run.
	RecordCheck(name string, dim, pairs, failures int, duration time.Duration, err error)

	// RecordFixture is called after each fixture lookup. hit reports whether
	// the fixture came from the store rather than being generated.
	RecordFixture(hit bool, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCheck(string, int, int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordFixture(bool, time.Duration, error)                {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and tests without external dependencies.
type BasicMetricsCollector struct {
	CheckCount      atomic.Int64
	CheckErrors     atomic.Int64
	CheckTotalNanos atomic.Int64
	PairCount       atomic.Int64
	FailureCount    atomic.Int64
	FixtureHits     atomic.Int64
	FixtureMisses   atomic.Int64
	FixtureErrors   atomic.Int64
}

// RecordCheck implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCheck(_ string, _, pairs, failures int, duration time.Duration, err error) {
	b.CheckCount.Add(1)
	b.CheckTotalNanos.Add(duration.Nanoseconds())
	b.PairCount.Add(int64(pairs))
	b.FailureCount.Add(int64(failures))
	if err != nil {
		b.CheckErrors.Add(1)
	}
}

// RecordFixture implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFixture(hit bool, _ time.Duration, err error) {
	switch {
	case err != nil:
		b.FixtureErrors.Add(1)
	case hit:
		b.FixtureHits.Add(1)
	default:
		b.FixtureMisses.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		CheckCount:    b.CheckCount.Load(),
		CheckErrors:   b.CheckErrors.Load(),
		CheckAvgNanos: b.getAvgCheckNanos(),
		PairCount:     b.PairCount.Load(),
		FailureCount:  b.FailureCount.Load(),
		FixtureHits:   b.FixtureHits.Load(),
		FixtureMisses: b.FixtureMisses.Load(),
		FixtureErrors: b.FixtureErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgCheckNanos() int64 {
	count := b.CheckCount.Load()
	if count == 0 {
		return 0
	}
	return b.CheckTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	CheckCount    int64
	CheckErrors   int64
	CheckAvgNanos int64
	PairCount     int64
	FailureCount  int64
	FixtureHits   int64
	FixtureMisses int64
	FixtureErrors int64
}
