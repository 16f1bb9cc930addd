package conformance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/distances/blobstore"
	"github.com/hupe1980/distances/distance"
)

func TestPrometheusCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewPrometheusCollector(reg)
	require.NoError(t, err)

	c.RecordCheck("cosine/lanes", 1000, 100, 0, 10*time.Millisecond, nil)
	c.RecordCheck("cosine/lanes", 2000, 100, 4, 20*time.Millisecond, nil)
	c.RecordCheck("cosine/lanes", 4000, 0, 0, 0, errors.New("x"))
	c.RecordFixture(true, time.Millisecond, nil)
	c.RecordFixture(false, time.Millisecond, nil)
	c.RecordFixture(false, time.Millisecond, errors.New("x"))

	assert.InDelta(t, 1, testutil.ToFloat64(c.checks.WithLabelValues("cosine/lanes", "pass")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.checks.WithLabelValues("cosine/lanes", "fail")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.checks.WithLabelValues("cosine/lanes", "error")), 0)
	assert.InDelta(t, 200, testutil.ToFloat64(c.pairs.WithLabelValues("cosine/lanes")), 0)
	assert.InDelta(t, 4, testutil.ToFloat64(c.failures.WithLabelValues("cosine/lanes")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.fixtures.WithLabelValues("hit")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.fixtures.WithLabelValues("miss")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.fixtures.WithLabelValues("error")), 0)

	n, err := testutil.GatherAndCount(reg, "distances_conformance_check_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPrometheusCollectorDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheusCollector(reg)
	require.NoError(t, err)

	_, err = NewPrometheusCollector(reg)
	assert.Error(t, err)
}

func TestPrometheusCollectorWithCheck(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewPrometheusCollector(reg)
	require.NoError(t, err)

	_, err = Check(context.Background(), "euclidean/lanes",
		distance.Euclidean[float32, float32],
		distance.EuclideanSIMD[float32, float32],
		WithDimensions(8, 16, 32),
		WithCardinality(3),
		WithFixtureStore(blobstore.NewMemoryStore()),
		WithMetricsCollector(c),
	)
	require.NoError(t, err)

	assert.InDelta(t, 3, testutil.ToFloat64(c.checks.WithLabelValues("euclidean/lanes", "pass")), 0)
	assert.InDelta(t, 27, testutil.ToFloat64(c.pairs.WithLabelValues("euclidean/lanes")), 0)
	assert.InDelta(t, 6, testutil.ToFloat64(c.fixtures.WithLabelValues("miss")), 0)
}
