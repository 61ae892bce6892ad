package cogtiff

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewMetricsRegistersInstruments(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	assert.NoError(t, err)
	assert.True(t, m != nil)

	m.observeRangeRead(100)
	m.observeTileFetch("hit")
	m.observeCacheHit()
	m.observeCacheMiss()

	assert.Equal(t, float64(1), testutil.ToFloat64(m.rangeReads))
	assert.Equal(t, float64(100), testutil.ToFloat64(m.rangeReadBytes))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.cacheHits))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.cacheMisses))
}

func TestMetricsNilReceiverIsSafe(t *testing.T) {
	var m *Metrics
	m.observeRangeRead(10)
	m.observeTileFetch("miss")
	m.observeCacheHit()
	m.observeCacheMiss()
}

func TestNewMetricsDuplicateRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	assert.NoError(t, err)
	_, err = NewMetrics(reg)
	assert.Error(t, err)
}
