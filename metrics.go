package cogtiff

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus instruments this package emits. A nil
// *Metrics (the default, when WithMetrics is not passed to Open) disables
// instrumentation entirely; every method on *Metrics is nil-receiver safe.
type Metrics struct {
	rangeReads       prometheus.Counter
	rangeReadBytes   prometheus.Counter
	tileFetches      *prometheus.CounterVec
	cacheHits        prometheus.Counter
	cacheMisses      prometheus.Counter
}

// NewMetrics registers this package's instruments with reg and returns a
// Metrics ready to pass to Open via WithMetrics.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		rangeReads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cogtiff",
			Name:      "range_reads_total",
			Help:      "Number of range reads issued against the object store.",
		}),
		rangeReadBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cogtiff",
			Name:      "range_read_bytes_total",
			Help:      "Total bytes requested across all range reads.",
		}),
		tileFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cogtiff",
			Name:      "tile_fetches_total",
			Help:      "Number of tile fetches, partitioned by outcome.",
		}, []string{"outcome"}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cogtiff",
			Name:      "tile_cache_hits_total",
			Help:      "Number of decoded-tile cache hits.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "cogtiff",
			Name:      "tile_cache_misses_total",
			Help:      "Number of decoded-tile cache misses.",
		}),
	}

	for _, c := range []prometheus.Collector{m.rangeReads, m.rangeReadBytes, m.tileFetches, m.cacheHits, m.cacheMisses} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observeRangeRead(n int) {
	if m == nil {
		return
	}
	m.rangeReads.Inc()
	m.rangeReadBytes.Add(float64(n))
}

func (m *Metrics) observeTileFetch(outcome string) {
	if m == nil {
		return
	}
	m.tileFetches.WithLabelValues(outcome).Inc()
}

func (m *Metrics) observeCacheHit() {
	if m == nil {
		return
	}
	m.cacheHits.Inc()
}

func (m *Metrics) observeCacheMiss() {
	if m == nil {
		return
	}
	m.cacheMisses.Inc()
}
