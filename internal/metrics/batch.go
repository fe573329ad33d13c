package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/agbru/fibmemo/internal/solver"
)

// BatchMetrics holds the Prometheus instruments for batch execution. All
// instruments live in a private registry so repeated construction in tests
// does not collide with the default registry.
type BatchMetrics struct {
	registry *prometheus.Registry

	solvesTotal   prometheus.Counter
	solveErrors   prometheus.Counter
	activeSolves  prometheus.Gauge
	batchDuration prometheus.Histogram
}

// NewBatchMetrics creates the batch instruments along with the standard Go
// runtime and process collectors.
//
// Returns:
//   - *BatchMetrics: The registered instrument set.
func NewBatchMetrics() *BatchMetrics {
	registry := prometheus.NewRegistry()

	m := &BatchMetrics{
		registry: registry,
		solvesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fibmemo_solves_total",
			Help: "Total number of top-level solve invocations.",
		}),
		solveErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fibmemo_solve_errors_total",
			Help: "Total number of top-level solve invocations that failed.",
		}),
		activeSolves: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fibmemo_active_solves",
			Help: "Number of top-level solves currently in flight.",
		}),
		batchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fibmemo_batch_duration_seconds",
			Help:    "Wall-clock duration of complete batch runs.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}

	registry.MustRegister(
		m.solvesTotal,
		m.solveErrors,
		m.activeSolves,
		m.batchDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the private registry holding all instruments, for exposure
// by the metrics HTTP server.
func (m *BatchMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// SolveStarted records that a top-level solve has begun.
func (m *BatchMetrics) SolveStarted() {
	m.solvesTotal.Inc()
	m.activeSolves.Inc()
}

// SolveFinished records that a top-level solve has completed.
//
// Parameters:
//   - err: The error the solve returned, or nil on success.
func (m *BatchMetrics) SolveFinished(err error) {
	m.activeSolves.Dec()
	if err != nil {
		m.solveErrors.Inc()
	}
}

// BatchCompleted records the wall-clock duration of a finished batch.
//
// Parameters:
//   - seconds: The batch duration in seconds.
func (m *BatchMetrics) BatchCompleted(seconds float64) {
	m.batchDuration.Observe(seconds)
}

// ObserveCache registers a collector exporting the cache statistics of the
// given cache (hits, misses, stores, duplicate stores, entry count).
//
// Parameters:
//   - cache: The memoization cache to export.
func (m *BatchMetrics) ObserveCache(cache *solver.Cache) {
	m.registry.MustRegister(newCacheCollector(cache))
}

// cacheCollector exports solver.Cache statistics as Prometheus metrics. The
// counters are snapshotted on every scrape; no state is kept between scrapes.
type cacheCollector struct {
	cache *solver.Cache

	hits       *prometheus.Desc
	misses     *prometheus.Desc
	stores     *prometheus.Desc
	duplicates *prometheus.Desc
	entries    *prometheus.Desc
}

func newCacheCollector(cache *solver.Cache) *cacheCollector {
	return &cacheCollector{
		cache: cache,
		hits: prometheus.NewDesc("fibmemo_cache_hits_total",
			"Total number of cache lookups that found an entry.", nil, nil),
		misses: prometheus.NewDesc("fibmemo_cache_misses_total",
			"Total number of cache lookups that found no entry.", nil, nil),
		stores: prometheus.NewDesc("fibmemo_cache_stores_total",
			"Total number of cache store operations.", nil, nil),
		duplicates: prometheus.NewDesc("fibmemo_cache_duplicate_stores_total",
			"Stores that overwrote an existing entry (redundant recomputation).", nil, nil),
		entries: prometheus.NewDesc("fibmemo_cache_entries",
			"Current number of memoized entries.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *cacheCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.stores
	ch <- c.duplicates
	ch <- c.entries
}

// Collect implements prometheus.Collector.
func (c *cacheCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.cache.Stats()
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(stats.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(stats.Misses))
	ch <- prometheus.MustNewConstMetric(c.stores, prometheus.CounterValue, float64(stats.Stores))
	ch <- prometheus.MustNewConstMetric(c.duplicates, prometheus.CounterValue, float64(stats.DuplicateStores))
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(c.cache.Len()))
}
