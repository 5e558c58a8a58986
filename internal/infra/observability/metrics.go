package observability

import (
	"time"

	"github.com/memetrics/memetrics-bfa-go/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// replySources mirrors chat/domain.Source; kept as strings so this package stays
// below the chat module in the import graph.
var replySources = []string{"rule", "remote", "fallback", "error"}

// Metrics holds all Prometheus metrics for the BFA.
type Metrics struct {
	// Registry is the Prometheus registry that owns these metrics.
	// Exposed so the /metrics endpoint can use it.
	Registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	externalErrors  *prometheus.CounterVec
	cacheHits       *prometheus.CounterVec
	cacheMisses     *prometheus.CounterVec
	repliesTotal    *prometheus.CounterVec
}

// NewMetrics creates a dedicated Prometheus registry and registers all
// application metrics in it. Using a private registry avoids "duplicate
// collector" panics when NewMetrics is called more than once (e.g. in tests).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "memetrics_request_duration_seconds",
				Help:    "Duration of requests by operation.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		externalErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "memetrics_external_errors_total",
				Help: "Total errors from external services.",
			},
			[]string{"service"},
		),
		cacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "memetrics_cache_hits_total",
				Help: "Total cache hits.",
			},
			[]string{"cache"},
		),
		cacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "memetrics_cache_misses_total",
				Help: "Total cache misses.",
			},
			[]string{"cache"},
		),
		repliesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "memetrics_mitra_replies_total",
				Help: "Mitra replies by source (rule, remote, fallback, error).",
			},
			[]string{"source"},
		),
	}
}

// RecordRequestDuration records the duration of an operation.
func (m *Metrics) RecordRequestDuration(operation string, d time.Duration) {
	m.requestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// IncrExternalError increments the external error counter.
func (m *Metrics) IncrExternalError(service string) {
	m.externalErrors.WithLabelValues(service).Inc()
}

// IncrCacheHit increments the cache hit counter.
func (m *Metrics) IncrCacheHit(cache string) {
	m.cacheHits.WithLabelValues(cache).Inc()
}

// IncrCacheMiss increments the cache miss counter.
func (m *Metrics) IncrCacheMiss(cache string) {
	m.cacheMisses.WithLabelValues(cache).Inc()
}

// IncrReply counts one Mitra reply for the given source.
func (m *Metrics) IncrReply(source string) {
	m.repliesTotal.WithLabelValues(source).Inc()
}

// GetMitraSnapshot returns the reply counters in the shape served by GET /api/mitra/metrics.
func (m *Metrics) GetMitraSnapshot() *domain.MitraMetrics {
	bySource := make(map[string]int64, len(replySources))
	var total float64
	for _, s := range replySources {
		v := getCounterValue(m.repliesTotal, s)
		bySource[s] = int64(v)
		total += v
	}

	hits := getCounterValue(m.cacheHits, "mitra_reply")
	misses := getCounterValue(m.cacheMisses, "mitra_reply")

	snap := &domain.MitraMetrics{
		TotalReplies: int64(total),
		BySource:     bySource,
		Period:       "all_time",
	}
	if total > 0 {
		snap.FallbackRate = float64(bySource["fallback"]+bySource["error"]) / total
		snap.ErrorRate = float64(bySource["error"]) / total
	}
	if hits+misses > 0 {
		snap.CacheHitRate = hits / (hits + misses)
	}
	return snap
}

// getCounterValue extracts the current float64 value from a CounterVec for a given label.
func getCounterValue(cv *prometheus.CounterVec, label string) float64 {
	counter := cv.WithLabelValues(label)
	m := &dto.Metric{}
	if err := counter.(prometheus.Metric).Write(m); err != nil {
		return 0
	}
	if m.Counter != nil && m.Counter.Value != nil {
		return *m.Counter.Value
	}
	return 0
}
