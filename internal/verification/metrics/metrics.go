package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the verification pipeline.
type Metrics struct {
	Outcomes  *prometheus.CounterVec
	Latency   *prometheus.HistogramVec
	CacheHits prometheus.Counter
	CacheMiss prometheus.Counter
}

// New creates and registers all verification instruments.
func New() *Metrics {
	return &Metrics{
		Outcomes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "loandraft_verification_outcomes_total",
			Help: "Verification outcomes by kind and status.",
		}, []string{"kind", "status"}),
		Latency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "loandraft_verification_latency_seconds",
			Help:    "External verification call latency by kind.",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind"}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loandraft_address_cache_hits_total",
			Help: "Address lookups served from the cache.",
		}),
		CacheMiss: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loandraft_address_cache_misses_total",
			Help: "Address lookups that went to the external service.",
		}),
	}
}

// ObserveOutcome records the status and latency of one verification call.
func (m *Metrics) ObserveOutcome(kind, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.Outcomes.WithLabelValues(kind, status).Inc()
	m.Latency.WithLabelValues(kind).Observe(d.Seconds())
}

// ObserveCache records a cache hit or miss for address lookups.
func (m *Metrics) ObserveCache(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.CacheHits.Inc()
		return
	}
	m.CacheMiss.Inc()
}
