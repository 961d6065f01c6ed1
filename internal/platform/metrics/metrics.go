package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the shared Prometheus instruments for the draft pipeline.
type Metrics struct {
	DraftsCreated       *prometheus.CounterVec
	SubmissionDuration  prometheus.Histogram
	RequestLatency      *prometheus.HistogramVec
	PersistenceFailures *prometheus.CounterVec
}

// New creates and registers all instruments on the default registry.
func New() *Metrics {
	return &Metrics{
		DraftsCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "loandraft_drafts_created_total",
			Help: "Total number of draft applications created, by flow.",
		}, []string{"flow"}),
		SubmissionDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "loandraft_submission_duration_seconds",
			Help:    "End-to-end draft submission duration.",
			Buckets: prometheus.DefBuckets,
		}),
		RequestLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "loandraft_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		PersistenceFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "loandraft_persistence_failures_total",
			Help: "Contact-record persistence failures by target table.",
		}, []string{"table"}),
	}
}

// ObserveSubmission records one completed submission.
func (m *Metrics) ObserveSubmission(flow string, d time.Duration) {
	if m == nil {
		return
	}
	m.DraftsCreated.WithLabelValues(flow).Inc()
	m.SubmissionDuration.Observe(d.Seconds())
}

// ObserveRequest records one HTTP request's latency against its route.
func (m *Metrics) ObserveRequest(route string, d time.Duration) {
	if m == nil {
		return
	}
	m.RequestLatency.WithLabelValues(route).Observe(d.Seconds())
}

// IncPersistenceFailure records one failed contact-record write.
func (m *Metrics) IncPersistenceFailure(table string) {
	if m == nil {
		return
	}
	m.PersistenceFailures.WithLabelValues(table).Inc()
}
