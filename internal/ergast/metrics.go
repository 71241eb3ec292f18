package ergast

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts feed requests per endpoint, source and outcome. It is
// constructed from a caller-supplied registry and passed into clients;
// there is no package-level state. A nil *Metrics disables collection.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the feed collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "f1bot",
			Subsystem: "ergast",
			Name:      "requests_total",
			Help:      "Feed requests by endpoint, source and outcome.",
		}, []string{"endpoint", "source", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "f1bot",
			Subsystem: "ergast",
			Name:      "request_duration_seconds",
			Help:      "Feed request duration by endpoint and source.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint", "source"}),
	}
	reg.MustRegister(m.requests, m.duration)
	return m
}

func (m *Metrics) observe(endpoint, source string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.requests.WithLabelValues(endpoint, source, outcome).Inc()
	m.duration.WithLabelValues(endpoint, source).Observe(elapsed.Seconds())
}
