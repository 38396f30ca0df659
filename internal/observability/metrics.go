package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the query pipeline.
type Metrics struct {
	QueriesTotal   *prometheus.CounterVec // labels: mode={recency,search}, outcome={ok,empty,error}
	FetchDuration  *prometheus.HistogramVec
	EventsReturned prometheus.Histogram
}

// NewMetrics creates and registers all pipeline metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.QueriesTotal, m.FetchDuration, m.EventsReturned)
	return m
}

// NewUnregisteredMetrics creates metrics without touching the default
// registry, for tests that construct more than one pipeline.
func NewUnregisteredMetrics() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		QueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quake_tracker",
			Name:      "queries_total",
			Help:      "Total queries issued, by mode and outcome.",
		}, []string{"mode", "outcome"}),
		FetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "quake_tracker",
			Name:      "fetch_duration_seconds",
			Help:      "Wall time of the upstream feed round trip.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"mode"}),
		EventsReturned: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "quake_tracker",
			Name:      "events_returned",
			Help:      "Events decoded from a successful feed response.",
			Buckets:   []float64{0, 1, 5, 10, 50, 100, 500, 1000},
		}),
	}
}
