package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pedidos"

// Metrics holds the collectors of the query pipeline.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	QueriesTotal   *prometheus.CounterVec
	QueriesFailed  *prometheus.CounterVec
	QueriesSkipped prometheus.Counter
	NLUDuration    prometheus.Histogram
}

// New registers the pipeline collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		QueriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "queries_total",
				Help:      "Total number of processed queries by resolved intent",
			},
			[]string{"intent"},
		),
		QueriesFailed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "queries_failed_total",
				Help:      "Total number of queries that failed by error kind",
			},
			[]string{"kind"},
		),
		QueriesSkipped: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "queries_skipped_total",
				Help:      "Total number of empty or quit inputs that never reached the NLU service",
			},
		),
		NLUDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "nlu_request_duration_seconds",
				Help:      "Duration of NLU analysis calls in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),
	}
}

func (m *Metrics) ObserveIntent(intent string, d time.Duration) {
	if m == nil {
		return
	}
	m.QueriesTotal.WithLabelValues(intent).Inc()
	m.NLUDuration.Observe(d.Seconds())
}

func (m *Metrics) ObserveFailure(kind string) {
	if m == nil {
		return
	}
	m.QueriesFailed.WithLabelValues(kind).Inc()
}

func (m *Metrics) ObserveSkipped() {
	if m == nil {
		return
	}
	m.QueriesSkipped.Inc()
}
