package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	WalletsCreated     prometheus.Counter
	Signatures         *prometheus.CounterVec
	FailsafeTriggers   prometheus.Counter
	RevocationOutcomes *prometheus.CounterVec
	AuthFailures       prometheus.Counter
	RequestLatency     *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		WalletsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "blocktrust_wallets_created_total",
			Help: "Total number of wallets generated.",
		}),
		Signatures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "blocktrust_signatures_total",
			Help: "Total signatures produced, by mode.",
		}, []string{"mode"}),
		FailsafeTriggers: promauto.NewCounter(prometheus.CounterOpts{
			Name: "blocktrust_failsafe_triggers_total",
			Help: "Total duress-classified signing requests.",
		}),
		RevocationOutcomes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "blocktrust_revocations_total",
			Help: "Identity revocation call outcomes, by result.",
		}, []string{"result"}),
		AuthFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "blocktrust_auth_failures_total",
			Help: "Total rejected signing attempts.",
		}),
		RequestLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "blocktrust_request_duration_seconds",
			Help:    "HTTP request latency by route and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
}

// ObserveSignature records a produced signature by mode ("normal"/"duress").
func (m *Metrics) ObserveSignature(mode string) {
	m.Signatures.WithLabelValues(mode).Inc()
}

// ObserveRevocation records a revocation outcome ("succeeded"/"failed"/"skipped").
func (m *Metrics) ObserveRevocation(result string) {
	m.RevocationOutcomes.WithLabelValues(result).Inc()
}
