package txn

import "github.com/prometheus/client_golang/prometheus"

// Metrics namespace follows scheduler/server/metrics.go's
// Namespace/Subsystem/Name convention.
var (
	transactionsStartedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "txn",
			Subsystem: "context",
			Name:      "started_total",
			Help:      "Number of transaction contexts constructed.",
		})

	transactionsResolvedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "txn",
			Subsystem: "context",
			Name:      "resolved_total",
			Help:      "Number of transaction contexts resolved, by result.",
		}, []string{"result"})

	insertCountGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "txn",
			Subsystem: "context",
			Name:      "insert_count",
			Help:      "insert_count of the transaction context that most recently recorded an insert or delete.",
		})
)

func init() {
	prometheus.MustRegister(transactionsStartedCounter)
	prometheus.MustRegister(transactionsResolvedCounter)
	prometheus.MustRegister(insertCountGauge)
}
