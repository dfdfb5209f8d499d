package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OracleMetrics holds all Prometheus metrics for the oracle module
type OracleMetrics struct {
	// Registry metrics
	OracleCreations prometheus.Counter

	// Submission metrics
	ValueSubmissions  *prometheus.CounterVec
	SubmissionsPruned prometheus.Counter
	RejectedPushes    *prometheus.CounterVec

	// Aggregation metrics
	ValueCalculations *prometheus.CounterVec
	FinalizedValue    *prometheus.GaugeVec
}

var (
	oracleMetricsOnce sync.Once
	oracleMetrics     *OracleMetrics
)

// NewOracleMetrics creates and registers oracle metrics (singleton pattern)
func NewOracleMetrics() *OracleMetrics {
	oracleMetricsOnce.Do(func() {
		oracleMetrics = &OracleMetrics{
			OracleCreations: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "meridian",
					Subsystem: "oracle",
					Name:      "creations_total",
					Help:      "Total oracles created",
				},
			),
			ValueSubmissions: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "meridian",
					Subsystem: "oracle",
					Name:      "value_submissions_total",
					Help:      "Total accepted value submissions by oracle",
				},
				[]string{"oracle"},
			),
			SubmissionsPruned: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "meridian",
					Subsystem: "oracle",
					Name:      "submissions_pruned_total",
					Help:      "Total submissions pruned after falling out of carryover reach",
				},
			),
			RejectedPushes: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "meridian",
					Subsystem: "oracle",
					Name:      "rejected_pushes_total",
					Help:      "Total rejected pushes by reason",
				},
				[]string{"reason"},
			),
			ValueCalculations: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "meridian",
					Subsystem: "oracle",
					Name:      "value_calculations_total",
					Help:      "Total finalization attempts by oracle and outcome",
				},
				[]string{"oracle", "outcome"},
			),
			FinalizedValue: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "meridian",
					Subsystem: "oracle",
					Name:      "finalized_value",
					Help:      "Latest finalized value by oracle and value name",
				},
				[]string{"oracle", "value_name"},
			),
		}
	})

	return oracleMetrics
}
