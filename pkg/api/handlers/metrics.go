package handlers

import (
	"sync"

	"github.com/Pietroro/config2spec/pkg/policy"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	policiesAdded = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "policies_added_total",
		Help: "Number of policies added through the API",
	})

	policiesRemoved = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "policies_removed_total",
		Help: "Number of policies removed through the API",
	})

	recordsRejected = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "policy_records_rejected_total",
		Help: "Number of policy records rejected at ingestion",
	})
)

var registerMetricsOnce sync.Once

// RegisterMetrics registers the policy-set metrics against the default
// prometheus registry. Gauges read live values from the store.
func RegisterMetrics(store policy.Store) {
	registerMetricsOnce.Do(func() {
		prometheus.MustRegister(policiesAdded, policiesRemoved, recordsRejected)
		prometheus.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "policy_count",
			Help: "Number of policies currently in the set",
		}, func() float64 { return float64(store.Count()) }))
		prometheus.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "policy_coverage",
			Help: "Total coverage (source-destination pairs) of the policy set",
		}, func() float64 { return float64(store.TotalCoverage()) }))
	})
}
