// Package metrics registers the Prometheus collectors exposed at /metrics.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricPrefix = "settleup_"

var (
	registerOnce sync.Once

	// HTTPRequestDuration observes request latency by method, route and
	// status class.
	HTTPRequestDuration *prometheus.HistogramVec

	// SettlementsComputed counts settlement plan computations.
	SettlementsComputed prometheus.Counter

	// SettlementDuration observes how long a full settlement computation
	// takes (load + aggregate + plan).
	SettlementDuration prometheus.Histogram

	// TransfersPlanned observes how many transfers each plan emits.
	TransfersPlanned prometheus.Histogram
)

// Init registers all collectors with the default registry. Safe to call more
// than once.
func Init() {
	registerOnce.Do(func() {
		HTTPRequestDuration = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_duration_seconds",
				Help:    "HTTP request latency by method, route and status",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		)
		SettlementsComputed = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "settlements_computed_total",
				Help: "Total settlement plan computations",
			},
		)
		SettlementDuration = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "settlement_duration_seconds",
				Help:    "Duration of a full settlement computation",
				Buckets: prometheus.DefBuckets,
			},
		)
		TransfersPlanned = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "transfers_per_settlement",
				Help:    "Number of transfers emitted per settlement plan",
				Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
			},
		)

		prometheus.MustRegister(
			HTTPRequestDuration,
			SettlementsComputed,
			SettlementDuration,
			TransfersPlanned,
		)
	})
}

// Handler returns the HTTP handler serving the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
