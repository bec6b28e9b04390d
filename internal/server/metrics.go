package server

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "aercomp_"

	// ResultSuccess and ResultError label comparison outcomes.
	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	registerOnce sync.Once //nolint:gochecknoglobals // Metrics register exactly once per process.

	compareTotal   *prometheus.CounterVec   //nolint:gochecknoglobals
	compareLatency *prometheus.HistogramVec //nolint:gochecknoglobals
)

// initMetrics registers the comparison metrics. Safe to call repeatedly.
func initMetrics() {
	registerOnce.Do(func() {
		compareTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "compare_requests_total",
				Help: "Total comparison requests by result",
			},
			[]string{"result"},
		)
		compareLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "compare_latency_seconds",
				Help:    "Comparison latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)
		prometheus.MustRegister(compareTotal, compareLatency)
	})
}

// observeCompare records one comparison request.
func observeCompare(result string, elapsed time.Duration) {
	if compareTotal == nil {
		return
	}
	compareTotal.WithLabelValues(result).Inc()
	compareLatency.WithLabelValues(result).Observe(elapsed.Seconds())
}
