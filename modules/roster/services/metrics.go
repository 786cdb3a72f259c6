package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rosterBuildDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "roster",
		Name:      "build_duration_seconds",
		Help:      "Time spent aggregating, filtering and sorting one week roster.",
		Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	}, []string{"source"})

	rosterRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "roster",
		Name:      "rows_total",
		Help:      "Total number of roster rows emitted broken down by source.",
	}, []string{"source"})

	rosterRecordsSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "roster",
		Name:      "records_skipped_total",
		Help:      "Total number of malformed duty records skipped broken down by source.",
	}, []string{"source"})
)

func recordBuild(source string, seconds float64, rows, skipped int) {
	if source == "" {
		source = "unknown"
	}
	rosterBuildDuration.WithLabelValues(source).Observe(seconds)
	rosterRows.WithLabelValues(source).Add(float64(rows))
	rosterRecordsSkipped.WithLabelValues(source).Add(float64(skipped))
}
