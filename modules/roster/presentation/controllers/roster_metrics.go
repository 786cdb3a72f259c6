package controllers

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rosterAPIRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "roster",
		Subsystem: "api",
		Name:      "requests_total",
		Help:      "Total number of roster API requests broken down by endpoint and result.",
	}, []string{"endpoint", "result"})

	rosterAPILatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "roster",
		Subsystem: "api",
		Name:      "latency_seconds",
		Help:      "Latency distribution for roster API requests.",
		Buckets: []float64{
			0.001, 0.005, 0.01,
			0.05, 0.1, 0.5,
			1, 5,
		},
	}, []string{"endpoint", "result"})
)

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusRecorder) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.status = status
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (w *statusRecorder) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func resultClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	default:
		return "2xx"
	}
}

// instrumentAPI labels by a fixed endpoint name, never by the raw path.
func (c *RosterAPIController) instrumentAPI(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next(rec, r)

		result := resultClass(rec.status)
		rosterAPIRequests.WithLabelValues(endpoint, result).Inc()
		rosterAPILatency.WithLabelValues(endpoint, result).Observe(time.Since(start).Seconds())
	}
}
