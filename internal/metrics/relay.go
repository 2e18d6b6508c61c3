package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels shared by the search and model collectors.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "relay",
			Name:      "search_requests_total",
			Help:      "Total number of web search requests",
		},
		[]string{"provider", "status"},
	)

	SearchRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "relay",
			Name:      "search_request_duration_seconds",
			Help:      "Web search request duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"provider"},
	)

	ModelInvocationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "relay",
			Name:      "model_invocations_total",
			Help:      "Total number of model runner invocations",
		},
		[]string{"status"},
	)

	ModelInvocationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "relay",
			Name:      "model_invocation_duration_seconds",
			Help:      "Model runner wall time in seconds",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		},
	)
)

func init() {
	prometheus.MustRegister(SearchRequestsTotal)
	prometheus.MustRegister(SearchRequestDuration)
	prometheus.MustRegister(ModelInvocationsTotal)
	prometheus.MustRegister(ModelInvocationDuration)
}

// ObserveSearch records one search call.
func ObserveSearch(provider string, started time.Time, err error) {
	SearchRequestDuration.WithLabelValues(provider).Observe(time.Since(started).Seconds())
	SearchRequestsTotal.WithLabelValues(provider, statusOf(err)).Inc()
}

// ObserveModel records one model invocation.
func ObserveModel(started time.Time, err error) {
	ModelInvocationDuration.Observe(time.Since(started).Seconds())
	ModelInvocationsTotal.WithLabelValues(statusOf(err)).Inc()
}

func statusOf(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusOK
}
