package metrics

import (
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	register(
		generationRequests,
		generationFailures,
		generationLatencyMs,
		generationLockContentions,
	)
}

var (
	generationRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "genui_generation_requests_total",
			Help: "Count of component generation requests per provider/model.",
		},
		[]string{"provider", "model"},
	)

	generationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "genui_generation_failures_total",
			Help: "Count of failed generations per provider/model and error kind.",
		},
		[]string{"provider", "model", "kind"},
	)

	generationLatencyMs = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "genui_generation_latency_ms",
			Help:    "Model round-trip latency distribution in milliseconds.",
			Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000, 60000},
		},
		[]string{"provider", "model", "success"},
	)

	generationLockContentions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "genui_generation_lock_contentions_total",
			Help: "Count of generate requests rejected because the session was busy.",
		},
		[]string{"provider"},
	)
)

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func ObserveGeneration(provider, model string, latencyMs int, success bool) {
	generationRequests.WithLabelValues(norm(provider), norm(model)).Inc()
	generationLatencyMs.WithLabelValues(norm(provider), norm(model), strconv.FormatBool(success)).Observe(float64(latencyMs))
}

func GenerationFailed(provider, model, kind string) {
	generationFailures.WithLabelValues(norm(provider), norm(model), norm(kind)).Inc()
}

func LockContention(provider string) {
	generationLockContentions.WithLabelValues(norm(provider)).Inc()
}
