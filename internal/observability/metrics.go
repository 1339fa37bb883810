package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce      sync.Once
	requestsTotal     *prometheus.CounterVec
	latencySeconds    *prometheus.HistogramVec
	errorsTotal       *prometheus.CounterVec
	analysesTotal     *prometheus.CounterVec
	criterionFailures prometheus.Counter
)

// RegisterMetrics initialises the Prometheus collectors used for API observability.
func RegisterMetrics() {
	registerOnce.Do(func() {
		requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "essaycoach_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		latencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "essaycoach_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0},
		}, []string{"method", "route"})

		errorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "essaycoach_errors_total",
			Help: "Total number of error responses returned by the API.",
		}, []string{"method", "route", "status"})

		analysesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "essaycoach_analyses_total",
			Help: "Total number of completed essay analyses by exam type.",
		}, []string{"exam_type"})

		criterionFailures = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "essaycoach_criterion_failures_total",
			Help: "Number of per-criterion completion calls that degraded to placeholders.",
		})

		prometheus.MustRegister(requestsTotal, latencySeconds, errorsTotal, analysesTotal, criterionFailures)
	})
}

// Requests exposes the counter for API requests.
func Requests() *prometheus.CounterVec {
	RegisterMetrics()
	return requestsTotal
}

// Latency exposes the latency histogram for API requests.
func Latency() *prometheus.HistogramVec {
	RegisterMetrics()
	return latencySeconds
}

// Errors exposes the counter for API error responses.
func Errors() *prometheus.CounterVec {
	RegisterMetrics()
	return errorsTotal
}

// Analyses exposes the counter for completed analyses.
func Analyses() *prometheus.CounterVec {
	RegisterMetrics()
	return analysesTotal
}

// CriterionFailures exposes the degraded-criterion counter.
func CriterionFailures() prometheus.Counter {
	RegisterMetrics()
	return criterionFailures
}
