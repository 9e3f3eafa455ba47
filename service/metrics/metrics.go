package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus collectors for the application.
// Following the explicit dependency injection pattern, this struct
// is passed to all components that need to record metrics.
type Metrics struct {
	// HTTP Metrics
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Helius Upstream Metrics
	heliusRequestsTotal       *prometheus.CounterVec
	heliusRequestDuration     *prometheus.HistogramVec
	heliusTransactionsPerCall *prometheus.HistogramVec

	// Transaction Shaping Metrics
	transactionsSimplifiedTotal *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance and registers all collectors.
// If registry is nil, prometheus.DefaultRegisterer is used.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(registry)

	return &Metrics{
		// HTTP Metrics
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by handler, method, and status",
			},
			[]string{"handler", "method", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
			},
			[]string{"handler", "method"},
		),

		// Helius Upstream Metrics
		heliusRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "helius_requests_total",
				Help: "Total number of Helius API requests by status",
			},
			[]string{"status"},
		),
		heliusRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "helius_request_duration_seconds",
				Help:    "Duration of Helius API requests in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
			},
			[]string{"status"},
		),
		heliusTransactionsPerCall: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "helius_transactions_per_call",
				Help:    "Number of transactions returned per Helius API call",
				Buckets: []float64{0, 1, 3, 5, 10, 25, 50, 100},
			},
			[]string{},
		),

		// Transaction Shaping Metrics
		transactionsSimplifiedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_simplified_total",
				Help: "Total number of transactions simplified and returned to clients",
			},
			[]string{"handler"},
		),
	}
}

// RecordHTTPRequest records an HTTP request with its duration.
func (m *Metrics) RecordHTTPRequest(handler, method string, statusCode int, durationSeconds float64) {
	status := strconv.Itoa(statusCode)
	m.httpRequestsTotal.WithLabelValues(handler, method, status).Inc()
	m.httpRequestDuration.WithLabelValues(handler, method).Observe(durationSeconds)
}

// RecordHeliusRequest records an outbound Helius API call.
// Status is "success" for 2xx responses or "error" otherwise.
func (m *Metrics) RecordHeliusRequest(status string, durationSeconds float64) {
	m.heliusRequestsTotal.WithLabelValues(status).Inc()
	m.heliusRequestDuration.WithLabelValues(status).Observe(durationSeconds)
}

// RecordHeliusTransactions records the number of transactions returned by a Helius call.
func (m *Metrics) RecordHeliusTransactions(count float64) {
	m.heliusTransactionsPerCall.WithLabelValues().Observe(count)
}

// RecordTransactionsSimplified records transactions simplified for a client response.
func (m *Metrics) RecordTransactionsSimplified(handler string, count float64) {
	m.transactionsSimplifiedTotal.WithLabelValues(handler).Add(count)
}
