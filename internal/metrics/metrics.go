package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the tracker
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// Resolution Metrics
	AirportResolutionsTotal *prometheus.CounterVec
	ReferenceFaultsTotal    *prometheus.CounterVec
	SearchCacheTotal        *prometheus.CounterVec

	// Business Metrics
	FlightsRecordedTotal prometheus.Counter
}

// NewMetricsRegistry registers every metric with reg. Pass
// prometheus.DefaultRegisterer in the server and a fresh registry in tests.
func NewMetricsRegistry(reg prometheus.Registerer) *MetricsRegistry {
	factory := promauto.With(reg)

	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wayfarer_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wayfarer_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "wayfarer_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		AirportResolutionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wayfarer_airport_resolutions_total",
				Help: "Airport resolutions by outcome",
			},
			[]string{"outcome"},
		),
		ReferenceFaultsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wayfarer_reference_lookup_faults_total",
				Help: "Failed queries against the reference airport dataset",
			},
			[]string{"op"},
		),
		SearchCacheTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wayfarer_search_cache_total",
				Help: "Airport search cache lookups by result",
			},
			[]string{"result"},
		),

		FlightsRecordedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "wayfarer_flights_recorded_total",
				Help: "Total flight records created",
			},
		),
	}
}

// The helpers below are nil-safe so components can run without metrics.

func (m *MetricsRegistry) ObserveResolution(outcome string) {
	if m == nil {
		return
	}
	m.AirportResolutionsTotal.WithLabelValues(outcome).Inc()
}

func (m *MetricsRegistry) ObserveReferenceFault(op string) {
	if m == nil {
		return
	}
	m.ReferenceFaultsTotal.WithLabelValues(op).Inc()
}

func (m *MetricsRegistry) ObserveSearchCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.SearchCacheTotal.WithLabelValues(result).Inc()
}

func (m *MetricsRegistry) ObserveFlightRecorded() {
	if m == nil {
		return
	}
	m.FlightsRecordedTotal.Inc()
}
