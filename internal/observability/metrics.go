package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the service.
type Metrics struct {
	CountryLookups *prometheus.CounterVec // labels: outcome={success,failure}, kind (failure classification, empty on success)
	StatusChecks   *prometheus.CounterVec // labels: country, error={"",no_country,unsupported_country}

	// Geolocation provider metrics.
	GeoIPRequests        *prometheus.CounterVec // labels: outcome={success,<error kind>}
	GeoIPRequestDuration prometheus.Histogram

	// Analytics sink metrics.
	AnalyticsEvents prometheus.Counter
	AnalyticsErrors prometheus.Counter

	HTTPRequestDuration *prometheus.HistogramVec // labels: path
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.CountryLookups,
		m.StatusChecks,
		m.GeoIPRequests,
		m.GeoIPRequestDuration,
		m.AnalyticsEvents,
		m.AnalyticsErrors,
		m.HTTPRequestDuration,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		CountryLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bank_status",
			Name:      "country_lookups_total",
			Help:      "Country resolution attempts by outcome and failure kind.",
		}, []string{"outcome", "kind"}),
		StatusChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bank_status",
			Name:      "checks_total",
			Help:      "Bank status checks by resolved country and request error.",
		}, []string{"country", "error"}),
		GeoIPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bank_status",
			Name:      "geoip_requests_total",
			Help:      "Geolocation provider requests by outcome.",
		}, []string{"outcome"}),
		GeoIPRequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "bank_status",
			Name:      "geoip_request_duration_seconds",
			Help:      "Geolocation provider request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}),
		AnalyticsEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bank_status",
			Name:      "analytics_events_total",
			Help:      "Analytics events successfully published.",
		}),
		AnalyticsErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bank_status",
			Name:      "analytics_errors_total",
			Help:      "Analytics events that failed to publish.",
		}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "bank_status",
			Name:      "http_request_duration_seconds",
			Help:      "API request duration in seconds.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5},
		}, []string{"path"}),
	}
}
