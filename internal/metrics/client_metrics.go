package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
)

// ClientMetrics counts and times outbound requests per resource
type ClientMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewClientMetrics registers client metrics on the default registerer
func NewClientMetrics() *ClientMetrics {
	return NewClientMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewClientMetricsWithRegisterer registers client metrics on registerer.
// Collectors already registered are reused.
func NewClientMetricsWithRegisterer(registerer prometheus.Registerer) *ClientMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orderclient_requests_total",
		Help: "Total number of outbound requests by resource, method and status code",
	}, []string{"resource", "method", "code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "orderclient_request_duration_seconds",
		Help:    "Duration of outbound requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"resource", "method"})

	return &ClientMetrics{
		requests: register(registerer, requests),
		duration: register(registerer, duration),
	}
}

// InstrumentTransport wraps next so that requests for resource are counted and timed
func (m *ClientMetrics) InstrumentTransport(resource string, next http.RoundTripper) http.RoundTripper {
	if m == nil {
		return next
	}
	if next == nil {
		next = http.DefaultTransport
	}

	labels := prometheus.Labels{"resource": resource}

	return promhttp.InstrumentRoundTripperCounter(
		m.requests.MustCurryWith(labels),
		promhttp.InstrumentRoundTripperDuration(m.duration.MustCurryWith(labels), next),
	)
}

func register[C prometheus.Collector](registerer prometheus.Registerer, c C) C {
	if err := registerer.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}
