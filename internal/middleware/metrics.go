package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Analysis outcomes recorded by ObserveAnalysis.
const (
	OutcomeSuccess    = "success"
	OutcomeValidation = "validation_error"
	OutcomeError      = "error"
)

// unmatchedRoute is the path label for requests no chi route matched.
const unmatchedRoute = "unmatched"

// Metrics holds the request and analysis collectors.
type Metrics struct {
	requestCount    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	inFlight        prometheus.Gauge
	analyses        *prometheus.CounterVec
	gatherer        prometheus.Gatherer
}

// NewMetrics registers the collectors on reg. Use a fresh registry per test.
func NewMetrics(reg *prometheus.Registry) (*Metrics, error) {
	m := &Metrics{
		requestCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed.",
		}, []string{"method", "path", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
		}, []string{"method", "path"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Requests currently being served.",
		}),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "contract_analyses_total",
			Help: "Contract submissions by outcome.",
		}, []string{"outcome"}),
		gatherer: reg,
	}

	for _, c := range []prometheus.Collector{m.requestCount, m.requestDuration, m.inFlight, m.analyses} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Handler tracks request metrics, labelled by chi route pattern.
func (m *Metrics) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		m.inFlight.Inc()
		defer m.inFlight.Dec()

		start := time.Now()
		wrapped := wrapWriter(w)
		next.ServeHTTP(wrapped, r)

		path := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				path = p
			}
		}
		m.requestCount.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.statusCode)).Inc()
		m.requestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}

// ObserveAnalysis counts one contract submission. Safe on a nil receiver.
func (m *Metrics) ObserveAnalysis(outcome string) {
	if m == nil {
		return
	}
	m.analyses.WithLabelValues(outcome).Inc()
}

// Exposition serves the registry in Prometheus text format.
func (m *Metrics) Exposition() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
