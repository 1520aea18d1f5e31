package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var latencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}

// Metrics holds the service's prometheus collectors on a private registry.
// A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	mediatorRequests *prometheus.CounterVec
	mediatorLatency  *prometheus.HistogramVec
	apiRequests      *prometheus.CounterVec
	apiLatency       *prometheus.HistogramVec
	apiInflight      prometheus.Gauge
	cacheLookups     *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		mediatorRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "person_mediator_requests_total",
			Help: "Requests dispatched through the mediator by request type and outcome",
		}, []string{"request", "outcome"}),
		mediatorLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "person_mediator_request_duration_seconds",
			Help:    "Duration of mediator handler execution",
			Buckets: latencyBuckets,
		}, []string{"request"}),
		apiRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "person_http_requests_total",
			Help: "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		apiLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "person_http_request_duration_seconds",
			Help:    "HTTP request duration by method and route",
			Buckets: latencyBuckets,
		}, []string{"method", "route"}),
		apiInflight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "person_http_requests_inflight",
			Help: "HTTP requests currently being served",
		}),
		cacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "person_account_cache_lookups_total",
			Help: "Social media account cache lookups by result",
		}, []string{"result"}),
	}
}

func (m *Metrics) ObserveMediator(request, outcome string, dur time.Duration) {
	if m == nil {
		return
	}
	m.mediatorRequests.WithLabelValues(request, outcome).Inc()
	m.mediatorLatency.WithLabelValues(request).Observe(dur.Seconds())
}

func (m *Metrics) ObserveAPI(method, route, status string, dur time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.apiRequests.WithLabelValues(method, route, status).Inc()
	m.apiLatency.WithLabelValues(method, route).Observe(dur.Seconds())
}

func (m *Metrics) ApiInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) ApiInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

// ObserveCacheLookup records result as one of hit, miss or error.
func (m *Metrics) ObserveCacheLookup(result string) {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}
