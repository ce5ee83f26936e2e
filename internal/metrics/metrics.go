package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the payout engine. Each instance
// owns its registry so tests can create as many as they like.
type Metrics struct {
	// Poller
	PollPassesTotal     *prometheus.CounterVec
	PollPassDuration    prometheus.Histogram
	AllocationsTotal    *prometheus.CounterVec
	PaidKzTotal         prometheus.Counter
	ProviderErrorsTotal *prometheus.CounterVec
	LedgerQuarantined   prometheus.Counter

	// API
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPInFlight        prometheus.Gauge

	registry *prometheus.Registry
}

// New creates a Metrics instance with every collector registered.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		PollPassesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "viralizza_poll_passes_total",
				Help: "Total number of poll passes by result",
			},
			[]string{"result"},
		),
		PollPassDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "viralizza_poll_pass_duration_seconds",
				Help:    "Duration of a complete poll pass",
				Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
			},
		),
		AllocationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "viralizza_allocations_total",
				Help: "Total number of processed view samples by outcome",
			},
			[]string{"outcome"},
		),
		PaidKzTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "viralizza_paid_kz_total",
				Help: "Total amount allocated to creators",
			},
		),
		ProviderErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "viralizza_provider_errors_total",
				Help: "Total number of failed view count lookups",
			},
			[]string{"platform"},
		),
		LedgerQuarantined: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "viralizza_ledger_quarantined_total",
				Help: "Total number of submissions quarantined for an inconsistent ledger",
			},
		),

		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "viralizza_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "viralizza_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		HTTPInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "viralizza_http_in_flight_requests",
				Help: "Number of HTTP requests being served",
			},
		),

		registry: reg,
	}

	reg.MustRegister(
		m.PollPassesTotal,
		m.PollPassDuration,
		m.AllocationsTotal,
		m.PaidKzTotal,
		m.ProviderErrorsTotal,
		m.LedgerQuarantined,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPInFlight,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry returns the registry the metrics are registered in.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveAllocation records one processed sample.
func (m *Metrics) ObserveAllocation(outcome string, paidKz int64) {
	if m == nil {
		return
	}
	m.AllocationsTotal.WithLabelValues(outcome).Inc()
	if paidKz > 0 {
		m.PaidKzTotal.Add(float64(paidKz))
	}
}

// IncProviderErrors counts a failed provider lookup.
func (m *Metrics) IncProviderErrors(platform string) {
	if m == nil {
		return
	}
	m.ProviderErrorsTotal.WithLabelValues(platform).Inc()
}

// IncQuarantined counts a submission taken out of polling.
func (m *Metrics) IncQuarantined() {
	if m == nil {
		return
	}
	m.LedgerQuarantined.Inc()
}

// ObservePass records a finished poll pass.
func (m *Metrics) ObservePass(result string, seconds float64) {
	if m == nil {
		return
	}
	m.PollPassesTotal.WithLabelValues(result).Inc()
	m.PollPassDuration.Observe(seconds)
}
