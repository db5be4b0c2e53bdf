package metrics

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "countries"

// Refresh outcome labels.
const (
	OutcomeSuccess     = "success"
	OutcomeUnavailable = "unavailable"
	OutcomeError       = "error"
)

// Metrics holds the service collectors on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	refreshTotal    *prometheus.CounterVec
	refreshRecords  *prometheus.CounterVec
	refreshDuration prometheus.Histogram
	lastSuccess     prometheus.Gauge
	summaryRenders  *prometheus.CounterVec
}

// New registers the service collectors plus the Go and process collectors.
func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.refreshTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "refresh_total",
		Help:      "Refresh cycles by outcome",
	}, []string{"outcome"})
	m.refreshRecords = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "refresh_records_total",
		Help:      "Country records processed by refresh, by result",
	}, []string{"result"})
	m.refreshDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "refresh_duration_seconds",
		Help:      "Time spent in a refresh cycle",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10),
	})
	m.lastSuccess = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_refresh_success_timestamp_seconds",
		Help:      "Unix time of the last completed refresh",
	})
	m.summaryRenders = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "summary_renders_total",
		Help:      "Summary image generations by outcome",
	}, []string{"outcome"})

	m.registry.MustRegister(
		m.refreshTotal,
		m.refreshRecords,
		m.refreshDuration,
		m.lastSuccess,
		m.summaryRenders,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveRefresh records one refresh cycle.
func (m *Metrics) ObserveRefresh(outcome string, started time.Time, inserted, updated, failed int) {
	if m == nil {
		return
	}
	m.refreshTotal.WithLabelValues(outcome).Inc()
	m.refreshDuration.Observe(time.Since(started).Seconds())
	if outcome != OutcomeSuccess {
		return
	}
	m.refreshRecords.WithLabelValues("inserted").Add(float64(inserted))
	m.refreshRecords.WithLabelValues("updated").Add(float64(updated))
	m.refreshRecords.WithLabelValues("failed").Add(float64(failed))
	m.lastSuccess.Set(float64(time.Now().Unix()))
}

// ObserveSummary records one summary generation.
func (m *Metrics) ObserveSummary(err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.summaryRenders.WithLabelValues(OutcomeError).Inc()
		return
	}
	m.summaryRenders.WithLabelValues(OutcomeSuccess).Inc()
}

// Registry exposes the underlying registry for tests and custom collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
