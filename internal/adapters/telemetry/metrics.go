package telemetry

import (
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/clustertap/internal/core/ports"
)

const namespace = "clustertap"

// operationKinds bounds the operation label of classified_total. The empty
// kind is used for requests that are not of interest.
var operationKinds = []string{"", "query", "mutation", "subscription", "persisted", "anonymous"}

// Metrics implements ports.Metrics with Prometheus collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	observations *prometheus.CounterVec
	classified   *prometheus.CounterVec
	extracted    *prometheus.CounterVec
	cacheEntries prometheus.Gauge
	swept        prometheus.Counter
	pushed       *prometheus.CounterVec
	buildInfo    *prometheus.GaugeVec

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	inFlight        *prometheus.GaugeVec
}

// NewMetrics creates and registers the clustertap collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		observations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "observations_total",
			Help:      "Observations received, by source kind.",
		}, []string{"source"}),
		classified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classified_total",
			Help:      "Classifier decisions, by outcome and operation kind.",
		}, []string{"of_interest", "operation"}),
		extracted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extractions_total",
			Help:      "Extraction attempts on classified responses, by result.",
		}, []string{"result"}),
		cacheEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cache_entries",
			Help:      "Entries in the correlation cache after the last sweep.",
		}),
		swept: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_evictions_total",
			Help:      "Correlation cache entries removed by the sweeper.",
		}),
		pushed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graphs_pushed_total",
			Help:      "Graphs pushed to the hub, by whether they repeated the latest graph.",
		}, []string{"duplicate"}),
		buildInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "build_info",
			Help:      "Build info (constant 1, labeled by version and commit).",
		}, []string{"version", "commit"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by route and status class.",
		}, []string{"route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}, []string{"route"}),
		inFlight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_in_flight_requests",
			Help:      "HTTP requests currently being served.",
		}, []string{"route"}),
	}

	m.registry.MustRegister(
		m.observations, m.classified, m.extracted,
		m.cacheEntries, m.swept, m.pushed, m.buildInfo,
		m.requests, m.requestDuration, m.inFlight,
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// SetBuildInfo records the running version once at startup.
func (m *Metrics) SetBuildInfo(version, commit string) {
	m.buildInfo.WithLabelValues(version, commit).Set(1)
}

// ObservationReceived implements ports.Metrics.
func (m *Metrics) ObservationReceived(source string) {
	m.observations.WithLabelValues(source).Inc()
}

// Classified implements ports.Metrics. Kinds outside the known set are
// counted as "other".
func (m *Metrics) Classified(ofInterest bool, kind string) {
	if !slices.Contains(operationKinds, kind) {
		kind = "other"
	}
	m.classified.WithLabelValues(strconv.FormatBool(ofInterest), kind).Inc()
}

// Extracted implements ports.Metrics.
func (m *Metrics) Extracted(result ports.ExtractResult) {
	m.extracted.WithLabelValues(string(result)).Inc()
}

// CacheEntries implements ports.Metrics.
func (m *Metrics) CacheEntries(n int) {
	m.cacheEntries.Set(float64(n))
}

// Swept implements ports.Metrics.
func (m *Metrics) Swept(n int) {
	m.swept.Add(float64(n))
}

// GraphPushed implements ports.Metrics.
func (m *Metrics) GraphPushed(duplicate bool) {
	m.pushed.WithLabelValues(strconv.FormatBool(duplicate)).Inc()
}

// Instrument wraps next to record request count, latency and concurrency
// under the route label. It must not wrap websocket routes, since the
// recording writer does not support hijacking.
func (m *Metrics) Instrument(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		m.inFlight.WithLabelValues(route).Inc()
		defer m.inFlight.WithLabelValues(route).Dec()

		next.ServeHTTP(sw, r)

		class := strconv.Itoa(sw.status/100) + "xx"
		m.requests.WithLabelValues(route, class).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
