package metrics

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "payitnow"

type registry struct {
	providerRequests  *prometheus.CounterVec
	providerErrors    *prometheus.CounterVec
	providerLatency   *prometheus.HistogramVec
	monitorTicks      prometheus.Counter
	monitorTickTime   prometheus.Histogram
	monitorQueryErrs  *prometheus.CounterVec
	monitorTransition *prometheus.CounterVec
	executions        *prometheus.CounterVec
	httpRequests      *prometheus.CounterVec
	httpLatency       *prometheus.HistogramVec
}

var (
	registryOnce sync.Once
	defaultReg   *registry
)

func defaultRegistry() *registry {
	registryOnce.Do(func() {
		defaultReg = &registry{
			providerRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "provider",
				Name:      "requests_total",
				Help:      "Outbound provider HTTP requests by provider, method, route and status.",
			}, []string{"provider", "method", "route", "status"}),
			providerErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "provider",
				Name:      "errors_total",
				Help:      "Outbound provider HTTP requests that failed or returned an error status.",
			}, []string{"provider", "method", "route"}),
			providerLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "provider",
				Name:      "request_duration_seconds",
				Help:      "Outbound provider HTTP request latency including retries.",
				Buckets:   prometheus.DefBuckets,
			}, []string{"provider", "method", "route"}),
			monitorTicks: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "settlement_monitor",
				Name:      "ticks_total",
				Help:      "Completed reconciliation ticks.",
			}),
			monitorTickTime: prometheus.NewHistogram(prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "settlement_monitor",
				Name:      "tick_duration_seconds",
				Help:      "Wall-clock duration of one reconciliation tick.",
				Buckets:   prometheus.DefBuckets,
			}),
			monitorQueryErrs: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "settlement_monitor",
				Name:      "query_errors_total",
				Help:      "Provider status queries that errored and were skipped for the tick.",
			}, []string{"kind"}),
			monitorTransition: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "settlement_monitor",
				Name:      "transitions_total",
				Help:      "Persisted settlement status transitions by target status.",
			}, []string{"kind", "status"}),
			executions: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "engine",
				Name:      "executions_total",
				Help:      "Executed intents by kind and outcome.",
			}, []string{"kind", "outcome"}),
			httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Inbound API requests by method, route template and status.",
			}, []string{"method", "route", "status"}),
			httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Inbound API request latency.",
				Buckets:   prometheus.DefBuckets,
			}, []string{"method", "route"}),
		}
		prometheus.MustRegister(
			defaultReg.providerRequests,
			defaultReg.providerErrors,
			defaultReg.providerLatency,
			defaultReg.monitorTicks,
			defaultReg.monitorTickTime,
			defaultReg.monitorQueryErrs,
			defaultReg.monitorTransition,
			defaultReg.executions,
			defaultReg.httpRequests,
			defaultReg.httpLatency,
		)
	})
	return defaultReg
}

// ProviderCollector records outbound HTTP metrics for one provider. It satisfies the
// MetricsCollector interface of the shared HTTP client.
type ProviderCollector struct {
	provider string
	reg      *registry
}

// NewProviderCollector returns a collector labelled with provider
func NewProviderCollector(provider string) *ProviderCollector {
	return &ProviderCollector{provider: provider, reg: defaultRegistry()}
}

func (p *ProviderCollector) RecordRequestDuration(method, path string, _ int, duration time.Duration) {
	p.reg.providerLatency.WithLabelValues(p.provider, method, Route(path)).Observe(duration.Seconds())
}

func (p *ProviderCollector) RecordRequestCount(method, path string, statusCode int) {
	p.reg.providerRequests.WithLabelValues(p.provider, method, Route(path), strconv.Itoa(statusCode)).Inc()
}

func (p *ProviderCollector) RecordRequestError(method, path string) {
	p.reg.providerErrors.WithLabelValues(p.provider, method, Route(path)).Inc()
}

// Route reduces a request path to its first two segments so identifiers in the
// path do not explode label cardinality.
func Route(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) > 2 {
		segments = segments[:2]
	}
	return "/" + strings.Join(segments, "/")
}

// ObserveMonitorTick records a completed reconciliation tick
func ObserveMonitorTick(duration time.Duration) {
	reg := defaultRegistry()
	reg.monitorTicks.Inc()
	reg.monitorTickTime.Observe(duration.Seconds())
}

// IncMonitorQueryError counts a skipped provider status query
func IncMonitorQueryError(kind string) {
	defaultRegistry().monitorQueryErrs.WithLabelValues(kind).Inc()
}

// IncMonitorTransition counts a persisted status transition
func IncMonitorTransition(kind, status string) {
	defaultRegistry().monitorTransition.WithLabelValues(kind, status).Inc()
}

// IncExecution counts an executed intent
func IncExecution(kind, outcome string) {
	defaultRegistry().executions.WithLabelValues(kind, outcome).Inc()
}

// ObserveHTTPRequest records one inbound API request. route is the router's path
// template, not the raw path.
func ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	reg := defaultRegistry()
	reg.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	reg.httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}
