package metrics

import (
	"time"

	"chatrelay/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Collector owns the Prometheus registry and all relay metrics.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	// Relay request metrics
	relayMetrics *RelayMetrics
}

// NewCollector creates a new metrics collector with the specified
// configuration and Prometheus registry. If registry is nil, a new
// registry is created and standard Go runtime and process collectors
// are registered on it.
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	if cfg.Namespace == "" {
		cfg.Namespace = "chatrelay"
	}

	c := &Collector{
		config:   cfg,
		registry: registry,
	}

	c.relayMetrics = NewRelayMetrics(cfg, registry)

	return c
}

// Relay returns the relay request metrics.
func (c *Collector) Relay() *RelayMetrics {
	if c == nil {
		return nil
	}
	return c.relayMetrics
}

// RelayMetrics tracks metrics related to chat relay processing.
//
// Metrics:
//   - chatrelay_requests_total: Total chat requests by outcome
//   - chatrelay_request_duration_seconds: Request duration histogram
//   - chatrelay_streamed_bytes_total: Total bytes streamed to clients
type RelayMetrics struct {
	// Total request count by outcome
	requestsTotal *prometheus.CounterVec

	// Request duration histogram by outcome
	requestDuration *prometheus.HistogramVec

	// Total bytes relayed from the provider stream
	streamedBytes prometheus.Counter
}

// Request outcome label values.
const (
	OutcomeStream = "stream"
	OutcomeError  = "error"
)

// NewRelayMetrics creates and registers relay metrics with the provided
// registry.
func NewRelayMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *RelayMetrics {
	rm := &RelayMetrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "requests_total",
				Help:      "Total number of chat relay requests processed",
			},
			[]string{"model", "outcome"},
		),

		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "request_duration_seconds",
				Help:      "Duration of chat relay requests in seconds",
				Buckets:   []float64{0.1, 0.25, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0, 60.0},
			},
			[]string{"model"},
		),

		streamedBytes: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "streamed_bytes_total",
				Help:      "Total number of provider stream bytes relayed to clients",
			},
		),
	}

	registry.MustRegister(
		rm.requestsTotal,
		rm.requestDuration,
		rm.streamedBytes,
	)

	return rm
}

// RecordRequest records a completed relay request. Safe to call on a nil
// receiver.
func (rm *RelayMetrics) RecordRequest(model, outcome string, duration time.Duration) {
	if rm == nil {
		return
	}
	rm.requestsTotal.WithLabelValues(model, outcome).Inc()
	rm.requestDuration.WithLabelValues(model).Observe(duration.Seconds())
}

// RecordStreamedBytes records bytes relayed from the provider stream.
// Safe to call on a nil receiver.
func (rm *RelayMetrics) RecordStreamedBytes(n int64) {
	if rm == nil || n <= 0 {
		return
	}
	rm.streamedBytes.Add(float64(n))
}
