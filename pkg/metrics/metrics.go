package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds the Prometheus collectors of the command parser.
//
//   - taskparse_commands_processed_total{intent}
//   - taskparse_command_duration_seconds{intent}
//   - taskparse_command_confidence
//   - taskparse_commands_rejected_total{reason}
//   - taskparse_rate_limited_total
type Metrics struct {
	CommandsProcessed *prometheus.CounterVec
	CommandDuration   *prometheus.HistogramVec
	Confidence        prometheus.Histogram
	CommandsRejected  *prometheus.CounterVec
	RateLimited       prometheus.Counter
}

// NewMetrics registers the collectors with the default registry once and
// returns the shared instance on every call.
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			CommandsProcessed: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "taskparse_commands_processed_total",
					Help: "Total number of commands parsed, by detected intent",
				},
				[]string{"intent"},
			),
			CommandDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "taskparse_command_duration_seconds",
					Help:    "Time spent parsing one command",
					Buckets: []float64{.0001, .0005, .001, .0025, .005, .01, .025, .05, .1},
				},
				[]string{"intent"},
			),
			Confidence: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "taskparse_command_confidence",
					Help:    "Confidence score of parsed commands",
					Buckets: prometheus.LinearBuckets(0.1, 0.1, 10),
				},
			),
			CommandsRejected: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "taskparse_commands_rejected_total",
					Help: "Total number of commands rejected before or during parsing",
				},
				[]string{"reason"},
			),
			RateLimited: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "taskparse_rate_limited_total",
					Help: "Total number of requests refused by the rate limiter",
				},
			),
		}
	})
	return globalMetrics
}

// ObserveCommand records one parsed command. Safe on a nil receiver.
func (m *Metrics) ObserveCommand(intent string, confidence float64, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.CommandsProcessed.WithLabelValues(intent).Inc()
	m.CommandDuration.WithLabelValues(intent).Observe(elapsed.Seconds())
	m.Confidence.Observe(confidence)
}

// ObserveRejected records a rejected command. Safe on a nil receiver.
func (m *Metrics) ObserveRejected(reason string) {
	if m == nil {
		return
	}
	m.CommandsRejected.WithLabelValues(reason).Inc()
}

// ObserveRateLimited records a throttled request. Safe on a nil receiver.
func (m *Metrics) ObserveRateLimited() {
	if m == nil {
		return
	}
	m.RateLimited.Inc()
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
