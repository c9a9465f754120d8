package scoringmetrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const namespace = "golfscore"

// PrometheusMetrics keeps counters in a private registry so a one-shot run
// can push them to a Pushgateway when it finishes.
type PrometheusMetrics struct {
	registry *prometheus.Registry

	attempts         *prometheus.CounterVec
	successes        *prometheus.CounterVec
	failures         *prometheus.CounterVec
	durations        *prometheus.HistogramVec
	strokesAllocated *prometheus.CounterVec
	eventsScored     *prometheus.CounterVec
	playersScored    prometheus.Gauge
	holesScored      prometheus.Gauge
	dbQueryDuration  prometheus.Histogram
}

// NewPrometheusMetrics registers all collectors on a fresh registry.
func NewPrometheusMetrics() *PrometheusMetrics {
	m := &PrometheusMetrics{
		registry: prometheus.NewRegistry(),
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_attempts_total",
			Help:      "Scoring operations started.",
		}, []string{"operation"}),
		successes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_success_total",
			Help:      "Scoring operations that produced a result.",
		}, []string{"operation"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_failure_total",
			Help:      "Scoring operations that ended in an error.",
		}, []string{"operation"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Wall time per scoring operation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		strokesAllocated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "strokes_allocated_total",
			Help:      "Handicap strokes handed out per player.",
		}, []string{"player"}),
		eventsScored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_scored_total",
			Help:      "Events scored by mode.",
		}, []string{"mode"}),
		playersScored: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_event_players",
			Help:      "Players in the most recently scored event.",
		}),
		holesScored: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_event_holes",
			Help:      "Holes per player in the most recently scored event.",
		}),
		dbQueryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "db_query_duration_seconds",
			Help:      "Time spent loading stored matches.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	m.registry.MustRegister(
		m.attempts,
		m.successes,
		m.failures,
		m.durations,
		m.strokesAllocated,
		m.eventsScored,
		m.playersScored,
		m.holesScored,
		m.dbQueryDuration,
	)
	return m
}

// Registry exposes the underlying registry.
func (m *PrometheusMetrics) Registry() *prometheus.Registry { return m.registry }

func (m *PrometheusMetrics) RecordOperationAttempt(_ context.Context, operation string) {
	m.attempts.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationSuccess(_ context.Context, operation string) {
	m.successes.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationFailure(_ context.Context, operation string) {
	m.failures.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationDuration(_ context.Context, operation string, duration time.Duration) {
	m.durations.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordStrokesAllocated(_ context.Context, player string, strokes int) {
	m.strokesAllocated.WithLabelValues(player).Add(float64(strokes))
}

func (m *PrometheusMetrics) RecordEventScored(_ context.Context, mode string, players int, holes int) {
	m.eventsScored.WithLabelValues(mode).Inc()
	m.playersScored.Set(float64(players))
	m.holesScored.Set(float64(holes))
}

func (m *PrometheusMetrics) RecordDBQueryDuration(_ context.Context, duration time.Duration) {
	m.dbQueryDuration.Observe(duration.Seconds())
}

// Push sends the registry to a Pushgateway under the given job name.
func (m *PrometheusMetrics) Push(ctx context.Context, url, job string) error {
	if err := push.New(url, job).Gatherer(m.registry).PushContext(ctx); err != nil {
		return fmt.Errorf("failed to push metrics to %s: %w", url, err)
	}
	return nil
}

var _ ScoringMetrics = (*PrometheusMetrics)(nil)
