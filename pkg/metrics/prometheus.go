// Package metrics provides Prometheus metrics for the gridiron aggregation engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the aggregation engine.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	registry         prometheus.Registerer

	// Ingestion Metrics - What enters a run
	eventsIngested  prometheus.Counter
	eventsDuplicate prometheus.Counter
	eventsSkipped   *prometheus.CounterVec

	// Data Quality Metrics
	unrecognizedActions prometheus.Counter
	rosterAmbiguities   prometheus.Counter

	// Aggregation Metrics - What a run produces
	rowsEmitted prometheus.Counter
	groupCount  prometheus.Gauge

	// Engine Metrics - Processing performance
	workerCount   prometheus.Gauge
	reduceLatency prometheus.Histogram
	runDuration   prometheus.Histogram

	// Row Store Metrics
	rowStoreUpdateLatency prometheus.Histogram
	rowStoreQueryLatency  prometheus.Histogram

	// Error Metrics
	errorRateByComponent *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "gridiron",
		subsystem:        "aggregate",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	// Ingestion Metrics
	m.eventsIngested = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_ingested_total",
		Help:      "Total number of play events accepted into a run",
	})

	m.eventsDuplicate = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_duplicate_total",
		Help:      "Total number of duplicate play events rejected by ID",
	})

	m.eventsSkipped = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "events_skipped_total",
			Help:      "Total number of play events skipped, by reason",
		},
		[]string{"reason"},
	)

	// Data Quality Metrics
	m.unrecognizedActions = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "unrecognized_actions_total",
		Help:      "Total number of events whose action name is outside the taxonomy",
	})

	m.rosterAmbiguities = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_ambiguities_total",
		Help:      "Total number of keys with more than one active roster assignment",
	})

	// Aggregation Metrics
	m.rowsEmitted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_emitted_total",
		Help:      "Total number of summary rows emitted across runs",
	})

	m.groupCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "group_count",
		Help:      "Number of distinct grouping keys in the latest run",
	})

	// Engine Metrics
	m.workerCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "worker_count",
		Help:      "Number of reduce workers used by the latest run",
	})

	m.reduceLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reduce_latency_milliseconds",
		Help:      "Histogram of per-group reduce latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.runDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "run_duration_milliseconds",
		Help:      "Histogram of end-to-end run duration in milliseconds",
		Buckets:   []float64{10, 50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000},
	})

	// Row Store Metrics
	m.rowStoreUpdateLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "row_store_update_latency_milliseconds",
		Help:      "Row store update operation latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.rowStoreQueryLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "row_store_query_latency_milliseconds",
		Help:      "Row store query operation latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	// Error Metrics
	m.errorRateByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_component_total",
			Help:      "Total number of errors by component",
		},
		[]string{"component", "error_type"},
	)
}

// RecordEventIngested increments the ingested events counter.
func RecordEventIngested() {
	globalManager.eventsIngested.Inc()
}

// RecordDuplicateEvent increments the duplicate events counter.
func RecordDuplicateEvent() {
	globalManager.eventsDuplicate.Inc()
}

// RecordEventSkipped increments the skipped events counter for a reason.
func RecordEventSkipped(reason string) {
	globalManager.eventsSkipped.WithLabelValues(reason).Inc()
}

// RecordUnrecognizedAction increments the unrecognized actions counter.
func RecordUnrecognizedAction() {
	globalManager.unrecognizedActions.Inc()
}

// RecordRosterAmbiguity increments the roster ambiguity counter.
func RecordRosterAmbiguity() {
	globalManager.rosterAmbiguities.Inc()
}

// RecordRowsEmitted adds to the emitted rows counter.
func RecordRowsEmitted(count int) {
	globalManager.rowsEmitted.Add(float64(count))
}

// UpdateGroupCount sets the distinct group count for the latest run.
func UpdateGroupCount(count int) {
	globalManager.groupCount.Set(float64(count))
}

// UpdateWorkerCount sets the reduce worker count for the latest run.
func UpdateWorkerCount(count int) {
	globalManager.workerCount.Set(float64(count))
}

// RecordReduceLatency records per-group reduce latency in milliseconds.
func RecordReduceLatency(latencyMs float64) {
	globalManager.reduceLatency.Observe(latencyMs)
}

// RecordRunDuration records end-to-end run duration in milliseconds.
func RecordRunDuration(durationMs float64) {
	globalManager.runDuration.Observe(durationMs)
}

// RecordRowStoreUpdateLatency records row store update latency.
func RecordRowStoreUpdateLatency(latencyMs float64) {
	globalManager.rowStoreUpdateLatency.Observe(latencyMs)
}

// RecordRowStoreQueryLatency records row store query latency.
func RecordRowStoreQueryLatency(latencyMs float64) {
	globalManager.rowStoreQueryLatency.Observe(latencyMs)
}

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
