// Package metrics provides Prometheus metrics for the roster service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager holds all Prometheus instruments for the roster core.
type Manager struct {
	namespace string
	subsystem string
	buckets   []float64
	registry  prometheus.Registerer

	// Mutation counters
	createsTotal     prometheus.Counter
	updatesTotal     prometheus.Counter
	deletesTotal     prometheus.Counter
	validationErrors prometheus.Counter

	// Collection state
	rosterSize prometheus.Gauge

	// Read path
	queriesTotal  prometheus.Counter
	queryDuration prometheus.Histogram
	exportsTotal  prometheus.Counter

	// Persistence glue
	snapshotSaveDuration prometheus.Histogram
	snapshotErrors       prometheus.Counter
	snapshotLoadsTotal   prometheus.Counter
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "talentpulse",
		subsystem: "roster",
		buckets:   prometheus.DefBuckets,
		registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}

	factory := promauto.With(m.registry)

	m.createsTotal = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "creates_total",
		Help: "Number of records created.",
	})
	m.updatesTotal = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "updates_total",
		Help: "Number of records updated.",
	})
	m.deletesTotal = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "deletes_total",
		Help: "Number of records deleted.",
	})
	m.validationErrors = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "validation_errors_total",
		Help: "Number of create calls rejected for missing required fields.",
	})
	m.rosterSize = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "records",
		Help: "Current number of records in the roster.",
	})
	m.queriesTotal = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "queries_total",
		Help: "Number of query evaluations.",
	})
	m.queryDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name:    "query_duration_seconds",
		Help:    "Query engine evaluation time.",
		Buckets: m.buckets,
	})
	m.exportsTotal = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "exports_total",
		Help: "Number of CSV exports rendered.",
	})
	m.snapshotSaveDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name:    "snapshot_save_duration_seconds",
		Help:    "Time spent persisting the full roster snapshot.",
		Buckets: m.buckets,
	})
	m.snapshotErrors = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "snapshot_errors_total",
		Help: "Persistence failures (load or save).",
	})
	m.snapshotLoadsTotal = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "snapshot_loads_total",
		Help: "Number of snapshot loads at startup.",
	})

	return m
}

// Registry returns the registry backing the global manager, for
// embedding into a caller's metrics endpoint.
func Registry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers over the global manager.

// RecordCreate counts a successful create.
func RecordCreate() { globalManager.createsTotal.Inc() }

// RecordUpdate counts a successful update.
func RecordUpdate() { globalManager.updatesTotal.Inc() }

// RecordDelete counts a successful delete.
func RecordDelete() { globalManager.deletesTotal.Inc() }

// RecordValidationError counts a rejected create.
func RecordValidationError() { globalManager.validationErrors.Inc() }

// UpdateRosterSize sets the current collection size.
func UpdateRosterSize(n int) { globalManager.rosterSize.Set(float64(n)) }

// RecordQuery counts a query and observes its duration.
func RecordQuery(d time.Duration) {
	globalManager.queriesTotal.Inc()
	globalManager.queryDuration.Observe(d.Seconds())
}

// RecordExport counts a CSV export.
func RecordExport() { globalManager.exportsTotal.Inc() }

// ObserveSnapshotSave observes a snapshot save duration.
func ObserveSnapshotSave(d time.Duration) {
	globalManager.snapshotSaveDuration.Observe(d.Seconds())
}

// RecordSnapshotError counts a persistence failure.
func RecordSnapshotError() { globalManager.snapshotErrors.Inc() }

// RecordSnapshotLoad counts a startup snapshot load.
func RecordSnapshotLoad() { globalManager.snapshotLoadsTotal.Inc() }
