// Package metrics provides Prometheus metrics for the call history service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "callhistory"

var (
	// SyncRunsTotal tracks sync runs by outcome
	SyncRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "runs_total",
			Help:      "Total number of call history sync runs by status",
		},
		[]string{"status"},
	)

	// SyncDuration tracks sync run duration in seconds
	SyncDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "duration_seconds",
			Help:      "Duration of call history sync runs in seconds",
			Buckets:   []float64{1, 5, 10, 30, 60, 120, 300, 600, 1200},
		},
	)

	// SyncCallsTotal tracks calls written by the sync, by outcome
	SyncCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "calls_total",
			Help:      "Total number of synced calls by outcome (created, updated, skipped)",
		},
		[]string{"outcome"},
	)

	// BackfillTotal tracks fields filled from call detail lookups
	BackfillTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "backfill_total",
			Help:      "Total number of transcripts and agent names filled from call details",
		},
		[]string{"field"},
	)

	// DetailErrorsTotal tracks failed call detail lookups
	DetailErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "detail_errors_total",
			Help:      "Total number of call detail lookups that failed and were skipped",
		},
	)

	// ReasonsTranslatedTotal tracks disconnection reasons rewritten to Spanish
	ReasonsTranslatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "reasons_translated_total",
			Help:      "Total number of call rows whose disconnection reason was translated",
		},
	)

	// TrashOperationsTotal tracks archive operations
	TrashOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "trash",
			Name:      "operations_total",
			Help:      "Total number of trash operations (delete, restore, purge)",
		},
		[]string{"operation"},
	)

	// PreviewsTotal tracks rendered upload previews by file kind and result
	PreviewsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "preview",
			Name:      "renders_total",
			Help:      "Total number of upload previews rendered by kind and result",
		},
		[]string{"kind", "result"},
	)

	// HTTPRequestsTotal tracks inbound HTTP requests
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of inbound HTTP requests",
		},
		[]string{"method", "status_code"},
	)

	// HTTPRequestDuration tracks inbound HTTP request duration
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of inbound HTTP requests in seconds",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method"},
	)
)

// RecordSyncRun records a finished sync run
func RecordSyncRun(status string, durationSeconds float64) {
	SyncRunsTotal.WithLabelValues(status).Inc()
	SyncDuration.Observe(durationSeconds)
}

// RecordSyncCalls records per-outcome call counts of one sync run
func RecordSyncCalls(created, updated, skipped int) {
	SyncCallsTotal.WithLabelValues("created").Add(float64(created))
	SyncCallsTotal.WithLabelValues("updated").Add(float64(updated))
	SyncCallsTotal.WithLabelValues("skipped").Add(float64(skipped))
}

// RecordBackfill records a transcript or agent name filled from call details
func RecordBackfill(field string) {
	BackfillTotal.WithLabelValues(field).Inc()
}

// RecordDetailError records a skipped call detail lookup
func RecordDetailError() {
	DetailErrorsTotal.Inc()
}

// RecordReasonsTranslated records translated reason rows
func RecordReasonsTranslated(n int) {
	ReasonsTranslatedTotal.Add(float64(n))
}

// RecordTrashOperation records an archive operation affecting n snapshots
func RecordTrashOperation(operation string, n int) {
	TrashOperationsTotal.WithLabelValues(operation).Add(float64(n))
}

// RecordPreview records a rendered preview
func RecordPreview(kind, result string) {
	PreviewsTotal.WithLabelValues(kind, result).Inc()
}

// RecordHTTPRequest records an inbound HTTP request
func RecordHTTPRequest(method, statusCode string, durationSeconds float64) {
	HTTPRequestsTotal.WithLabelValues(method, statusCode).Inc()
	HTTPRequestDuration.WithLabelValues(method).Observe(durationSeconds)
}
