// Package metrics defines and registers all custom Prometheus metrics for
// the RuralRoots directory API. It is the single source of truth for
// metric names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "directory"

// ── Store transition metrics ──────────────────────────────────────────────────

// OperationsTotal counts domain store transitions.
// Labels:
//   - op: the transition name (e.g. "login", "add_farm", "apply_to_job")
//   - outcome: "ok" or "error"
var OperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "operations_total",
		Help:      "Total number of domain store transitions, by operation and outcome.",
	},
	[]string{"op", "outcome"},
)

// ReviewsAddedTotal counts reviews appended to farms.
var ReviewsAddedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_added_total",
		Help:      "Total number of reviews appended to farm profiles.",
	},
)

// ApplicationsTotal counts job applications.
// Label:
//   - result: "applied" (new) or "duplicate" (idempotent no-op)
var ApplicationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_total",
		Help:      "Total number of job applications, labelled by result (applied/duplicate).",
	},
	[]string{"result"},
)

// ── Persistence metrics ───────────────────────────────────────────────────────

// SnapshotSaveDuration measures how long one write-through snapshot save
// takes against the backing store.
var SnapshotSaveDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "snapshot_save_duration_seconds",
		Help:      "Duration of write-through snapshot persistence.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)

// SnapshotSaveFailures counts snapshot writes that failed. A failed write
// degrades the session to memory-only operation; it never aborts the
// transition.
var SnapshotSaveFailures = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshot_save_failures_total",
		Help:      "Total number of failed write-through snapshot saves.",
	},
)
