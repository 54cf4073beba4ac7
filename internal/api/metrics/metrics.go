// Package metrics defines and registers all custom Prometheus metrics for
// the DOC-ASFA dashboard API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry via promauto at
// package load; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "docasfa"

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (all failure modes are deliberately
//     indistinguishable, matching the generic credentials error)
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ButtonCacheTotal counts button-list cache lookups.
// Label:
//   - result: "hit" (served from Redis) or "miss" (fell through to Mongo)
var ButtonCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "button_cache_total",
		Help:      "Total number of button cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ButtonMutationsTotal counts administrative button mutations.
// Label:
//   - action: "create", "update", or "delete"
var ButtonMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "button_mutations_total",
		Help:      "Total number of launcher button mutations, by action.",
	},
	[]string{"action"},
)

// DocumentUploadsTotal counts PDF upload attempts.
// Label:
//   - result: "success", "rejected" (validation), or "error" (backend)
var DocumentUploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "document_uploads_total",
		Help:      "Total number of PDF upload attempts, by result.",
	},
	[]string{"result"},
)

// DocumentUploadBytes observes the size of accepted PDF uploads.
var DocumentUploadBytes = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "document_upload_bytes",
		Help:      "Size distribution of accepted PDF uploads.",
		Buckets:   prometheus.ExponentialBuckets(16*1024, 4, 6), // 16KiB .. 16MiB
	},
)
