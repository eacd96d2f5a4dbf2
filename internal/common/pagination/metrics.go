package pagination

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts pagination requests.
	// Labels: resource, strategy (offset/cursor), status.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagination_requests_total",
			Help: "Total number of pagination requests",
		},
		[]string{"resource", "strategy", "status"},
	)

	// DurationSeconds tracks list request duration per resource.
	DurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pagination_duration_seconds",
			Help:    "List request duration distribution",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0},
		},
		[]string{"resource"},
	)

	// TotalCount tracks the last observed total per resource.
	// Updated on each COUNT query.
	TotalCount = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pagination_total_count",
			Help: "Current total number of items per resource",
		},
		[]string{"resource"},
	)

	// ErrorsTotal counts pagination errors.
	// Labels: resource, type (validation, database).
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagination_errors_total",
			Help: "Total number of pagination errors",
		},
		[]string{"resource", "type"},
	)
)

// RecordRequest records a pagination request outcome.
func RecordRequest(resource, strategy string, statusCode int) {
	RequestsTotal.WithLabelValues(resource, strategy, fmt.Sprintf("%d", statusCode)).Inc()
}

// RecordDuration records list duration in seconds.
func RecordDuration(resource string, seconds float64) {
	DurationSeconds.WithLabelValues(resource).Observe(seconds)
}

// UpdateTotalCount updates the per-resource total gauge.
func UpdateTotalCount(resource string, count int64) {
	TotalCount.WithLabelValues(resource).Set(float64(count))
}

// RecordError records a pagination error.
// errorType should be "validation" or "database".
func RecordError(resource, errorType string) {
	ErrorsTotal.WithLabelValues(resource, errorType).Inc()
}
