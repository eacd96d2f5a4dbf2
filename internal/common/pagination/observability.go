package pagination

import (
	"log/slog"
	"time"
)

// LogRequest logs an offset-paginated list request with structured fields.
func LogRequest(logger *slog.Logger, resource string, params Params) {
	logger.Info("paginated list request",
		"resource", resource,
		"page", params.Page,
		"limit", params.Limit,
		"search", params.Search,
		"sort", string(params.Sort))
}

// LogResponse logs a list response with duration and item count.
func LogResponse(logger *slog.Logger, resource string, returnedCount int, duration time.Duration, statusCode int) {
	logger.Info("paginated list response",
		"resource", resource,
		"returned_count", returnedCount,
		"duration_ms", duration.Milliseconds(),
		"status", statusCode)
}
