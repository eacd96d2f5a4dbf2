// Package respond provides utilities for sending HTTP responses in JSON
// format. Error rendering goes through the application error taxonomy so
// every handler maps failures to status codes the same way.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"pandamarket/internal/apperr"
)

// ErrorBody is the JSON envelope of every error response. The status
// code is repeated in the body so clients reading only the payload see
// the same classification as the HTTP status line.
type ErrorBody struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already sent, can only log.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Problem renders an error response. The status code and user-facing
// message come from the error's classification; unclassified errors
// collapse to 500 with a generic message, and their cause is logged
// (sanitized) instead of echoed to the client.
func Problem(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	code := apperr.HTTPStatus(apperr.KindOf(err))
	msg := apperr.UserMessage(err)

	if apperr.KindOf(err) == apperr.Unknown {
		slog.Default().Error("internal server error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("code", code),
			slog.String("error", SanitizeError(err)))
	}

	JSON(w, code, ErrorBody{Message: msg, StatusCode: code})
}
