// Package errhttp maps domain sentinel errors to HTTP responses.
// Add a case to WriteError for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/shoppinglist/pkg/httpx"
	"github.com/ghuser/shoppinglist/pkg/logger"
	"github.com/ghuser/shoppinglist/pkg/telemetry"
	"github.com/ghuser/shoppinglist/services/shoppinglist/domain"
)

// Writer writes error responses and logs the ones the client cannot fix.
type Writer struct {
	log logger.Logger
}

// New returns a Writer logging 5xx responses to log.
func New(log logger.Logger) *Writer {
	return &Writer{log: log}
}

// WriteError maps err to a status code and writes the uniform error body.
// Uses errors.Is so wrapped sentinel errors are matched correctly.
// Unrecognized errors become 500 without leaking their text.
func (e *Writer) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	if status(err) >= http.StatusInternalServerError {
		e.log.ErrorContext(r.Context(), "request failed",
			"method", r.Method, "path", r.URL.Path, "error", err)
		telemetry.CaptureRequestError(r, err)
		httpx.InternalError(w, r)
		return
	}

	var fe *domain.FieldError
	switch {
	case errors.Is(err, domain.ErrReminderInPast):
		httpx.ValidationError(w, r, "Cannot schedule reminder in the past", nil)
	case errors.As(err, &fe):
		httpx.ValidationError(w, r, "Validation failed", map[string]string{fe.Field: fe.Reason})
	case errors.Is(err, domain.ErrValidation):
		httpx.ValidationError(w, r, "Validation failed", nil)
	case errors.Is(err, domain.ErrListNotFound):
		httpx.NotFound(w, r, "Shopping list not found")
	case errors.Is(err, domain.ErrItemNotFound):
		httpx.NotFound(w, r, "Item not found")
	case errors.Is(err, domain.ErrReminderNotFound):
		httpx.NotFound(w, r, "Reminder not found")
	}
}

// status classifies err. Only 5xx errors are logged and reported.
func status(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrListNotFound),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrReminderNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
