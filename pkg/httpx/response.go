package httpx

import (
	"encoding/json"
	"net/http"
	"time"
)

// Error codes carried in the "code" field of every error response.
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeInternal   = "INTERNAL_ERROR"
)

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code      string    `json:"code"              example:"NOT_FOUND"`
	Message   string    `json:"message"           example:"Shopping list not found"`
	Details   any       `json:"details,omitempty" swaggertype:"object"`
	Timestamp time.Time `json:"timestamp"         example:"2024-01-15T10:30:00Z"`
	Path      string    `json:"path"              example:"/api/v1/shopping-lists/550e8400-e29b-41d4-a716-446655440000"`
} // @name ErrorResponse

// MessageResponse is returned by endpoints that have no entity to echo back.
type MessageResponse struct {
	Message string `json:"message" example:"Shopping list deleted successfully"`
} // @name MessageResponse

// JSON writes v as JSON with the given status code. Content-Type and
// X-Content-Type-Options headers are set automatically. Encoding errors are
// silently discarded: use this for handler responses, not for streaming.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes the uniform error body. details is omitted when nil.
func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string, details any) {
	JSON(w, status, ErrorResponse{
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
		Path:      r.URL.Path,
	})
}

// ValidationError writes a 400 VALIDATION_ERROR response.
func ValidationError(w http.ResponseWriter, r *http.Request, message string, details any) {
	WriteError(w, r, http.StatusBadRequest, CodeValidation, message, details)
}

// NotFound writes a 404 NOT_FOUND response.
func NotFound(w http.ResponseWriter, r *http.Request, message string) {
	WriteError(w, r, http.StatusNotFound, CodeNotFound, message, nil)
}

// InternalError writes a 500 INTERNAL_ERROR response without leaking the cause.
func InternalError(w http.ResponseWriter, r *http.Request) {
	WriteError(w, r, http.StatusInternalServerError, CodeInternal, "An internal server error occurred", nil)
}
