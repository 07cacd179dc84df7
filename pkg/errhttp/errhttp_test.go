package errhttp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ghuser/shoppinglist/pkg/httpx"
	"github.com/ghuser/shoppinglist/pkg/logger"
	"github.com/ghuser/shoppinglist/services/shoppinglist/domain"
)

func write(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/shopping-lists/x", http.NoBody)
	New(logger.Nop()).WriteError(w, r, err)

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	return w, body
}

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{"list not found", domain.ErrListNotFound, http.StatusNotFound, httpx.CodeNotFound, "Shopping list not found"},
		{"item not found", domain.ErrItemNotFound, http.StatusNotFound, httpx.CodeNotFound, "Item not found"},
		{"reminder not found", domain.ErrReminderNotFound, http.StatusNotFound, httpx.CodeNotFound, "Reminder not found"},
		{"wrapped list not found", fmt.Errorf("add item: %w", domain.ErrListNotFound), http.StatusNotFound, httpx.CodeNotFound, "Shopping list not found"},
		{"reminder in past", domain.ErrReminderInPast, http.StatusBadRequest, httpx.CodeValidation, "Cannot schedule reminder in the past"},
		{"field error", domain.InvalidField("name", "This field is required"), http.StatusBadRequest, httpx.CodeValidation, "Validation failed"},
		{"invalid id", domain.InvalidID("id"), http.StatusBadRequest, httpx.CodeValidation, "Validation failed"},
		{"bare validation", domain.ErrValidation, http.StatusBadRequest, httpx.CodeValidation, "Validation failed"},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError, httpx.CodeInternal, "An internal server error occurred"},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError, httpx.CodeInternal, "An internal server error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := write(t, tt.err)
			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if status(tt.err) != tt.wantStatus {
				t.Errorf("status() = %d, want %d", status(tt.err), tt.wantStatus)
			}
			if body["code"] != tt.wantCode || body["message"] != tt.wantMessage {
				t.Errorf("unexpected body: %v", body)
			}
			if body["path"] != "/api/v1/shopping-lists/x" {
				t.Errorf("path: got %v", body["path"])
			}
		})
	}
}

func TestWriteError_FieldDetails(t *testing.T) {
	_, body := write(t, domain.InvalidID("listId"))
	details, ok := body["details"].(map[string]any)
	if !ok || details["listId"] != "Must be a valid UUID" {
		t.Fatalf("unexpected details: %v", body["details"])
	}
}

func TestWriteError_InternalIsLoggedNotLeaked(t *testing.T) {
	var buf bytes.Buffer
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/api/v1/reminders/x", http.NoBody)
	New(logger.NewWithWriter(&buf, "info")).WriteError(w, r, errors.New("pq: connection reset"))

	if strings.Contains(w.Body.String(), "connection reset") {
		t.Errorf("internal error text leaked: %s", w.Body.String())
	}
	if !strings.Contains(buf.String(), "connection reset") {
		t.Errorf("expected internal error to be logged, got %q", buf.String())
	}
}

func TestWriteError_ClientErrorsNotLogged(t *testing.T) {
	for _, err := range []error{
		domain.ErrItemNotFound,
		domain.ErrReminderInPast,
		domain.InvalidField("name", "This field is required"),
		domain.InvalidID("listId"),
		fmt.Errorf("update list: %w", domain.ErrListNotFound),
	} {
		t.Run(err.Error(), func(t *testing.T) {
			var buf bytes.Buffer
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/x", http.NoBody)
			New(logger.NewWithWriter(&buf, "info")).WriteError(w, r, err)

			if w.Code >= http.StatusInternalServerError {
				t.Fatalf("client error mapped to %d", w.Code)
			}
			if buf.Len() != 0 {
				t.Errorf("expected no log output for %d, got %q", w.Code, buf.String())
			}
		})
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w, _ := write(t, domain.ErrItemNotFound)
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("unexpected Content-Type %q", ct)
	}
}
