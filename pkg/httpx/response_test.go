package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/shoppinglist/pkg/httpx"
)

func TestJSON_setsHeaders(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("unexpected Content-Type: %q", ct)
	}
	if xct := w.Header().Get("X-Content-Type-Options"); xct != "nosniff" {
		t.Errorf("expected nosniff, got %q", xct)
	}
}

func TestJSON_encodesBody(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSON(w, http.StatusCreated, map[string]string{"id": "abc"})

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["id"] != "abc" {
		t.Errorf("unexpected body: %v", body)
	}
	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestWriteError_UniformShape(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/shopping-lists/abc", http.NoBody)
	httpx.ValidationError(w, r, "Validation failed", map[string]string{"id": "Must be a valid UUID"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["code"] != httpx.CodeValidation {
		t.Errorf("code: got %v", body["code"])
	}
	if body["message"] != "Validation failed" {
		t.Errorf("message: got %v", body["message"])
	}
	if body["path"] != "/api/v1/shopping-lists/abc" {
		t.Errorf("path: got %v", body["path"])
	}
	if _, ok := body["timestamp"]; !ok {
		t.Error("missing timestamp")
	}
	details, ok := body["details"].(map[string]any)
	if !ok || details["id"] != "Must be a valid UUID" {
		t.Errorf("details: got %v", body["details"])
	}
}

func TestWriteError_OmitsEmptyDetails(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.NotFound(w, httptest.NewRequest(http.MethodGet, "/x", http.NoBody), "Shopping list not found")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if _, ok := body["details"]; ok {
		t.Errorf("details should be omitted, got %v", body["details"])
	}
	if body["code"] != httpx.CodeNotFound {
		t.Errorf("code: got %v", body["code"])
	}
}

func TestInternalError_HidesCause(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.InternalError(w, httptest.NewRequest(http.MethodGet, "/x", http.NoBody))

	var body map[string]any
	_ = json.NewDecoder(w.Body).Decode(&body)
	if w.Code != http.StatusInternalServerError || body["code"] != httpx.CodeInternal {
		t.Fatalf("unexpected response %d %v", w.Code, body)
	}
	if body["message"] != "An internal server error occurred" {
		t.Errorf("message: got %v", body["message"])
	}
}
