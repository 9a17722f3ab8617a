package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/tablemap/tablemap/internal/repository"
	"github.com/tablemap/tablemap/internal/service"
)

func TestWriteServiceErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", fmt.Errorf("%w: party name is required", service.ErrValidation), http.StatusBadRequest},
		{"not found", fmt.Errorf("event 42: %w", repository.ErrNotFound), http.StatusNotFound},
		{"duplicate name", fmt.Errorf("table %q: %w", "Table A", repository.ErrDuplicateTableName), http.StatusConflict},
		{"storage failure", fmt.Errorf("query events: connection refused"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeServiceError(rec, tc.err)
			if rec.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, rec.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("response is not JSON: %v", err)
			}
			if body["error"] == "" {
				t.Fatal("expected an error message in the body")
			}
		})
	}
}

func TestWriteServiceErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	writeServiceError(rec, fmt.Errorf("pgx: connection to 10.0.0.5 failed"))
	if strings.Contains(rec.Body.String(), "10.0.0.5") {
		t.Fatal("internal error detail must not be echoed to the client")
	}
}

func TestDecodeJSONRejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Gala","bogus":1}`))
	var dst struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(req, &dst); err == nil {
		t.Fatal("expected unknown field to be rejected")
	}
}

func TestParseID(t *testing.T) {
	newReq := func(raw string) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", raw)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	got, err := parseID(newReq("42"), "id")
	if err != nil || got != 42 {
		t.Fatalf("expected 42, got %d (%v)", got, err)
	}
	if _, err := parseID(newReq("0"), "id"); err == nil {
		t.Fatal("expected rejection of non-positive id")
	}
	if _, err := parseID(newReq("abc"), "id"); err == nil {
		t.Fatal("expected rejection of non-numeric id")
	}
}

func TestCORSHandlesPreflight(t *testing.T) {
	called := false
	h := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/events", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", rec.Code)
	}
	if called {
		t.Fatal("preflight must not reach the next handler")
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("expected permissive origin header")
	}
}

func TestHealthCheck(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("expected status ok, got %q", body["status"])
	}
}
