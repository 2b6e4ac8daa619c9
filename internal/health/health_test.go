package health

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandlerHealthy(t *testing.T) {
	handler := NewHandler("v1.0.0")
	handler.RegisterChecker("storage", NewSimpleChecker("storage", func() error {
		return nil
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var response Response
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Status != StatusHealthy {
		t.Errorf("expected healthy, got %s", response.Status)
	}
	if response.Version != "v1.0.0" {
		t.Errorf("expected version v1.0.0, got %s", response.Version)
	}
	if len(response.Checks) != 1 {
		t.Errorf("expected 1 check, got %d", len(response.Checks))
	}
}

func TestHandlerUnhealthy(t *testing.T) {
	handler := NewHandler("v1.0.0")
	handler.RegisterChecker("storage", NewSimpleChecker("storage", func() error {
		return errors.New("connection refused")
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", w.Code)
	}

	var response Response
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Status != StatusUnhealthy {
		t.Errorf("expected unhealthy, got %s", response.Status)
	}
	if response.Checks["storage"].Message == "" {
		t.Error("expected check message to carry the error")
	}
}

func TestHandlerNoCheckers(t *testing.T) {
	handler := NewHandler("")

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 with no checkers, got %d", w.Code)
	}
}

func TestReadinessHandler(t *testing.T) {
	handler := NewHandler("v1.0.0")

	w := httptest.NewRecorder()
	handler.ReadinessHandler(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected ready, got %d", w.Code)
	}

	handler.RegisterChecker("storage", NewSimpleChecker("storage", func() error {
		return errors.New("down")
	}))

	w = httptest.NewRecorder()
	handler.ReadinessHandler(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected not ready, got %d", w.Code)
	}
}

func TestLivenessHandler(t *testing.T) {
	w := httptest.NewRecorder()
	LivenessHandler(w, httptest.NewRequest(http.MethodGet, "/livez", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
