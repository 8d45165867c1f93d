package health

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandler_NoCheckers(t *testing.T) {
	handler := NewHandler("1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var response Response
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if response.Status != StatusHealthy {
		t.Errorf("expected healthy status, got %s", response.Status)
	}
	if response.Version != "1.0.0" {
		t.Errorf("expected version 1.0.0, got %s", response.Version)
	}
}

func TestHandler_UnhealthyChecker(t *testing.T) {
	handler := NewHandler("dev")
	handler.RegisterChecker("postgres", NewSimpleChecker("postgres", func() error {
		return errors.New("connection refused")
	}))
	handler.RegisterChecker("ok", NewSimpleChecker("ok", func() error {
		return nil
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}

	var response Response
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if response.Status != StatusUnhealthy {
		t.Errorf("expected unhealthy status, got %s", response.Status)
	}
	if response.Checks["postgres"].Status != StatusUnhealthy {
		t.Errorf("expected postgres check unhealthy, got %+v", response.Checks["postgres"])
	}
	if response.Checks["postgres"].Message != "connection refused" {
		t.Errorf("expected check message, got %q", response.Checks["postgres"].Message)
	}
	if response.Checks["ok"].Status != StatusHealthy {
		t.Errorf("expected ok check healthy, got %+v", response.Checks["ok"])
	}
}

func TestLivenessHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	LivenessHandler(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Fatalf("expected body ok, got %q", rec.Body.String())
	}
}

func TestReadinessHandler(t *testing.T) {
	handler := NewHandler("dev")

	rec := httptest.NewRecorder()
	handler.ReadinessHandler(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 when no checkers, got %d", rec.Code)
	}

	handler.RegisterChecker("broken", NewSimpleChecker("broken", func() error {
		return errors.New("down")
	}))

	rec = httptest.NewRecorder()
	handler.ReadinessHandler(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 with failing checker, got %d", rec.Code)
	}
}

func TestSimpleChecker(t *testing.T) {
	ok := NewSimpleChecker("db", func() error { return nil })
	check := ok.Check()
	if check.Status != StatusHealthy || check.Name != "db" {
		t.Fatalf("unexpected check: %+v", check)
	}

	bad := NewSimpleChecker("db", func() error { return errors.New("boom") })
	check = bad.Check()
	if check.Status != StatusUnhealthy || check.Message != "boom" {
		t.Fatalf("unexpected check: %+v", check)
	}
}
