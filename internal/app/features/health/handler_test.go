package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/xenodash/internal/app/features/health"
	"github.com/dalemusser/xenodash/internal/app/store/analytics"
	"github.com/dalemusser/xenodash/internal/testutil"
	"go.uber.org/zap"
)

func TestServe_UpstreamReachable(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	client := analytics.New(api.URL(), api.Server.Client())
	handler := health.NewHandler(client, zap.NewNop())

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()

	handler.Serve(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json")
	}

	var resp map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("status: got %v, want %q", resp["status"], "ok")
	}
	if resp["upstream"] != "reachable" {
		t.Errorf("upstream: got %v, want %q", resp["upstream"], "reachable")
	}
	if _, ok := resp["error"]; ok {
		t.Error("error field should be omitted when healthy")
	}
}

func TestServe_UpstreamDown(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	client := analytics.New(api.URL(), api.Server.Client())
	api.Server.Close()
	handler := health.NewHandler(client, zap.NewNop())

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()

	handler.Serve(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}

	var resp map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["status"] != "error" {
		t.Errorf("status: got %v, want %q", resp["status"], "error")
	}
	if resp["upstream"] != "unreachable" {
		t.Errorf("upstream: got %v, want %q", resp["upstream"], "unreachable")
	}
	if resp["message"] != "Upstream unavailable" {
		t.Errorf("message: got %v", resp["message"])
	}
}
