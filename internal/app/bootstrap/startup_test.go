package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	errorsfeature "github.com/dalemusser/xenodash/internal/app/features/errors"
	"github.com/dalemusser/xenodash/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func validConfig() AppConfig {
	return AppConfig{
		APIBase:              "http://localhost:5000",
		LegacyAPIBase:        "https://legacy.example.com",
		LegacyOverview:       true,
		SessionKey:           "test-session-key-for-testing-only",
		SessionName:          "xenodash-session",
		SessionMaxAge:        time.Hour,
		TimeoutPing:          time.Second,
		TimeoutAuth:          2 * time.Second,
		TimeoutFetch:         3 * time.Second,
		TimeoutExport:        4 * time.Second,
		StateIdleTTL:         time.Hour,
		StateCleanupInterval: time.Minute,
		AuditLogAuth:         "log",
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr string
	}{
		{"valid", func(*AppConfig) {}, ""},
		{"relative api base", func(c *AppConfig) { c.APIBase = "/api" }, "api_base"},
		{"schemeless api base", func(c *AppConfig) { c.APIBase = "localhost:5000" }, "api_base"},
		{"ftp api base", func(c *AppConfig) { c.APIBase = "ftp://example.com" }, "api_base"},
		{"bad legacy base", func(c *AppConfig) { c.LegacyAPIBase = "nope" }, "legacy_api_base"},
		{"legacy base ignored when overview off", func(c *AppConfig) {
			c.LegacyOverview = false
			c.LegacyAPIBase = ""
		}, ""},
		{"empty session key", func(c *AppConfig) { c.SessionKey = "" }, "session_key"},
		{"short csrf key", func(c *AppConfig) { c.CSRFKey = "short" }, "csrf_key"},
		{"32-byte csrf key", func(c *AppConfig) { c.CSRFKey = strings.Repeat("k", 32) }, ""},
		{"unknown audit mode", func(c *AppConfig) { c.AuditLogAuth = "db" }, "audit_log_auth"},
		{"zero cleanup interval", func(c *AppConfig) { c.StateCleanupInterval = 0 }, "state_cleanup_interval"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)

			err := ValidateConfig(&config.CoreConfig{}, cfg, testLogger())
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error: got %v, want mention of %q", err, tc.wantErr)
			}
		})
	}
}

func TestConnectDB_BuildsClients(t *testing.T) {
	cfg := validConfig()

	deps, err := ConnectDB(context.Background(), &config.CoreConfig{}, cfg, testLogger())
	if err != nil {
		t.Fatalf("ConnectDB failed: %v", err)
	}
	if deps.API == nil || deps.API.BaseURL != cfg.APIBase {
		t.Errorf("API client: got %+v", deps.API)
	}
	if deps.Legacy == nil || deps.Legacy.BaseURL != cfg.LegacyAPIBase {
		t.Errorf("legacy client: got %+v", deps.Legacy)
	}
	if deps.States == nil || deps.Cleanup == nil {
		t.Error("expected state store and cleanup worker")
	}
	if deps.API.HTTP == http.DefaultClient {
		t.Error("expected an instrumented client, not the default one")
	}
}

func TestStartupAndShutdown(t *testing.T) {
	t.Cleanup(timeouts.Reset)
	cfg := validConfig()

	deps, err := ConnectDB(context.Background(), &config.CoreConfig{}, cfg, testLogger())
	if err != nil {
		t.Fatalf("ConnectDB failed: %v", err)
	}

	if err := Startup(context.Background(), &config.CoreConfig{}, cfg, deps, testLogger()); err != nil {
		t.Fatalf("Startup failed: %v", err)
	}

	got := timeouts.Current()
	if got.Ping != cfg.TimeoutPing || got.Auth != cfg.TimeoutAuth || got.Fetch != cfg.TimeoutFetch || got.Export != cfg.TimeoutExport {
		t.Errorf("timeouts not applied: %+v", got)
	}

	if err := Shutdown(context.Background(), &config.CoreConfig{}, cfg, deps, testLogger()); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}
}

func TestCSRFMiddleware_RejectsPostWithoutToken(t *testing.T) {
	cfg := validConfig()
	errLog := errorsfeature.NewErrorLogger(testLogger())

	mw, err := csrfMiddleware(cfg, false, errLog, testLogger())
	if err != nil {
		t.Fatalf("csrfMiddleware failed: %v", err)
	}

	reached := false
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))

	req := httptest.NewRequest("POST", "/login", strings.NewReader("email=a&password=b"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	// The error page needs the template engine, which is not booted here.
	func() {
		defer func() { _ = recover() }()
		h.ServeHTTP(httptest.NewRecorder(), req)
	}()

	if reached {
		t.Error("POST without a CSRF token must not reach the handler")
	}
}

func TestCSRFMiddleware_AllowsGet(t *testing.T) {
	cfg := validConfig()
	cfg.CSRFKey = strings.Repeat("k", 32)
	errLog := errorsfeature.NewErrorLogger(testLogger())

	mw, err := csrfMiddleware(cfg, false, errLog, testLogger())
	if err != nil {
		t.Fatalf("csrfMiddleware failed: %v", err)
	}

	reached := false
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/login", nil))

	if !reached {
		t.Error("GET should pass through")
	}
}
