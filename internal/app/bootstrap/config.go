// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/dalemusser/xenodash/internal/app/system/auditlog"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for xenodash.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: api_base, session_name, etc.
//   - Environment variables: XENODASH_API_BASE, XENODASH_SESSION_NAME, etc.
//   - Command-line flags: --api_base, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "api_base", Default: "http://localhost:5000", Desc: "Analytics API base URL"},
	{Name: "legacy_api_base", Default: "https://xeno-shopify-service-backend.onrender.com", Desc: "Legacy metrics service base URL"},
	{Name: "legacy_overview", Default: true, Desc: "Serve the legacy overview page at /overview"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "xenodash-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "session_max_age", Default: "24h", Desc: "Session cookie lifetime (e.g., 24h, 168h)"},
	{Name: "csrf_key", Default: "", Desc: "32-byte CSRF signing key (blank generates one per process)"},

	// Upstream deadlines
	{Name: "timeout_ping", Default: "2s", Desc: "Health check probe deadline"},
	{Name: "timeout_auth", Default: "10s", Desc: "Login/register call deadline"},
	{Name: "timeout_fetch", Default: "15s", Desc: "Dashboard fetch deadline (all three calls)"},
	{Name: "timeout_export", Default: "30s", Desc: "CSV export deadline"},

	// Dashboard state housekeeping
	{Name: "state_idle_ttl", Default: "24h", Desc: "Evict dashboard state idle for longer than this"},
	{Name: "state_cleanup_interval", Default: "10m", Desc: "How often idle dashboard state is evicted"},

	{Name: "metrics_enabled", Default: true, Desc: "Expose Prometheus metrics at /metrics"},
	{Name: "audit_log_auth", Default: "log", Desc: "Auth event logging: 'log' (zap) or 'off'"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env files, config files,
// environment variables (WAFFLE_* for core, XENODASH_* for app) and flags,
// merged with precedence flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "XENODASH", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		APIBase:        appValues.String("api_base"),
		LegacyAPIBase:  appValues.String("legacy_api_base"),
		LegacyOverview: appValues.Bool("legacy_overview"),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),
		SessionMaxAge: appValues.Duration("session_max_age", 24*time.Hour),
		CSRFKey:       appValues.String("csrf_key"),

		TimeoutPing:   appValues.Duration("timeout_ping", 2*time.Second),
		TimeoutAuth:   appValues.Duration("timeout_auth", 10*time.Second),
		TimeoutFetch:  appValues.Duration("timeout_fetch", 15*time.Second),
		TimeoutExport: appValues.Duration("timeout_export", 30*time.Second),

		StateIdleTTL:         appValues.Duration("state_idle_ttl", 24*time.Hour),
		StateCleanupInterval: appValues.Duration("state_cleanup_interval", 10*time.Minute),

		MetricsEnabled: appValues.Bool("metrics_enabled"),
		AuditLogAuth:   appValues.String("audit_log_auth"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Both upstream base URLs must be absolute http(s) URLs; a relative base
// would silently resolve against nothing and every call would fail.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := validateBaseURL("api_base", appCfg.APIBase); err != nil {
		logger.Error("invalid api_base", zap.Error(err))
		return err
	}
	if appCfg.LegacyOverview {
		if err := validateBaseURL("legacy_api_base", appCfg.LegacyAPIBase); err != nil {
			logger.Error("invalid legacy_api_base", zap.Error(err))
			return err
		}
	}

	if appCfg.SessionKey == "" {
		return fmt.Errorf("session_key must be set")
	}
	if appCfg.CSRFKey != "" && len(appCfg.CSRFKey) != 32 {
		return fmt.Errorf("csrf_key must be exactly 32 bytes, got %d", len(appCfg.CSRFKey))
	}
	if appCfg.AuditLogAuth != auditlog.ModeLog && appCfg.AuditLogAuth != auditlog.ModeOff {
		return fmt.Errorf("audit_log_auth must be %q or %q, got %q", auditlog.ModeLog, auditlog.ModeOff, appCfg.AuditLogAuth)
	}
	if appCfg.StateCleanupInterval <= 0 {
		return fmt.Errorf("state_cleanup_interval must be positive")
	}

	return nil
}

func validateBaseURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	if !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("invalid %s %q: must be an absolute http(s) URL", name, raw)
	}
	return nil
}

var errCSRFKey = errors.New("could not generate a csrf key")
