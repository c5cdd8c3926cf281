// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). Framework-level settings such
// as ports, TLS and log level live in WAFFLE's CoreConfig instead.
type AppConfig struct {
	// Upstream services
	APIBase        string // analytics API base URL (auth + dashboard endpoints)
	LegacyAPIBase  string // older unauthenticated metrics service
	LegacyOverview bool   // serve /overview from the legacy service

	// Session management configuration
	SessionKey    string        // Secret key for signing session cookies (must be strong in production)
	SessionName   string        // Cookie name for sessions (default: xenodash-session)
	SessionDomain string        // Cookie domain (blank means current host)
	SessionMaxAge time.Duration // Cookie lifetime; the token lives as long as the cookie

	// CSRFKey signs the login/register form tokens. Blank generates a
	// random key per process, which is only suitable for a single instance.
	CSRFKey string

	// Upstream call deadlines
	TimeoutPing   time.Duration
	TimeoutAuth   time.Duration
	TimeoutFetch  time.Duration
	TimeoutExport time.Duration

	// Per-session dashboard state housekeeping
	StateIdleTTL         time.Duration
	StateCleanupInterval time.Duration

	MetricsEnabled bool   // expose /metrics
	AuditLogAuth   string // "log" or "off"
}
