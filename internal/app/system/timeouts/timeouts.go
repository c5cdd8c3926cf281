// Package timeouts provides centralized deadlines for calls to the
// analytics API.
//
// The API client itself has no timeout setting; handlers bound each call
// with context.WithTimeout using these values so a slow upstream cannot
// hold a request open indefinitely.
//
//   - Ping: health probe of the upstream base URL
//   - Auth: login and registration round trips
//   - Fetch: one dashboard fan-out (all three reads together)
//   - Export: the CSV download, which can be large
package timeouts

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultPing   = 2 * time.Second
	DefaultAuth   = 10 * time.Second
	DefaultFetch  = 20 * time.Second
	DefaultExport = 60 * time.Second
)

var mu sync.RWMutex

var (
	ping   = DefaultPing
	auth   = DefaultAuth
	fetch  = DefaultFetch
	export = DefaultExport
)

// Ping returns the timeout for the upstream health probe.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Auth returns the timeout for login and registration calls.
func Auth() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return auth
}

// Fetch returns the timeout for a dashboard data fetch.
func Fetch() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return fetch
}

// Export returns the timeout for the CSV export.
func Export() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return export
}

// Config holds timeout configuration values.
// Zero values are ignored (defaults are kept).
type Config struct {
	Ping   time.Duration
	Auth   time.Duration
	Fetch  time.Duration
	Export time.Duration
}

// Configure sets custom timeout values. Call during startup before handlers
// are built.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Auth > 0 {
		auth = cfg.Auth
	}
	if cfg.Fetch > 0 {
		fetch = cfg.Fetch
	}
	if cfg.Export > 0 {
		export = cfg.Export
	}
}

// Reset restores all timeouts to their default values.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	auth = DefaultAuth
	fetch = DefaultFetch
	export = DefaultExport
}

// Current returns the current timeout configuration.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{Ping: ping, Auth: auth, Fetch: fetch, Export: export}
}

// WithTimeout creates a context with timeout and returns a cancel function
// that logs a warning if the deadline was hit.
//
//	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Export(), h.Log, "top customers export")
//	defer cancel()
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
