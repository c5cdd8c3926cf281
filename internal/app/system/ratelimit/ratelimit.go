// internal/app/system/ratelimit/ratelimit.go
package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dalemusser/xenodash/internal/app/system/normalize"
	"golang.org/x/time/rate"
)

// Limiter is a keyed token-bucket limiter. It is safe for concurrent use.
// Idle keys are swept lazily on Allow.
type Limiter struct {
	mu        sync.Mutex
	entries   map[string]*entry
	every     rate.Limit
	burst     int
	idle      time.Duration
	lastSweep time.Time
}

type entry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// New creates a limiter allowing limit requests per duration per key, with
// the full allowance available as an initial burst.
func New(limit int, duration time.Duration) *Limiter {
	if limit < 1 {
		limit = 1
	}
	return &Limiter{
		entries:   make(map[string]*entry),
		every:     rate.Every(duration / time.Duration(limit)),
		burst:     limit,
		idle:      duration * 2,
		lastSweep: time.Now(),
	}
}

// Allow reports whether a request for key may proceed now.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.Sub(l.lastSweep) > l.idle {
		l.sweepLocked(now)
	}

	e, ok := l.entries[key]
	if !ok {
		e = &entry{lim: rate.NewLimiter(l.every, l.burst)}
		l.entries[key] = e
	}
	e.lastSeen = now
	return e.lim.AllowN(now, 1)
}

// Reset forgets key, restoring its full allowance.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, key)
}

// Len returns the number of tracked keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *Limiter) sweepLocked(now time.Time) {
	for key, e := range l.entries {
		if now.Sub(e.lastSeen) > l.idle {
			delete(l.entries, key)
		}
	}
	l.lastSweep = now
}

// ClientIP extracts the client IP from an HTTP request.
// It checks X-Forwarded-For and X-Real-IP headers first (for proxied requests),
// then falls back to RemoteAddr.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// AuthLimiter throttles login and registration attempts before they reach
// the analytics API. It tracks both client IP and submitted email.
type AuthLimiter struct {
	ipLimiter    *Limiter
	emailLimiter *Limiter
}

// NewAuthLimiter creates a limiter with the default allowances:
// 10 attempts per IP per minute, 5 attempts per email per 5 minutes.
func NewAuthLimiter() *AuthLimiter {
	return NewAuthLimiterWithConfig(10, time.Minute, 5, 5*time.Minute)
}

// NewAuthLimiterWithConfig creates an auth limiter with custom limits.
func NewAuthLimiterWithConfig(ipLimit int, ipDuration time.Duration, emailLimit int, emailDuration time.Duration) *AuthLimiter {
	return &AuthLimiter{
		ipLimiter:    New(ipLimit, ipDuration),
		emailLimiter: New(emailLimit, emailDuration),
	}
}

// Check reports whether an attempt may proceed, and if not, the message to
// show the user.
func (al *AuthLimiter) Check(r *http.Request, email string) (bool, string) {
	if !al.ipLimiter.Allow(ClientIP(r)) {
		return false, "Too many attempts. Please wait a minute before trying again."
	}

	if key := emailKey(email); key != "" {
		if !al.emailLimiter.Allow(key) {
			return false, "Too many attempts for this account. Please wait a few minutes."
		}
	}

	return true, ""
}

// ResetEmail clears the allowance for email after a successful login.
func (al *AuthLimiter) ResetEmail(email string) {
	if key := emailKey(email); key != "" {
		al.emailLimiter.Reset(key)
	}
}

func emailKey(email string) string {
	return normalize.Email(email)
}
