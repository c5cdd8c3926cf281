// internal/app/system/limits/limits.go
package limits

// Size limits for inbound forms and upstream responses.
// These limits help prevent memory exhaustion from oversized bodies.
const (
	// MaxAuthFormSize is the maximum size for login and register form submissions.
	MaxAuthFormSize = 64 << 10 // 64 KB

	// MaxUpstreamBody is the most read from a successful analytics API
	// response, CSV exports included.
	MaxUpstreamBody = 16 << 20 // 16 MB

	// MaxErrorBody caps how much of a failed upstream response is read for
	// its message.
	MaxErrorBody = 64 << 10 // 64 KB
)
