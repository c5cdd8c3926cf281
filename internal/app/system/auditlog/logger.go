// internal/app/system/auditlog/logger.go
package auditlog

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/xenodash/internal/app/system/normalize"
	"github.com/dalemusser/xenodash/internal/app/system/ratelimit"
	"github.com/dalemusser/xenodash/internal/app/system/requestid"
	"go.uber.org/zap"
)

// Event types.
const (
	EventLoginSuccess    = "login_success"
	EventLoginFailed     = "login_failed"
	EventRegisterSuccess = "register_success"
	EventRegisterFailed  = "register_failed"
	EventLogout          = "logout"
	EventExport          = "export_top_customers"
)

// Modes for Config.Auth.
const (
	ModeLog = "log"
	ModeOff = "off"
)

// Config holds audit logging configuration.
type Config struct {
	// Auth controls logging for authentication events (login, register,
	// logout) and downloads. Values: "log" (zap) or "off".
	Auth string
}

// Event is one auditable action.
type Event struct {
	EventType     string
	Success       bool
	Email         string
	IP            string
	UserAgent     string
	RequestID     string
	FailureReason string
	Details       map[string]string
}

// Logger writes audit events as structured zap entries tagged audit=true,
// so they can be routed separately from request logs. There is no local
// store: accounts live in the analytics API.
type Logger struct {
	zapLog *zap.Logger
	config Config
}

// New creates a new audit Logger.
func New(zapLog *zap.Logger, config Config) *Logger {
	return &Logger{zapLog: zapLog, config: config}
}

// Log records event unless auditing is off.
// If the logger is nil, this is a no-op (allows tests to use nil audit logger).
func (l *Logger) Log(event Event) {
	if l == nil || l.config.Auth == ModeOff {
		return
	}

	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("event_type", event.EventType),
		zap.Bool("success", event.Success),
		zap.String("ip", event.IP),
	}
	if event.Email != "" {
		fields = append(fields, zap.String("email", event.Email))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if event.UserAgent != "" {
		fields = append(fields, zap.String("user_agent", event.UserAgent))
	}
	if event.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", event.FailureReason))
	}
	for k, v := range event.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if event.Success {
		l.zapLog.Info("audit event", fields...)
	} else {
		l.zapLog.Warn("audit event", fields...)
	}
}

func fromRequest(r *http.Request, eventType, email string, success bool) Event {
	return Event{
		EventType: eventType,
		Success:   success,
		Email:     normalize.Email(email),
		IP:        ratelimit.ClientIP(r),
		UserAgent: r.UserAgent(),
		RequestID: requestid.FromContext(r.Context()),
	}
}

// --- Authentication Events ---

// LoginSuccess logs a successful login.
func (l *Logger) LoginSuccess(r *http.Request, email string) {
	l.Log(fromRequest(r, EventLoginSuccess, email, true))
}

// LoginFailed logs a rejected login with the reason shown to the user.
func (l *Logger) LoginFailed(r *http.Request, email, reason string) {
	e := fromRequest(r, EventLoginFailed, email, false)
	e.FailureReason = reason
	l.Log(e)
}

// RegisterSuccess logs a created account.
func (l *Logger) RegisterSuccess(r *http.Request, email string) {
	l.Log(fromRequest(r, EventRegisterSuccess, email, true))
}

// RegisterFailed logs a rejected registration.
func (l *Logger) RegisterFailed(r *http.Request, email, reason string) {
	e := fromRequest(r, EventRegisterFailed, email, false)
	e.FailureReason = reason
	l.Log(e)
}

// Logout logs a sign-out. email is the identity read from the token, if any.
func (l *Logger) Logout(r *http.Request, email string) {
	l.Log(fromRequest(r, EventLogout, email, true))
}

// Export logs a CSV download attempt.
func (l *Logger) Export(r *http.Request, email string, success bool, rows int) {
	e := fromRequest(r, EventExport, email, success)
	if success {
		e.Details = map[string]string{"rows": strconv.Itoa(rows)}
	}
	l.Log(e)
}
