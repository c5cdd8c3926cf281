// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"github.com/dalemusser/xenodash/internal/app/system/requestid"
	"go.uber.org/zap"
)

// ErrorLogger logs server-side faults with request context and renders the
// friendly error page, so handlers can report and respond in one call.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

func (e *ErrorLogger) fields(r *http.Request, err error) []zap.Field {
	return []zap.Field{
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("request_id", requestid.FromContext(r.Context())),
	}
}

// LogServerError logs msg/err at error level and renders a 500 page showing
// userMsg with a link back to backURL.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.Log.Error(msg, e.fields(r, err)...)
	RenderServerError(w, r, userMsg, backURL)
}

// HTMXLogServerError is LogServerError for endpoints that also serve HTMX
// partials.
func (e *ErrorLogger) HTMXLogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.Log.Error(msg, e.fields(r, err)...)
	HTMXError(w, r, http.StatusInternalServerError, userMsg, func() {
		RenderServerError(w, r, userMsg, backURL)
	})
}

// LogBadRequest logs a client-side fault at warn level and renders a 400
// page.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.Log.Warn(msg, e.fields(r, err)...)
	RenderBadRequest(w, r, userMsg, backURL)
}
