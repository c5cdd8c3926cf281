// internal/app/store/analytics/errors.go
package analytics

import (
	"encoding/json"
	"errors"
	"fmt"
)

// APIError is returned when the analytics API answers with a non-2xx status.
type APIError struct {
	Method  string
	Path    string
	Status  int
	Message string // the server's "message" field, if it sent one
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("analytics: %s %s: status %d: %s", e.Method, e.Path, e.Status, e.Message)
	}
	return fmt.Sprintf("analytics: %s %s: status %d", e.Method, e.Path, e.Status)
}

// ServerMessage returns the server-provided message carried by err, or ""
// if err is not an *APIError or the server sent none.
func ServerMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

// parseMessage pulls {"message": "..."} out of an error body. Anything else
// yields "".
func parseMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}
