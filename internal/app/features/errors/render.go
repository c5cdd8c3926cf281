// internal/app/features/errors/render.go
package errors

import (
	"net/http"
)

// RenderUnauthorized shows a friendly "sign in required" page.
// If backURL is empty, it will default to /login.
func RenderUnauthorized(w http.ResponseWriter, r *http.Request, backURL string) {
	if backURL == "" {
		backURL = "/login"
	}
	render(w, r, http.StatusUnauthorized, "Sign in required", "Please sign in to continue.", backURL)
}

// RenderNotFound shows a friendly not-found page.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if backURL == "" {
		backURL = "/"
	}
	render(w, r, http.StatusNotFound, "Not found", msg, backURL)
}

// RenderBadRequest shows a friendly "bad request" page.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if backURL == "" {
		backURL = "/"
	}
	render(w, r, http.StatusBadRequest, "Bad request", msg, backURL)
}

// RenderServerError shows a friendly "something went wrong" page.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "Something went wrong. Please try again."
	}
	if backURL == "" {
		backURL = "/"
	}
	render(w, r, http.StatusInternalServerError, "Something went wrong", msg, backURL)
}

// HTMXError answers an HTMX request with status and a plain message that the
// page script shows as an alert; full-page requests fall through to
// fullPage.
func HTMXError(w http.ResponseWriter, r *http.Request, status int, msg string, fullPage func()) {
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("HX-Reswap", "none")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(msg))
		return
	}
	fullPage()
}
