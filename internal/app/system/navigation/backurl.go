// Package navigation provides helpers for safe URL navigation and redirects.
package navigation

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
)

// BackURLOptions configures the behavior of SafeBackURL.
type BackURLOptions struct {
	// ExcludedPrefixes are paths that must never be returned to, such as
	// the login form itself, to prevent redirect loops.
	ExcludedPrefixes []string

	// Fallback is the default URL if no valid return URL is found.
	Fallback string
}

// AfterLogin is where a successful login lands: the page that sent the
// user to /login, else the dashboard.
var AfterLogin = BackURLOptions{
	ExcludedPrefixes: []string{"/login", "/logout"},
	Fallback:         "/dashboard",
}

// SafeBackURL extracts and validates a return URL from the request.
//
// It checks both the query parameter and form value for "return" and only
// accepts local paths (no open redirects) outside ExcludedPrefixes.
func SafeBackURL(r *http.Request, opts BackURLOptions) string {
	ret := urlutil.SafeReturn(query.Get(r, "return"), "", "")
	if ret == "" {
		ret = urlutil.SafeReturn(strings.TrimSpace(r.FormValue("return")), "", "")
	}
	if ret == "" || !strings.HasPrefix(ret, "/") || strings.HasPrefix(ret, "//") {
		return opts.Fallback
	}

	for _, excluded := range opts.ExcludedPrefixes {
		if strings.HasPrefix(ret, excluded) {
			return opts.Fallback
		}
	}
	return ret
}
