// Package htmlsanitize cleans text that arrives from the analytics API
// before it is shown to the user.
//
// Upstream error bodies are free-form. Some deployments wrap messages in
// markup ("<b>Invalid</b> password"). Alerts are plain text, so markup is
// stripped rather than escaped.
package htmlsanitize

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictOnce sync.Once
	strict     *bluemonday.Policy
)

func strictPolicy() *bluemonday.Policy {
	strictOnce.Do(func() {
		strict = bluemonday.StrictPolicy()
	})
	return strict
}

// Message strips all markup from s and collapses surrounding whitespace.
// The result is unescaped plain text; templates escape it on output.
func Message(s string) string {
	if s == "" {
		return ""
	}
	clean := strictPolicy().Sanitize(s)
	clean = html.UnescapeString(clean)
	return strings.Join(strings.Fields(clean), " ")
}

// IsPlainText reports whether s contains no tag-like sequences.
func IsPlainText(s string) bool {
	return !strings.ContainsAny(s, "<>")
}
