// Package normalize canonicalises user-typed form values.
package normalize

import "strings"

// Email trims and lower-cases an email for use as a lookup key. The value
// sent upstream is left as typed.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace and preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}
