// Package inputval checks form input before it is sent upstream.
package inputval

import (
	"net/mail"
	"strings"
)

// MsgInvalidEmail is shown when an email fails IsValidEmail.
const MsgInvalidEmail = "Please enter a valid email address."

// IsValidEmail reports whether s is a bare addr-spec (no display name) with
// dot-separated local and domain parts. Single-label domains are allowed.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, " \t\r\n<>") {
		return false
	}

	at := strings.LastIndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return false
	}
	if !dotted(s[:at]) || !dotted(s[at+1:]) {
		return false
	}

	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Name == "" && addr.Address == s
}

// dotted rejects leading, trailing and doubled dots.
func dotted(part string) bool {
	return part != "" &&
		!strings.HasPrefix(part, ".") &&
		!strings.HasSuffix(part, ".") &&
		!strings.Contains(part, "..")
}
