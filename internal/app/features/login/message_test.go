package login

import (
	"errors"
	"testing"

	"github.com/dalemusser/xenodash/internal/app/store/analytics"
)

func TestFailureMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"server message", &analytics.APIError{Status: 401, Message: "Wrong email or password"}, "Wrong email or password"},
		{"markup stripped", &analytics.APIError{Status: 400, Message: "<b>Email</b> taken"}, "Email taken"},
		{"no message", &analytics.APIError{Status: 500}, MsgInvalidCredentials},
		{"transport error", errors.New("dial tcp: refused"), MsgInvalidCredentials},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := failureMessage(tc.err, MsgInvalidCredentials); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}
