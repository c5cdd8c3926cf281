package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/xenodash/internal/app/system/auth"
	"go.uber.org/zap"
)

// SessionKey is a fixed cookie signing key for tests.
const SessionKey = "test-session-key-for-testing-only"

// SessionName is the cookie name used by NewSessionManager.
const SessionName = "test-session"

// NewSessionManager returns an insecure cookie session manager for tests.
func NewSessionManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	sm, err := auth.NewSessionManager(SessionKey, SessionName, "", 24*time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	return sm
}

// SignedInRequest signs token in through sm and returns a request to target
// carrying the resulting cookie, plus the session slot id.
func SignedInRequest(t *testing.T, sm *auth.SessionManager, method, target, token string) (*http.Request, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	sid, err := sm.SignIn(rec, httptest.NewRequest(http.MethodPost, "/login", nil), token)
	if err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	req := httptest.NewRequest(method, target, nil)
	CarryCookies(req, rec)
	return req, sid
}

// CarryCookies copies the cookies set on rec onto req the way a browser
// would apply them: the last Set-Cookie for a name wins and deleted cookies
// (MaxAge < 0) are dropped.
func CarryCookies(req *http.Request, rec *httptest.ResponseRecorder) {
	var order []string
	latest := make(map[string]*http.Cookie)
	for _, c := range rec.Result().Cookies() {
		if _, seen := latest[c.Name]; !seen {
			order = append(order, c.Name)
		}
		latest[c.Name] = c
	}
	for _, name := range order {
		if c := latest[name]; c.MaxAge >= 0 {
			req.AddCookie(c)
		}
	}
}

// SessionUser runs req through sm's LoadSession middleware and returns the
// user it found, or nil.
func SessionUser(sm *auth.SessionManager, req *http.Request) *auth.SessionUser {
	var got *auth.SessionUser
	sm.LoadSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = auth.CurrentUser(r)
	})).ServeHTTP(httptest.NewRecorder(), req)
	return got
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t interface{ Errorf(string, ...any) }, expected int) {
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d", r.Code, expected)
	}
}

// AssertRedirect checks for a redirect to the expected location.
func (r *ResponseRecorder) AssertRedirect(t interface{ Errorf(string, ...any) }, expectedLocation string) {
	if r.Code != http.StatusSeeOther && r.Code != http.StatusFound && r.Code != http.StatusMovedPermanently {
		t.Errorf("expected redirect status, got %d", r.Code)
	}
	if location := r.Header().Get("Location"); location != expectedLocation {
		t.Errorf("redirect location: got %q, want %q", location, expectedLocation)
	}
}

// AssertContains checks if the response body contains the expected string.
func (r *ResponseRecorder) AssertContains(t interface{ Errorf(string, ...any) }, expected string) {
	if !strings.Contains(r.Body.String(), expected) {
		t.Errorf("response body does not contain %q", expected)
	}
}
