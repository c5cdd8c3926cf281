package logout_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/xenodash/internal/app/features/logout"
	"github.com/dalemusser/xenodash/internal/app/system/auth"
	"github.com/dalemusser/xenodash/internal/testutil"
	"go.uber.org/zap"
)

type recordingClearer struct {
	cleared []string
}

func (c *recordingClearer) Clear(sid string) { c.cleared = append(c.cleared, sid) }

func newTestHandler(t *testing.T) (*logout.Handler, *auth.SessionManager, *recordingClearer) {
	t.Helper()
	sessionMgr := testutil.NewSessionManager(t)
	clearer := &recordingClearer{}
	return logout.NewHandler(sessionMgr, clearer, nil, zap.NewNop()), sessionMgr, clearer
}

func TestServeLogout_RedirectsToLogin(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/logout", nil)
	rec := httptest.NewRecorder()

	handler.ServeLogout(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if location := rec.Header().Get("Location"); location != "/login" {
		t.Errorf("Location: got %q, want %q", location, "/login")
	}
}

func TestServeLogout_ClearsSessionCookie(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/logout", nil)
	rec := httptest.NewRecorder()

	handler.ServeLogout(rec, req)

	found := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "test-session" {
			found = true
			if c.MaxAge != -1 {
				t.Errorf("cookie MaxAge: got %d, want -1 (delete)", c.MaxAge)
			}
			break
		}
	}
	if !found {
		t.Error("expected session cookie to be set for deletion")
	}
}

func TestServeLogout_HTMX_ReturnsHXRedirect(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/logout", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	handler.ServeLogout(rec, req)

	if hx := rec.Header().Get("HX-Redirect"); hx != "/login" {
		t.Errorf("HX-Redirect: got %q, want %q", hx, "/login")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d for HTMX, got %d", http.StatusOK, rec.Code)
	}
}

func TestServeLogout_DropsDashboardState(t *testing.T) {
	handler, sessionMgr, clearer := newTestHandler(t)

	req2, sid := testutil.SignedInRequest(t, sessionMgr, "GET", "/logout", "tok")
	rec2 := httptest.NewRecorder()

	handler.ServeLogout(rec2, req2)

	if len(clearer.cleared) != 1 || clearer.cleared[0] != sid {
		t.Errorf("cleared: got %v, want [%s]", clearer.cleared, sid)
	}

	// The expired cookie no longer signs anyone in.
	req3 := httptest.NewRequest("GET", "/dashboard", nil)
	testutil.CarryCookies(req3, rec2)
	if testutil.SessionUser(sessionMgr, req3) != nil {
		t.Error("user still signed in after logout")
	}
}

func TestServeLogout_SignedOutDoesNotClear(t *testing.T) {
	handler, _, clearer := newTestHandler(t)

	handler.ServeLogout(httptest.NewRecorder(), httptest.NewRequest("GET", "/logout", nil))

	if len(clearer.cleared) != 0 {
		t.Errorf("expected no clear without a session, got %v", clearer.cleared)
	}
}
