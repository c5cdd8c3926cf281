package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Session keys                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

const (
	// TokenKey is the fixed session key the bearer token is stored under.
	TokenKey = "token"
	sidKey   = "sid"
	alertKey = "alert"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Current-User helper                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

// SessionUser is what we read from the cookie & inject into r.Context().
// Name and Email come from the token's claims when it is a JWT and are for
// display only.
type SessionUser struct {
	Token string
	SID   string
	Name  string
	Email string
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the signed-in user & "found?" flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

// WithTestUser injects u into the request context, bypassing the cookie.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

/*─────────────────────────────────────────────────────────────────────────────*
| SessionManager                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

// SessionManager owns the cookie store that carries the bearer token, the
// dashboard state slot id and one-shot alerts.
type SessionManager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewSessionManager builds a cookie-backed session store.
//
// In production (secure=true) cookies are Secure + SameSite=None.
// In local dev over http://localhost, use secure=false so cookies are accepted.
func NewSessionManager(sessionKey, name, domain string, maxAge time.Duration, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if name == "" {
		return nil, fmt.Errorf("session name is empty")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   int(maxAge / time.Second),
		Secure:   secure,
		HttpOnly: true,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts

	logger.Info("session store initialized",
		zap.String("name", name),
		zap.Bool("secure", secure),
		zap.String("domain", domain),
		zap.Duration("max_age", maxAge))

	return &SessionManager{store: store, name: name, log: logger}, nil
}

// Name is the cookie name.
func (sm *SessionManager) Name() string { return sm.name }

// Store exposes the underlying cookie store (for matching cookie options).
func (sm *SessionManager) Store() *sessions.CookieStore { return sm.store }

// GetSession returns the request's session. On a decode error (bad or
// rotated key) a fresh session is returned together with the error, so
// callers can still overwrite the cookie.
func (sm *SessionManager) GetSession(r *http.Request) (*sessions.Session, error) {
	sess, err := sm.store.Get(r, sm.name)
	if sess == nil {
		sess = sessions.NewSession(sm.store, sm.name)
		opts := *sm.store.Options
		sess.Options = &opts
		sess.IsNew = true
	}
	return sess, err
}

// NewSID returns a fresh dashboard state slot id.
func NewSID() string { return uuid.NewString() }

// SignIn stores token under TokenKey together with a new state slot id and
// writes the cookie. Any previous token is overwritten. It returns the slot id.
func (sm *SessionManager) SignIn(w http.ResponseWriter, r *http.Request, token string) (string, error) {
	sid := NewSID()
	if err := sm.SignInWithSID(w, r, token, sid); err != nil {
		return "", err
	}
	return sid, nil
}

// SignInWithSID is SignIn with a caller-chosen slot id.
func (sm *SessionManager) SignInWithSID(w http.ResponseWriter, r *http.Request, token, sid string) error {
	if token == "" {
		return errors.New("auth: empty token")
	}
	if sid == "" {
		return errors.New("auth: empty state slot id")
	}
	sess, err := sm.GetSession(r)
	if err != nil {
		sm.log.Warn("session decode failed during sign-in; starting fresh", zap.Error(err))
	}

	sess.Values[TokenKey] = token
	sess.Values[sidKey] = sid
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// SignOut expires the cookie immediately and returns the slot id it held,
// so the caller can drop that slot's state.
func (sm *SessionManager) SignOut(w http.ResponseWriter, r *http.Request) (string, error) {
	sess, err := sm.GetSession(r)
	if err != nil {
		sm.log.Warn("session decode failed during logout", zap.Error(err))
	}
	sid := getString(sess, sidKey)

	for k := range sess.Values {
		delete(sess.Values, k)
	}
	opts := *sm.store.Options
	opts.MaxAge = -1
	sess.Options = &opts

	if err := sess.Save(r, w); err != nil {
		return sid, fmt.Errorf("save session: %w", err)
	}
	return sid, nil
}

// LoadSession injects the signed-in user into context when the cookie
// carries a token.
func (sm *SessionManager) LoadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := sm.GetSession(r)
		if err != nil {
			sm.log.Debug("session decode failed; treating as signed out", zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}

		if tok := getString(sess, TokenKey); tok != "" {
			name, email := IdentityFromToken(tok)
			r = withUser(r, &SessionUser{
				Token: tok,
				SID:   getString(sess, sidKey),
				Name:  name,
				Email: email,
			})
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSignedIn ensures there is a user in context (set by LoadSession).
// If not signed in:
//   - HTMX: sends HX-Redirect to /login?return=...
//   - HTML: 303 redirect to /login?return=...
//   - API:  401 Unauthorized with a plain error body.
func (sm *SessionManager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); ok {
			next.ServeHTTP(w, r)
			return
		}

		ret := url.QueryEscape(currentURI(r))

		// HTMX: full-page client redirect (no partial swap)
		if r.Header.Get("HX-Request") == "true" {
			w.Header().Set("HX-Redirect", "/login?return="+ret)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if wantsHTML(r) {
			http.Redirect(w, r, "/login?return="+ret, http.StatusSeeOther)
			return
		}

		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})
}

// helpers

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// getString safely extracts a string from a session value.
func getString(s *sessions.Session, key string) string {
	if v, ok := s.Values[key].(string); ok {
		return v
	}
	return ""
}

func wantsHTML(r *http.Request) bool {
	if r.Header.Get("HX-Request") == "true" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

func currentURI(r *http.Request) string {
	u := *r.URL
	return u.RequestURI()
}
