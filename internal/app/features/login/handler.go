// internal/app/features/login/handler.go
package login

import (
	"context"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/xenodash/internal/app/features/errors"
	"github.com/dalemusser/xenodash/internal/app/store/analytics"
	"github.com/dalemusser/xenodash/internal/app/system/auditlog"
	"github.com/dalemusser/xenodash/internal/app/system/auth"
	"github.com/dalemusser/xenodash/internal/app/system/htmlsanitize"
	"github.com/dalemusser/xenodash/internal/app/system/inputval"
	"github.com/dalemusser/xenodash/internal/app/system/limits"
	"github.com/dalemusser/xenodash/internal/app/system/navigation"
	"github.com/dalemusser/xenodash/internal/app/system/normalize"
	"github.com/dalemusser/xenodash/internal/app/system/ratelimit"
	"github.com/dalemusser/xenodash/internal/app/system/timeouts"
	"github.com/dalemusser/xenodash/internal/app/system/viewdata"
	"github.com/dalemusser/xenodash/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Messages shown to the user as alerts.
const (
	MsgInvalidCredentials = "Invalid credentials"
	MsgRegistrationFailed = "Registration failed"
	MsgRegistered         = "Registration successful! Please login."
	MsgFetchFailed        = "Failed to fetch dashboard data. Maybe token expired."
)

// Authenticator is the auth half of the analytics API.
// *analytics.Client satisfies it.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, creds models.Credentials) error
}

// Dashboard is the part of the dashboard container login drives.
// *dashboard.Container satisfies it.
type Dashboard interface {
	BeginAuth(sid string)
	Refresh(ctx context.Context, sid, token string, rng models.DateRange) error
	Clear(sid string)
}

type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
	API        Authenticator
	Dashboard  Dashboard
	Limiter    *ratelimit.AuthLimiter
	Audit      *auditlog.Logger
}

func NewHandler(api Authenticator, dash Dashboard, sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Log:        logger,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
		API:        api,
		Dashboard:  dash,
		Limiter:    ratelimit.NewAuthLimiter(),
		Audit:      audit,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Template-data                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

type formData struct {
	viewdata.BaseVM
	Registering bool
	Name        string
	Email       string
	ReturnURL   string
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, registering bool, name, email, alert string) {
	title := "Login"
	if registering {
		title = "Register"
	}
	data := formData{
		BaseVM:      viewdata.NewBaseVM(w, r, h.SessionMgr, title, "/"),
		Registering: registering,
		Name:        name,
		Email:       email,
		ReturnURL:   navigation.SafeBackURL(r, navigation.BackURLOptions{ExcludedPrefixes: navigation.AfterLogin.ExcludedPrefixes}),
	}
	if alert != "" {
		data.Alerts = append(data.Alerts, alert)
	}
	templates.Render(w, r, "login_page", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /login                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeLogin shows the login form, or the register form with ?mode=register.
// A signed-in user goes straight to the dashboard.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	h.renderForm(w, r, query.Get(r, "mode") == "register", "", "", "")
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /login                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleLoginPost exchanges email and password for a token, stores it in
// the session, runs the first dashboard fetch with it and redirects.
func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxAuthFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/login")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if ok, msg := h.Limiter.Check(r, email); !ok {
		h.Audit.LoginFailed(r, email, "rate limited")
		h.renderForm(w, r, false, "", email, msg)
		return
	}
	if email == "" || password == "" {
		h.renderForm(w, r, false, "", email, MsgInvalidCredentials)
		return
	}

	sid := auth.NewSID()
	h.Dashboard.BeginAuth(sid)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Auth(), h.Log, "login")
	token, err := h.API.Login(ctx, email, password)
	cancel()
	if err != nil {
		h.Dashboard.Clear(sid)
		msg := failureMessage(err, MsgInvalidCredentials)
		h.Log.Info("login rejected", zap.String("email", email), zap.Error(err))
		h.Audit.LoginFailed(r, email, msg)
		h.renderForm(w, r, false, "", email, msg)
		return
	}

	if err := h.SessionMgr.SignInWithSID(w, r, token, sid); err != nil {
		h.Dashboard.Clear(sid)
		h.ErrLog.LogServerError(w, r, "save session", err, "Could not start your session.", "/login")
		return
	}
	h.Limiter.ResetEmail(email)
	h.Audit.LoginSuccess(r, email)

	if err := h.Dashboard.Refresh(r.Context(), sid, token, models.DateRange{}); err != nil {
		h.SessionMgr.AddAlert(w, r, MsgFetchFailed)
	}

	h.Log.Info("login succeeded", zap.String("email", email))
	http.Redirect(w, r, navigation.SafeBackURL(r, navigation.AfterLogin), http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /login/register                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleRegisterPost creates an account upstream. It never signs the user
// in: success flips back to the login form.
func (h *Handler) HandleRegisterPost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxAuthFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/login?mode=register")
		return
	}

	creds := models.Credentials{
		Name:     normalize.Name(r.FormValue("name")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
	}

	if ok, msg := h.Limiter.Check(r, creds.Email); !ok {
		h.renderForm(w, r, true, creds.Name, creds.Email, msg)
		return
	}
	if creds.Name == "" || creds.Email == "" || creds.Password == "" {
		h.renderForm(w, r, true, creds.Name, creds.Email, MsgRegistrationFailed)
		return
	}
	if !inputval.IsValidEmail(creds.Email) {
		h.renderForm(w, r, true, creds.Name, creds.Email, inputval.MsgInvalidEmail)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Auth(), h.Log, "register")
	err := h.API.Register(ctx, creds)
	cancel()
	if err != nil {
		msg := failureMessage(err, MsgRegistrationFailed)
		h.Log.Info("registration rejected", zap.String("email", creds.Email), zap.Error(err))
		h.Audit.RegisterFailed(r, creds.Email, msg)
		h.renderForm(w, r, true, creds.Name, creds.Email, msg)
		return
	}

	h.Log.Info("registration succeeded", zap.String("email", creds.Email))
	h.Audit.RegisterSuccess(r, creds.Email)
	h.renderForm(w, r, false, "", creds.Email, MsgRegistered)
}

// failureMessage prefers the server's message, stripped of markup, over
// the generic fallback.
func failureMessage(err error, fallback string) string {
	if msg := htmlsanitize.Message(analytics.ServerMessage(err)); msg != "" {
		return msg
	}
	return fallback
}
