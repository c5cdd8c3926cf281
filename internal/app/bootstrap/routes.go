// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	dashboardfeature "github.com/dalemusser/xenodash/internal/app/features/dashboard"
	errorsfeature "github.com/dalemusser/xenodash/internal/app/features/errors"
	healthfeature "github.com/dalemusser/xenodash/internal/app/features/health"
	homefeature "github.com/dalemusser/xenodash/internal/app/features/home"
	loginfeature "github.com/dalemusser/xenodash/internal/app/features/login"
	logoutfeature "github.com/dalemusser/xenodash/internal/app/features/logout"
	overviewfeature "github.com/dalemusser/xenodash/internal/app/features/overview"
	"github.com/dalemusser/xenodash/internal/app/system/auditlog"
	"github.com/dalemusser/xenodash/internal/app/system/auth"
	"github.com/dalemusser/xenodash/internal/app/system/metrics"
	"github.com/dalemusser/xenodash/internal/app/system/requestid"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"github.com/gorilla/securecookie"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, client construction and Startup
// have completed. It boots the template engine, builds the session manager
// and the dashboard container, and mounts one sub-router per feature.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)
	audit := auditlog.New(logger, auditlog.Config{Auth: appCfg.AuditLogAuth})
	container := dashboardfeature.NewContainer(deps.API, deps.States, logger)

	csrfMW, err := csrfMiddleware(appCfg, secure, errLog, logger)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	if appCfg.MetricsEnabled {
		r.Use(metrics.Middleware)
	}

	// Loads the token (and identity) into context when the cookie has one.
	r.Use(sessionMgr.LoadSession)

	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.API, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	if appCfg.MetricsEnabled {
		r.Handle("/metrics", metrics.Handler())
	}

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Authentication
	loginHandler := loginfeature.NewHandler(deps.API, container, sessionMgr, errLog, audit, logger)
	r.With(csrfMW).Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, container, audit, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	dashboardHandler := dashboardfeature.NewHandler(container, sessionMgr, errLog, audit, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler, sessionMgr))

	if appCfg.LegacyOverview {
		overviewHandler := overviewfeature.NewHandler(deps.Legacy, sessionMgr, errLog, logger)
		r.Mount("/overview", overviewfeature.Routes(overviewHandler))
	}

	return r, nil
}

// csrfMiddleware protects the login and register forms. Outside production
// the site is served over plain HTTP, so requests are marked as such to
// skip the TLS referer check.
func csrfMiddleware(appCfg AppConfig, secure bool, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) (func(http.Handler) http.Handler, error) {
	key := []byte(appCfg.CSRFKey)
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
		if key == nil {
			return nil, errCSRFKey
		}
		logger.Warn("csrf_key not set; generated a per-process key")
	}

	protect := csrf.Protect(key,
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			errLog.LogBadRequest(w, r, "csrf validation failed", csrf.FailureReason(r),
				"Your form expired. Please try again.", "/login")
		})),
	)

	if secure {
		return protect, nil
	}
	return func(next http.Handler) http.Handler {
		inner := protect(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			inner.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
		})
	}, nil
}
