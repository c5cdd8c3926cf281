// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/dalemusser/xenodash/internal/app/system/auditlog"
	"github.com/dalemusser/xenodash/internal/app/system/auth"
	"go.uber.org/zap"
)

// Clearer drops the dashboard data held for a session slot.
// *dashboard.Container satisfies it.
type Clearer interface {
	Clear(sid string)
}

type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	Dashboard  Clearer
	Audit      *auditlog.Logger
}

func NewHandler(sessionMgr *auth.SessionManager, dash Clearer, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Log:        logger,
		SessionMgr: sessionMgr,
		Dashboard:  dash,
		Audit:      audit,
	}
}

// ServeLogout handles GET /logout. It always succeeds from the user's point
// of view: the token cookie is expired and the summary, series and customer
// list held for the session are dropped.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	if u, ok := auth.CurrentUser(r); ok {
		h.Audit.Logout(r, u.Email)
	}

	sid, err := h.SessionMgr.SignOut(w, r)
	if err != nil {
		h.Log.Error("logout: save session", zap.Error(err))
	}
	if sid != "" && h.Dashboard != nil {
		h.Dashboard.Clear(sid)
	}

	if r.Header.Get("HX-Request") != "" {
		w.Header().Set("HX-Redirect", "/login")
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
