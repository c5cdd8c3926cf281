// internal/app/features/dashboard/handler.go
package dashboard

import (
	"net/http"
	"net/url"

	uierrors "github.com/dalemusser/xenodash/internal/app/features/errors"
	"github.com/dalemusser/xenodash/internal/app/system/auditlog"
	"github.com/dalemusser/xenodash/internal/app/system/auth"
	"github.com/dalemusser/xenodash/internal/app/system/viewdata"
	"github.com/dalemusser/xenodash/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
	Container  *Container
	Audit      *auditlog.Logger
}

func NewHandler(container *Container, sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Log:        logger,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
		Container:  container,
		Audit:      audit,
	}
}

// ServeDashboard handles GET /dashboard.
//
// The first visit for a session (or ?apply=1 from the no-script filter form)
// runs a fetch before rendering; otherwise the stored state is shown as is.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok || u.SID == "" {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	st := h.Container.State(u.SID)
	apply := query.Get(r, "apply") == "1"

	var fetchErr error
	if apply || !st.HasData() {
		rng := st.Filter
		if apply {
			rng = models.ParseDateRange(query.Get(r, "startDate"), query.Get(r, "endDate"))
		}
		fetchErr = h.Container.Refresh(r.Context(), u.SID, u.Token, rng)
		st = h.Container.State(u.SID)
	} else {
		h.Container.States.Touch(u.SID)
	}

	data := pageData{
		BaseVM:  viewdata.NewBaseVM(w, r, h.SessionMgr, "Dashboard", "/"),
		MainVM:  buildMain(st),
		Filter:  filterVM(st.Filter),
		Summary: buildSummary(st.Summary),
	}
	if fetchErr != nil {
		data.Alerts = append(data.Alerts, FetchFailedMessage)
	}

	templates.Render(w, r, "dashboard_page", data)
}

// ServeData handles GET /dashboard/data, the HTMX filter endpoint. It
// refetches with the submitted range and swaps the main view; the summary
// cards are swapped out of band. Non-HTMX callers are sent to the full page.
func (h *Handler) ServeData(w http.ResponseWriter, r *http.Request) {
	start, end := query.Get(r, "startDate"), query.Get(r, "endDate")

	if r.Header.Get("HX-Request") != "true" {
		q := url.Values{"apply": {"1"}}
		if start != "" {
			q.Set("startDate", start)
		}
		if end != "" {
			q.Set("endDate", end)
		}
		http.Redirect(w, r, "/dashboard?"+q.Encode(), http.StatusSeeOther)
		return
	}

	u, ok := auth.CurrentUser(r)
	if !ok || u.SID == "" {
		w.Header().Set("HX-Redirect", "/login")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	rng := models.ParseDateRange(start, end)
	fetchErr := h.Container.Refresh(r.Context(), u.SID, u.Token, rng)
	st := h.Container.State(u.SID)

	data := partialData{
		MainVM:  buildMain(st),
		Summary: buildSummary(st.Summary),
	}
	if fetchErr != nil {
		data.Alerts = []string{FetchFailedMessage}
	}

	templates.RenderSnippet(w, "dashboard_main_partial", data)
}
