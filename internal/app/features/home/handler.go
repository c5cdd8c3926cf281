package home

import (
	"net/http"

	"github.com/dalemusser/xenodash/internal/app/system/auth"
	"go.uber.org/zap"
)

// Handler serves the site root.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeRoot sends visitors holding a token to the dashboard and everyone
// else to the login form.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
