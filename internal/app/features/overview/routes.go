// internal/app/features/overview/routes.go
package overview

import "github.com/go-chi/chi/v5"

// Routes serves /overview. The legacy service needs no token, so neither
// does this page.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeOverview)
	return r
}
