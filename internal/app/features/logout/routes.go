// internal/app/features/logout/routes.go
package logout

import "github.com/go-chi/chi/v5"

// Routes serves /logout. Signed-out visitors are accepted too; they are
// simply sent to the login form.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeLogout)
	return r
}
