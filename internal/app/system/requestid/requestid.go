// internal/app/system/requestid/requestid.go
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Header is read from inbound requests and forwarded on upstream calls.
const Header = "X-Request-ID"

type ctxKey struct{}

// Middleware ensures every request carries an id. An inbound X-Request-ID is
// kept; otherwise a new UUID is generated. The id is echoed on the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithID(r.Context(), id)))
	})
}

// WithID returns a copy of ctx carrying id.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the request id, or "" if none was set.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
