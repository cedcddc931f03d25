// Package requestid tags each request with a UUID for log correlation.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Header carries the request ID in responses and trusted inbound requests.
const Header = "X-Request-ID"

type ctxKey struct{}

// Middleware assigns a request ID, reusing the inbound header when a
// proxy already set one, and echoes it on the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		ctx := context.WithValue(r.Context(), ctxKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromContext returns the request ID, or "" if the middleware did not run.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
