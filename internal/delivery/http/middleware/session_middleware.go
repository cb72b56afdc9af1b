package middleware

import (
	"context"
	"net/http"
	"voltbay-storefront/internal/domain"
	"voltbay-storefront/internal/session"
)

// SessionMiddleware attaches the browser session (creating one if needed) and
// places it on the request context for handlers.
func SessionMiddleware(manager *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := manager.Attach(w, r)
			ctx := context.WithValue(r.Context(), domain.SessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
