package v1

import (
	"net/http"
	"strings"
	"voltbay-storefront/internal/domain"
	"voltbay-storefront/internal/session"
)

// sessionFrom pulls the browser session placed on the context by the session
// middleware.
func sessionFrom(r *http.Request) (*session.Session, bool) {
	sess, ok := r.Context().Value(domain.SessionContextKey).(*session.Session)
	return sess, ok
}

// splitCSV parses a comma-separated query value into a trimmed set.
func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
