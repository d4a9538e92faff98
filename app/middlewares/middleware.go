package middlewares

import (
	"net/http"

	"github.com/gostore/admin/app/helpers"
	"github.com/gostore/admin/app/utils/sessions"
)

// SessionAuthMiddleware resolves the caller identity from the session
// cookie and stores it in the request context. It never rejects:
// public reads go through without identity, and mutating handlers
// decide what an empty user ID means.
func SessionAuthMiddleware(sessionStore sessions.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := sessionStore.GetUserID(r)
			if userID != "" {
				r = r.WithContext(helpers.WithUserID(r.Context(), userID))
			}
			next.ServeHTTP(w, r)
		})
	}
}
