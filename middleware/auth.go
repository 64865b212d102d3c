package middleware

import (
	"context"
	"net/http"

	"github.com/academyhq/academy-console/models"
	"github.com/academyhq/academy-console/session"
)

type contextKey string

const userContextKey contextKey = "user"

// RequireSession admits only requests made while the store holds a live
// session. The check is local (no upstream round trip); the upstream
// re-checks every proxied call anyway.
func RequireSession(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !store.Authenticated() {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			user, _ := store.Current()
			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route group to the listed roles. Gating here is a
// UX boundary, not a security one — the upstream enforces for real.
func RequireRole(roles ...models.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			for _, role := range roles {
				if role == user.Role {
					next.ServeHTTP(w, r)
					return
				}
			}
			http.Error(w, "Forbidden", http.StatusForbidden)
		})
	}
}

func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userContextKey).(models.User)
	return user, ok
}
