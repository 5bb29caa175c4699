package httpserver

import (
	"context"
	"net/http"
	"strings"

	"github.com/movielog/movielog/internal/domain"
)

type contextKey string

const userContextKey contextKey = "movielog.user"

// requireAuth rejects requests without a resolvable bearer token and stores
// the acting user in the request context. The token's username is re-checked
// against the store by auth.Resolve, so stale tokens for vanished users get
// a 401 here, not deeper in a handler.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			s.respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid authentication information")
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, prefix))

		user, err := s.auth.Resolve(r.Context(), token)
		if err != nil {
			s.respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid authentication information")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// actingUser returns the authenticated user placed by requireAuth.
func actingUser(r *http.Request) (domain.User, bool) {
	user, ok := r.Context().Value(userContextKey).(domain.User)
	return user, ok
}
