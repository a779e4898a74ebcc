package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/okazimirov/learnlog-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (ctxutil.Role, error)
}

// Auth resolves the request role from the bearer token. Requests without a
// token proceed as guests; a token that fails validation is rejected so a
// client with an expired session notices instead of silently degrading to
// read-only.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r.WithContext(ctxutil.WithRole(r.Context(), ctxutil.RoleGuest)))
				return
			}
			role, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithRole(r.Context(), role)))
		})
	}
}

// RequireOwner gates mutating routes: guests get 401. Guest mode is enforced
// here, server-side, rather than trusted to a client flag.
func RequireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ctxutil.RoleFromCtx(r.Context()) != ctxutil.RoleOwner {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
