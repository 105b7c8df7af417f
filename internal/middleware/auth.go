package middleware

import (
	"context"
	"net/http"
	"strings"

	"tienda/internal/token"
)

// ctxKey is a private type for context keys defined in this package.
type ctxKey int

const claimsKey ctxKey = iota

// RequireAuth validates the Authorization bearer token and stores its
// claims in the request context. Requests without a valid token get 401.
func RequireAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeUnauthorized(w, "missing bearer token")
				return
			}

			claims, err := token.Parse(strings.TrimPrefix(authHeader, "Bearer "), secret)
			if err != nil {
				writeUnauthorized(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromCtx returns the token claims stored by RequireAuth, or nil
// when the request was not authenticated.
func ClaimsFromCtx(ctx context.Context) *token.Claims {
	claims, _ := ctx.Value(claimsKey).(*token.Claims)
	return claims
}

// writeUnauthorized writes a JSON 401 response.
func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"` + msg + `"}`))
}
