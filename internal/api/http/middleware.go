package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"pos-backend/internal/logger"
	"pos-backend/internal/security"
)

type claimsKey struct{}

// ClaimsFromContext returns the authenticated employee's claims, if any.
func ClaimsFromContext(ctx context.Context) (*security.EmployeeClaims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*security.EmployeeClaims)
	return claims, ok
}

// authMiddleware validates the bearer token and stashes the claims on
// the request context.
func authMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authorization := strings.TrimSpace(r.Header.Get("Authorization"))
			if !strings.HasPrefix(strings.ToLower(authorization), "bearer ") {
				writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "missing bearer token"})
				return
			}

			token := strings.TrimSpace(authorization[len("Bearer "):])
			claims, err := tokens.ValidateToken(token)
			if err != nil {
				writeError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startedAt := time.Now()
		next.ServeHTTP(w, r)
		logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(startedAt).String(),
		)
	})
}
