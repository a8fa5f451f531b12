package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

// TokenValidator validates bearer tokens for the optional auth middleware.
type TokenValidator interface {
	ValidateToken(tokenString string) (*TokenClaims, error)
}

// TokenClaims carries the identity extracted from a validated token.
type TokenClaims struct {
	Subject string
}

type contextKeySubject struct{}

// ContextKeySubject is exported for use in handlers.
var ContextKeySubject = contextKeySubject{}

// GetSubject retrieves the authenticated subject from the context.
func GetSubject(ctx context.Context) string {
	subject, ok := ctx.Value(ContextKeySubject).(string)
	if !ok {
		return ""
	}
	return subject
}

// RequireAuth validates the Authorization header and stores the subject in the
// request context. It is only mounted when a signing key is configured.
func RequireAuth(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok {
				unauthorized(w)
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				if logger != nil {
					logger.WarnContext(r.Context(), "unauthorized access - invalid token",
						"error", err,
						"request_id", GetRequestID(r.Context()),
					)
				}
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySubject, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized","error_description":"Invalid or expired token"}`))
}
