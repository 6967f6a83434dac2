package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/domain"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/ports"
)

// AuthMiddleware is the authorization guard wrapped around every
// protected route. It resolves the bearer token through the token
// service and places the subject id (and role, when present) into the
// request context. Ownership checks are not performed here: handlers
// scope their queries to the subject id from the context.
type AuthMiddleware struct {
	tokens ports.TokenService
}

func NewAuthMiddleware(tokens ports.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

type contextKey string

const (
	SubjectIDKey contextKey = "subjectID"
	RoleKey      contextKey = "role"
)

// SubjectID returns the authenticated subject id from the context, or
// "" when the request did not pass through the guard.
func SubjectID(ctx context.Context) string {
	id, _ := ctx.Value(SubjectIDKey).(string)
	return id
}

// RoleFromContext returns the authenticated role, if any.
func RoleFromContext(ctx context.Context) domain.Role {
	role, _ := ctx.Value(RoleKey).(domain.Role)
	return role
}

// RequireAuth admits any authenticated subject.
func (m *AuthMiddleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return m.guard("", next)
}

// RequireAdmin admits only tokens carrying the admin role claim.
func (m *AuthMiddleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return m.guard(domain.RoleAdmin, next)
}

func (m *AuthMiddleware) guard(requiredRole domain.Role, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// The Authorization header carries the raw token, exactly as
		// issued; there is no Bearer prefix in this API's contract.
		tokenString := r.Header.Get("Authorization")
		if tokenString == "" {
			writeAuthError(w, "token is missing", http.StatusUnauthorized)
			return
		}

		subjectID, role, err := m.tokens.Verify(tokenString)
		if err != nil {
			if errors.Is(err, domain.ErrTokenExpired) {
				writeAuthError(w, "token has expired", http.StatusUnauthorized)
				return
			}
			log.Printf("auth: token verification failed: %v", err)
			writeAuthError(w, "invalid token", http.StatusUnauthorized)
			return
		}

		if requiredRole != "" && role != requiredRole {
			writeAuthError(w, "forbidden", http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), SubjectIDKey, subjectID)
		ctx = context.WithValue(ctx, RoleKey, role)
		next(w, r.WithContext(ctx))
	}
}

func writeAuthError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + message + `"}`))
}
