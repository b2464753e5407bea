package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dicehall/accounts/internal/api/apierr"
	"github.com/dicehall/accounts/internal/token"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// Auth creates authentication middleware. It extracts the bearer
// token, validates it, and attaches the decoded claims to the request
// context. Requests without a valid token never reach the handler.
func Auth(validator *token.Issuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := extractToken(r)
			if tok == "" {
				apierr.WriteError(w, apierr.NewMissingTokenError())
				return
			}

			claims, err := validator.Validate(tok)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken extracts the bearer token from the Authorization header
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// GetClaims returns the authenticated claims from the request context
func GetClaims(ctx context.Context) *token.Claims {
	claims, _ := ctx.Value(claimsContextKey).(*token.Claims)
	return claims
}

// MustGetClaims returns the authenticated claims or panics
func MustGetClaims(ctx context.Context) *token.Claims {
	claims := GetClaims(ctx)
	if claims == nil {
		panic("no claims in context - auth middleware not applied?")
	}
	return claims
}
