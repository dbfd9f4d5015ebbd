package middleware

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/gorilla/mux"

	"github.com/jas-4484/enrollment-api/internal/auth"
	"github.com/jas-4484/enrollment-api/internal/models"
	"github.com/jas-4484/enrollment-api/internal/response"
)

type contextKey string

const claimsKey contextKey = "claims"

// TokenCookie is the cookie the signin handler stores the token in.
const TokenCookie = "token"

// ClaimsFromContext returns the claims stored by Authenticate.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}

// Authenticate rejects requests without a valid token. The token is read from
// an "Authorization: Bearer" header, falling back to the token cookie.
func Authenticate(issuer *auth.Issuer) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				response.Failure(w, http.StatusUnauthorized, "Unauthorized", nil)
				return
			}

			claims, err := issuer.ValidateJWT(token)
			if err != nil {
				response.Failure(w, http.StatusUnauthorized, "Unauthorized", err.Error())
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if cookie, err := r.Cookie(TokenCookie); err == nil {
		return cookie.Value
	}
	return ""
}

// RequireRole lets the request through only when the caller holds one of roles.
func RequireRole(roles ...models.UserRole) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				response.Failure(w, http.StatusUnauthorized, "Unauthorized", nil)
				return
			}
			if !slices.Contains(roles, claims.Role) {
				response.Failure(w, http.StatusForbidden, "Forbidden access", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
