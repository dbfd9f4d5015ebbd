package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jas-4484/enrollment-api/internal/models"
	"github.com/jas-4484/enrollment-api/internal/response"
)

// StudentSelf lets students act only on the record named by the studentId
// path variable. adminAllowed controls whether admins pass as well.
func StudentSelf(adminAllowed bool) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				response.Failure(w, http.StatusUnauthorized, "Unauthorized", nil)
				return
			}

			switch claims.Role {
			case models.RoleAdmin:
				if adminAllowed {
					next.ServeHTTP(w, r)
					return
				}
			case models.RoleStudent:
				if claims.StudentID == mux.Vars(r)["studentId"] {
					next.ServeHTTP(w, r)
					return
				}
			}
			response.Failure(w, http.StatusForbidden, "Forbidden access", nil)
		})
	}
}
