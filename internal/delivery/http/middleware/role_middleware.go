package middleware

import (
	"net/http"
	"slices"

	"therapy-clinic-api/internal/domain/entity"
	"therapy-clinic-api/pkg/response"
)

// RequireRole lets the request through when the caller's role, set by
// Authenticate, is one of roleIDs.
func RequireRole(roleIDs ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roleID, ok := GetRoleIDFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}
			if !slices.Contains(roleIDs, roleID) {
				response.Forbidden(w, "Your role cannot access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin)(next)
}

// RequireStaff allows any clinic role: admin, therapist or front desk.
func RequireStaff(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin, entity.RoleIDTherapist, entity.RoleIDStaff)(next)
}

// RequireAdminOrStaff excludes therapists, e.g. from client record edits.
func RequireAdminOrStaff(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin, entity.RoleIDStaff)(next)
}
