package permission

import (
	"github.com/gin-gonic/gin"

	"goalpool/pkg/responses"
)

const contextRoleKey = "auth_user_role"

// SetRole stores the authenticated user's role in the request context.
// Called by the auth middleware after the token is validated.
func SetRole(c *gin.Context, role Role) {
	c.Set(contextRoleKey, role)
}

// RoleFromContext returns the role the auth middleware stored, defaulting to
// the plain user role when absent.
func RoleFromContext(c *gin.Context) Role {
	v, exists := c.Get(contextRoleKey)
	if !exists {
		return RoleUser
	}
	role, ok := v.(Role)
	if !ok {
		return RoleUser
	}
	return role
}

// Require aborts with 403 unless the authenticated user's role holds perm.
func Require(perm Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Has(RoleFromContext(c), perm) {
			responses.Forbidden(c, "")
			return
		}
		c.Next()
	}
}

// RequireRole aborts with 403 unless the user's role is one of roles.
func RequireRole(roles ...Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := RoleFromContext(c)
		for _, r := range roles {
			if current == r {
				c.Next()
				return
			}
		}
		responses.Forbidden(c, "")
	}
}
