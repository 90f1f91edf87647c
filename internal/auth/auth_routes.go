package auth

import (
	"github.com/gin-gonic/gin"

	"goalpool/internal/permission"
)

// RegisterRoutes wires the auth endpoints.
func RegisterRoutes(public, authed *gin.RouterGroup, ctrl *AuthController) {
	grp := public.Group("/auth")
	{
		grp.POST("/login", ctrl.Login)
		grp.POST("/admin-login", ctrl.AdminLogin)
		grp.POST("/register", ctrl.Register)
	}

	authed.POST("/admin/auth/set-password",
		permission.RequireRole(permission.RoleSuperAdmin),
		ctrl.SetPassword)
}
