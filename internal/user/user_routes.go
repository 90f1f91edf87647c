package user

import (
	"github.com/gin-gonic/gin"

	"goalpool/internal/permission"
)

// RegisterRoutes wires the user endpoints. authed carries the JWT
// middleware; admin routes add permission gates on top.
func RegisterRoutes(public, authed *gin.RouterGroup, ctrl *UserController) {
	public.GET("/leaderboard", ctrl.Leaderboard)

	authed.GET("/users/:user_id", permission.Require(permission.ViewUsers), ctrl.GetUser)

	admin := authed.Group("/admin/users")
	admin.Use(permission.RequireRole(permission.RoleAdmin, permission.RoleSuperAdmin))
	{
		admin.GET("", permission.Require(permission.ViewUsers), ctrl.ListUsers)
		admin.POST("", permission.Require(permission.EditUsers), ctrl.CreateUser)
		admin.PUT("/:user_id", permission.Require(permission.EditUsers), ctrl.UpdateUser)
		admin.PUT("/:user_id/status", permission.Require(permission.EditUsers), ctrl.SetStatus)
		admin.DELETE("/:user_id", permission.Require(permission.DeleteUsers), ctrl.DeleteUser)
		admin.POST("/reset-points", permission.Require(permission.ManageSystem), ctrl.ResetPoints)
	}
}
