package settings

import (
	"github.com/gin-gonic/gin"

	"goalpool/internal/permission"
)

// RegisterRoutes wires the system settings endpoints. The cron route is
// api-key gated instead of token gated and stays on the public group.
func RegisterRoutes(public, authed *gin.RouterGroup, ctrl *SettingsController) {
	public.GET("/settings", ctrl.Get)
	public.GET("/cron/update-day", ctrl.CronUpdateDay)

	admin := authed.Group("/admin")
	admin.Use(permission.RequireRole(permission.RoleAdmin, permission.RoleSuperAdmin))
	{
		admin.PUT("/settings", permission.Require(permission.ManageSystem), ctrl.Update)
		admin.GET("/error-logs", permission.Require(permission.ManageSystem), ctrl.ErrorLogs)
	}
}
