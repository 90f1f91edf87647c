package weekly

import (
	"github.com/gin-gonic/gin"

	"goalpool/internal/permission"
)

// RegisterRoutes wires the weekly schedule endpoints.
func RegisterRoutes(public, authed *gin.RouterGroup, ctrl *SlotController) {
	public.GET("/weekly-games/:week", ctrl.GetWeek)
	public.GET("/weekly-games/:week/:day", ctrl.GetDay)

	admin := authed.Group("/admin/weekly-games")
	admin.Use(permission.RequireRole(permission.RoleAdmin, permission.RoleSuperAdmin))
	{
		admin.PUT("/:week/:day", permission.Require(permission.EditGames), ctrl.SaveDay)
		admin.POST("/:week/sync", permission.Require(permission.EditGames), ctrl.SyncWeek)
	}
}
