package game

import (
	"github.com/gin-gonic/gin"

	"goalpool/internal/permission"
)

// RegisterRoutes wires the game endpoints. Reads are public; writes sit
// behind the admin permission gates.
func RegisterRoutes(public, authed *gin.RouterGroup, ctrl *GameController) {
	public.GET("/games", ctrl.ListGames)
	public.GET("/games/:game_id", ctrl.GetGame)

	admin := authed.Group("/admin/games")
	admin.Use(permission.RequireRole(permission.RoleAdmin, permission.RoleSuperAdmin))
	{
		admin.POST("", permission.Require(permission.EditGames), ctrl.CreateGame)
		admin.PUT("/:game_id", permission.Require(permission.EditGames), ctrl.UpdateGame)
		admin.PUT("/:game_id/lock", permission.Require(permission.EditGames), ctrl.SetLock)
		admin.POST("/results", permission.Require(permission.EditGames), ctrl.SetResult)
		admin.DELETE("/:game_id", permission.Require(permission.DeleteGames), ctrl.DeleteGame)
	}
}
