package prediction

import (
	"github.com/gin-gonic/gin"

	"goalpool/internal/permission"
)

// RegisterRoutes wires the prediction endpoints.
func RegisterRoutes(authed *gin.RouterGroup, ctrl *PredictionController) {
	authed.POST("/predictions", ctrl.Submit)
	authed.GET("/predictions", ctrl.ListMine)

	admin := authed.Group("/admin/predictions")
	admin.Use(permission.RequireRole(permission.RoleAdmin, permission.RoleSuperAdmin))
	{
		admin.GET("/game/:game_id", permission.Require(permission.ViewPredictions), ctrl.ListByGame)
		admin.GET("/user/:user_id", permission.Require(permission.ViewPredictions), ctrl.ListByUser)
		admin.DELETE("/:prediction_id", permission.Require(permission.DeletePredictions), ctrl.Delete)
	}
}
