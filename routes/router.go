package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"goalpool/config"
	"goalpool/internal/auth"
	"goalpool/internal/errorlog"
	"goalpool/internal/game"
	"goalpool/internal/middleware"
	"goalpool/internal/prediction"
	"goalpool/internal/settings"
	"goalpool/internal/user"
	"goalpool/internal/weekly"
)

// SetupRoutes builds the engine and wires every controller behind the /api
// group. Public routes need no token; everything else goes through
// AuthMiddleware which loads role and status from the users table.
func SetupRoutes(db *gorm.DB, cfg *config.Config, errSvc *errorlog.Service) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{cfg.App.FrontendURL}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	userRepo := user.NewUserRepository(db)
	gameRepo := game.NewGameRepository(db)
	predictionRepo := prediction.NewPredictionRepository(db)
	slotRepo := weekly.NewSlotRepository(db)
	settingsRepo := settings.NewSettingsRepository(db)

	authCtrl := auth.NewAuthController(userRepo, cfg, errSvc)
	userCtrl := user.NewUserController(userRepo, errSvc)
	gameCtrl := game.NewGameController(gameRepo, errSvc)
	predictionCtrl := prediction.NewPredictionController(predictionRepo, gameRepo, errSvc)
	slotCtrl := weekly.NewSlotController(slotRepo, errSvc)
	settingsCtrl := settings.NewSettingsController(settingsRepo, errSvc, cfg.Cron.APIKey)

	api := r.Group("/api")
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(cfg.JWT.AccessTokenSecret, db))

	auth.RegisterRoutes(api, authed, authCtrl)
	user.RegisterRoutes(api, authed, userCtrl)
	game.RegisterRoutes(api, authed, gameCtrl)
	prediction.RegisterRoutes(authed, predictionCtrl)
	weekly.RegisterRoutes(api, authed, slotCtrl)
	settings.RegisterRoutes(api, authed, settingsCtrl)

	return r
}
