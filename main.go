package main

import (
	"github.com/sirupsen/logrus"

	"goalpool/config"
	_ "goalpool/docs"
	"goalpool/internal/errorlog"
	"goalpool/internal/game"
	"goalpool/internal/prediction"
	"goalpool/internal/settings"
	"goalpool/internal/user"
	"goalpool/internal/weekly"
	"goalpool/routes"
)

// @title GoalPool REST API
// @version 1.0
// @description Football prediction pool server.
// @host localhost:8090
// @BasePath /api
func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&user.User{},
		&game.Game{},
		&prediction.Prediction{},
		&weekly.Slot{},
		&settings.Settings{},
		&errorlog.ErrorLog{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Info("AutoMigrate successful")

	errSvc := errorlog.NewService(config.DB, log)

	r := routes.SetupRoutes(config.DB, cfg, errSvc)

	log.Infof("Starting server on port %s in %s mode", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
