// @title Encanto API
// @version 1.0
// @description Backend for the Encanto gated video-lesson platform.

// @host localhost:8080
// @BasePath /api

package main

import (
	"log"

	"encanto_backend/internal/app"
	"encanto_backend/internal/config"
	"encanto_backend/pkg/configwatcher"
	"encanto_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	go configwatcher.WatchConfig("configs/config.yaml", application.ApplyConfig)

	application.Run()
}
