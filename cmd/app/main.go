package main

import (
	"petcare/config"
	"petcare/di"
	"petcare/helper"
	"petcare/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Petcare API
// @version 1.0
// @description Scheduling, pricing, GPS tracking and payroll for a pet-walking business.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
