package main

import (
	"rental/config"
	"rental/di"
	"rental/helper"
	"rental/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Rental API
// @version 1.0
// @description Apartment catalogue, availability and reservations.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.Configure(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate database")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
