// Command seed creates the database schema without starting the API server.
// Useful for bootstrapping a fresh database before first deploy.
package main

import (
	"github.com/dreed/taskhub/internal/config"
	"github.com/dreed/taskhub/internal/repository/postgres"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	log.Info().Msg("connecting to database")

	// NewConnection runs the migrations as part of opening the handle.
	if _, err := postgres.NewConnection(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	log.Info().Msg("database tables created successfully")
}
