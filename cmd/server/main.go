package main

import (
	"context"

	"github.com/joho/godotenv"

	"github.com/cityevents/events-system/internal/api"
	"github.com/cityevents/events-system/internal/core/ports"
	"github.com/cityevents/events-system/internal/infrastructure/config"
	"github.com/cityevents/events-system/internal/infrastructure/db/postgres"
	"github.com/cityevents/events-system/internal/infrastructure/feed"
	"github.com/cityevents/events-system/pkg/logger"
)

func main() {
	// .env is optional; system environment variables win either way.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required; refusing to start without a signing key")
	}

	ctx := context.Background()

	db, err := postgres.Open(ctx, cfg.Database.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}
	if err := postgres.EnsureAdmin(ctx, db, cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.Username); err != nil {
		log.Fatal().Err(err).Msg("admin seed failed")
	}

	var changeFeed ports.ChangeFeed
	if cfg.Kafka.Addr != "" {
		announcer := feed.NewAnnouncer(cfg.Kafka.Addr, cfg.Kafka.Topic, log)
		defer announcer.Close()
		changeFeed = announcer
		log.Info().Str("topic", cfg.Kafka.Topic).Msg("change feed enabled")
	}

	e := api.NewRouter(db, changeFeed, cfg.JWTSecret, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting events API")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
