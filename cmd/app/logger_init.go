package main

import (
	"github.com/osse101/GrapeChallenge_Web/internal/config"
	"github.com/osse101/GrapeChallenge_Web/internal/logger"
)

// initLogger installs the default slog logger from the app configuration.
// Source locations are only attached in dev.
func initLogger(cfg *config.Config) {
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDev(),
	)

	logger.InitLogger(loggerConfig)
}
