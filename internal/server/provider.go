package server

import (
	"log/slog"

	"prode-service/internal/config"
	"prode-service/internal/providers"
	"prode-service/internal/providers/footballdata"
	"prode-service/internal/providers/static"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.FixtureProvider {
	switch cfg.Provider {
	case "static", "":
		return static.New()
	case "footballdata":
		return footballdata.NewClient(footballdata.Config{
			BaseURL: cfg.FootballData.BaseURL,
			APIKey:  cfg.FootballData.APIKey,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to static", slog.String("provider", cfg.Provider))
		}
		return static.New()
	}
}
