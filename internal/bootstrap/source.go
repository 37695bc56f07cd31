// Package bootstrap wires the configured campaign source for the server and
// the command line tool.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"mesa-campaigns/internal/adapter/apiclient"
	"mesa-campaigns/internal/adapter/postgres"
	"mesa-campaigns/internal/config"
	"mesa-campaigns/internal/config/configs"
	"mesa-campaigns/internal/core/port"
	"mesa-campaigns/internal/db"
)

// NewLogger builds the application logger writing to w.
func NewLogger(cfg config.Config, w io.Writer) *slog.Logger {
	return cfg.Log.NewLogger(w).With(slog.String("env", cfg.Env))
}

// NewSource returns the campaign source selected by cfg.Source.Kind and a
// function releasing its resources.
func NewSource(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.CampaignSource, func(), error) {
	switch cfg.Source.Kind {
	case configs.SourceAPI:
		logger.Info("reading campaigns from api", slog.String("url", cfg.Source.APIURL.String()))
		return apiclient.NewClient(cfg.Source, logger), func() {}, nil
	case configs.SourcePostgres:
		if cfg.Psql.RunMigrations {
			from, err := db.Migrate(cfg.Psql.Addr.String())
			if err != nil {
				return nil, nil, fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully", slog.Uint64("from", uint64(from)))
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("reading campaigns from postgres")
		return postgres.NewCampaignRepository(pool), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown source kind %q", cfg.Source.Kind)
	}
}
