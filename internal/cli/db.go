package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"mesa-campaigns/db/migrations"
	"mesa-campaigns/internal/db"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations to PSQL_ADDRESS",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, err := db.Migrate(a.cfg.Psql.Addr.String())
			if err != nil {
				return err
			}
			a.logger.Info("migrations applied successfully",
				slog.Uint64("from", uint64(from)), slog.Uint64("to", uint64(migrations.Version)))
			return nil
		},
	}
}

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace the database contents with demo campaigns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pool, err := db.NewPostgresPool(cmd.Context(), a.cfg.Psql)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err = db.Seed(cmd.Context(), pool); err != nil {
				return err
			}
			a.logger.Info("demo data seeded", slog.String("database", a.cfg.Psql.Addr.Host))
			return nil
		},
	}
}
