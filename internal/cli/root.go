// Package cli implements campaignctl, the command line companion of the
// campaign dashboard.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"mesa-campaigns/internal/bootstrap"
	"mesa-campaigns/internal/config"
	"mesa-campaigns/internal/core/port"
)

// SourceFactory opens a campaign source for cfg and returns a function
// releasing it.
type SourceFactory func(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.CampaignSource, func(), error)

type app struct {
	cfg       config.Config
	logger    *slog.Logger
	newSource SourceFactory
}

// NewRootCmd returns the campaignctl command tree reading campaigns from the
// configured source.
func NewRootCmd() *cobra.Command {
	return newRootCmd(bootstrap.NewSource)
}

func newRootCmd(newSource SourceFactory) *cobra.Command {
	a := &app{newSource: newSource}

	root := &cobra.Command{
		Use:   "campaignctl",
		Short: "Inspect advertising campaigns from the command line",
		Long: `campaignctl reads the same campaign source as the dashboard server.

Configuration is taken from the environment (SOURCE_*, PSQL_*, LOG_*).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			// logs go to stderr so reports stay pipeable
			a.logger = bootstrap.NewLogger(cfg, os.Stderr)
			return nil
		},
	}

	root.AddCommand(newReportCmd(a))
	root.AddCommand(newMigrateCmd(a))
	root.AddCommand(newSeedCmd(a))
	return root
}
