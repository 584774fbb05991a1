package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/weiawesome/idkit/internal/server"
	pkglog "github.com/weiawesome/idkit/pkg/log"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the ID generation HTTP service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			pkglog.Init(pkglog.Config{
				Level:       cfg.Log.Level,
				Pretty:      cfg.Log.Pretty,
				ServiceName: "idkit",
			})
			logger := pkglog.L()

			registry, err := buildRegistry(cfg)
			if err != nil {
				logger.Error().Err(err).Msg("failed to build generator registry")
				return err
			}
			logger.Info().
				Int("kinds", len(registry)).
				Int("sequence_width", cfg.Sequence.Width).
				Bool("sequence_mixed", cfg.Sequence.Mixed).
				Str("external_prefix", cfg.External.Prefix).
				Int64("snowflake_machine_id", cfg.Snowflake.MachineID).
				Msg("generator registry ready")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.Run(ctx, cfg, registry)
		},
	}
}
