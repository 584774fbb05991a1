package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGenCommand() *cobra.Command {
	genCmd := &cobra.Command{
		Use:   "gen <kind>",
		Short: "Generate IDs locally, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			count, _ := cmd.Flags().GetInt("count")
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}
			if cmd.Flags().Changed("width") {
				cfg.Sequence.Width, _ = cmd.Flags().GetInt("width")
			}
			if cmd.Flags().Changed("mixed") {
				cfg.Sequence.Mixed, _ = cmd.Flags().GetBool("mixed")
			}
			if cmd.Flags().Changed("prefix") {
				cfg.External.Prefix, _ = cmd.Flags().GetString("prefix")
			}

			registry, err := buildRegistry(cfg)
			if err != nil {
				return err
			}
			gen, err := lookupKind(registry, args[0])
			if err != nil {
				return err
			}

			ids, err := gen.GenerateBatch(count)
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
	genCmd.Flags().IntP("count", "c", 1, "Number of IDs to generate")
	genCmd.Flags().Int("width", 0, "Sequence kind: character width (default from config)")
	genCmd.Flags().Bool("mixed", false, "Sequence kind: mix values before encoding")
	genCmd.Flags().String("prefix", "", "External kind: ID prefix (default from config)")
	return genCmd
}
