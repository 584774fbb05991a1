// Package cli assembles the idkit command tree.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// NewRoot constructs the root command with all subcommands attached.
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "idkit",
		Short:        "ID generation toolkit and service",
		Long:         "idkit generates, validates, and parses IDs of several kinds,\neither locally or as an HTTP service.",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("config", "./config", "Directory containing config.yaml")

	root.AddCommand(
		newServeCommand(),
		newGenCommand(),
		newValidateCommand(),
		newParseCommand(),
		newKindsCommand(),
	)
	return root
}

// Execute runs the CLI, exiting non-zero on error.
func Execute() {
	if err := NewRoot().Execute(); err != nil {
		os.Exit(1)
	}
}
