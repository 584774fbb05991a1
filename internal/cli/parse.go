package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <kind> <id>",
		Short: "Parse an ID and print the recovered fields as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			registry, err := buildRegistry(cfg)
			if err != nil {
				return err
			}
			gen, err := lookupKind(registry, args[0])
			if err != nil {
				return err
			}

			result, err := gen.Parse(args[1])
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <kind> <id>",
		Short: "Check whether an ID is well-formed for its kind",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			registry, err := buildRegistry(cfg)
			if err != nil {
				return err
			}
			gen, err := lookupKind(registry, args[0])
			if err != nil {
				return err
			}

			valid, reason := gen.Validate(args[1])
			if !valid {
				return fmt.Errorf("invalid: %s", reason)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
}
