package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/weiawesome/idkit/internal/config"
	"github.com/weiawesome/idkit/internal/generator"
)

// loadConfig reads configuration from the directory named by the root
// --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// buildRegistry constructs one of every strategy from config. Construction
// fails fast on out-of-range strategy parameters.
func buildRegistry(cfg *config.Config) (generator.Registry, error) {
	seq, err := generator.NewSequenceGenerator(cfg.Sequence.Width, cfg.Sequence.Mixed)
	if err != nil {
		return nil, fmt.Errorf("sequence generator: %w", err)
	}
	ext, err := generator.NewExternalGenerator(cfg.External.Prefix)
	if err != nil {
		return nil, fmt.Errorf("external generator: %w", err)
	}
	snow, err := generator.NewSnowflakeGenerator(cfg.Snowflake.MachineID, cfg.Snowflake.Epoch)
	if err != nil {
		return nil, fmt.Errorf("snowflake generator: %w", err)
	}
	nano, err := generator.NewNanoIDGenerator(cfg.NanoID.Size, cfg.NanoID.Alphabet)
	if err != nil {
		return nil, fmt.Errorf("nanoid generator: %w", err)
	}
	c2, err := generator.NewCUID2Generator(cfg.CUID2.Length)
	if err != nil {
		return nil, fmt.Errorf("cuid2 generator: %w", err)
	}

	return generator.Registry{
		generator.KindSequence:  seq,
		generator.KindExternal:  ext,
		generator.KindSnowflake: snow,
		generator.KindUUID:      generator.NewUUIDGenerator(),
		generator.KindULID:      generator.NewULIDGenerator(),
		generator.KindKSUID:     generator.NewKSUIDGenerator(),
		generator.KindNanoID:    nano,
		generator.KindCUID2:     c2,
	}, nil
}

// lookupKind resolves a kind argument against the registry.
func lookupKind(registry generator.Registry, kind string) (generator.Generator, error) {
	gen, ok := registry.Get(kind)
	if !ok {
		return nil, fmt.Errorf("unknown kind %q; run \"idkit kinds\" to list them", kind)
	}
	return gen, nil
}
