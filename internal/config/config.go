// Package config loads service configuration from an optional YAML file
// plus environment overrides, with defaults suitable for local use.
package config

import (
	"github.com/weiawesome/idkit/internal/generator"
	pkgconfig "github.com/weiawesome/idkit/pkg/config"
	"github.com/weiawesome/idkit/pkg/requestid"
)

type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Sequence  SequenceConfig
	External  ExternalConfig
	Snowflake SnowflakeConfig
	NanoID    NanoIDConfig `mapstructure:"nanoid"`
	CUID2     CUID2Config  `mapstructure:"cuid2"`
}

type ServerConfig struct {
	Host string
	Port int
}

type LogConfig struct {
	Level  string
	Pretty bool
}

type SequenceConfig struct {
	Width int
	Mixed bool
}

type ExternalConfig struct {
	Prefix string
}

type SnowflakeConfig struct {
	MachineID int64 `mapstructure:"machine_id"`
	Epoch     int64
}

type NanoIDConfig struct {
	Size     int
	Alphabet string
}

type CUID2Config struct {
	Length int
}

// Load reads config.yaml from path (missing file is fine) and applies
// environment overrides. Strategy parameters are range-checked by the
// generator constructors, not here.
func Load(path string) (*Config, error) {
	v, err := pkgconfig.Load(path, "config")
	if err != nil {
		return nil, err
	}

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8090)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("sequence.width", requestid.WidthNarrow)
	v.SetDefault("sequence.mixed", false)
	v.SetDefault("external.prefix", generator.DefaultExternalPrefix)
	v.SetDefault("snowflake.machine_id", 1)
	v.SetDefault("snowflake.epoch", generator.DefaultSnowflakeEpoch)
	v.SetDefault("nanoid.size", generator.DefaultNanoIDSize)
	v.SetDefault("nanoid.alphabet", generator.DefaultNanoIDAlphabet)
	v.SetDefault("cuid2.length", generator.DefaultCUID2Length)

	v.BindEnv("server.port", "PORT")
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.pretty", "LOG_PRETTY")
	v.BindEnv("sequence.width", "SEQUENCE_WIDTH")
	v.BindEnv("sequence.mixed", "SEQUENCE_MIXED")
	v.BindEnv("external.prefix", "EXTERNAL_PREFIX")
	v.BindEnv("snowflake.machine_id", "SNOWFLAKE_MACHINE_ID")
	v.BindEnv("nanoid.size", "NANOID_SIZE")
	v.BindEnv("nanoid.alphabet", "NANOID_ALPHABET")
	v.BindEnv("cuid2.length", "CUID2_LENGTH")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
