// Package config loads CLI configuration from defaults, a YAML file,
// AZMAR_ environment variables, and command-line flags.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"github.com/ukaji3/azmar-go/pkg/azmar"
)

// DefaultConfigFile is read from the working directory when no file is given.
const DefaultConfigFile = "azmar.yaml"

// EnvPrefix prefixes environment variables, e.g. AZMAR_SKIP_ROWS.
const EnvPrefix = "AZMAR_"

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Config holds CLI settings.
type Config struct {
	Sheet    string `koanf:"sheet"`
	SkipRows int    `koanf:"skip_rows"`
	Format   string `koanf:"format"`
	Pretty   bool   `koanf:"pretty"`
	LogLevel string `koanf:"log_level"`
	Tokens   bool   `koanf:"tokens"`

	// File is the config file that was read, if any.
	File string `koanf:"-"`
}

// Load loads configuration.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"sheet":     azmar.DefaultSheetName,
		"skip_rows": azmar.DefaultSkipRows,
		"format":    FormatTable,
		"pretty":    false,
		"log_level": "warn",
		"tokens":    false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used := cfgFile
	if used == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			used = DefaultConfigFile
		}
	}
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// AZMAR_SKIP_ROWS -> skip_rows
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatTable, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("invalid format: %s (must be table, json, or yaml)", c.Format)
	}
	if c.SkipRows < 0 {
		return fmt.Errorf("invalid skip_rows: %d", c.SkipRows)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level: %s", c.LogLevel)
	}
	return level, nil
}

// Options returns sheet loading options for this config.
func (c *Config) Options(logger *slog.Logger) azmar.Options {
	return azmar.Options{
		SheetName: c.Sheet,
		SkipRows:  c.SkipRows,
		Logger:    logger,
	}
}
