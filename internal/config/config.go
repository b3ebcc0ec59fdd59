// Package config loads apcheck settings from the environment and flags.
package config

import (
	"fmt"
	"slices"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"
)

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatTable = "table"
)

// Formats lists the supported output formats.
var Formats = []string{FormatText, FormatJSON, FormatTable}

// Config holds the settings for a contrast check.
// Environment values are overridden by explicitly set flags.
type Config struct {
	Threshold float64 `env:"APCHECK_THRESHOLD" envDefault:"60"`
	Format    string  `env:"APCHECK_FORMAT" envDefault:"text"`
	Precision int     `env:"APCHECK_PRECISION" envDefault:"1"`
	LogLevel  string  `env:"APCHECK_LOG_LEVEL" envDefault:"warn"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// ApplyFlags overrides fields whose flags were set on the command line.
// Flags that are not registered on fs are ignored.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	if changed(fs, "threshold") {
		v, err := fs.GetFloat64("threshold")
		if err != nil {
			return err
		}
		c.Threshold = v
	}
	if changed(fs, "format") {
		v, err := fs.GetString("format")
		if err != nil {
			return err
		}
		c.Format = v
	}
	if changed(fs, "precision") {
		v, err := fs.GetInt("precision")
		if err != nil {
			return err
		}
		c.Precision = v
	}
	return nil
}

func changed(fs *pflag.FlagSet, name string) bool {
	f := fs.Lookup(name)
	return f != nil && f.Changed
}

// Validate checks the configuration for unsupported values.
func (c Config) Validate() error {
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("unsupported format %q (supported: %v)", c.Format, Formats)
	}
	if c.Precision < 0 || c.Precision > 10 {
		return fmt.Errorf("precision must be between 0 and 10, got %d", c.Precision)
	}
	return nil
}
