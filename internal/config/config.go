// Package config loads settings for the roman command line tool.
//
// Sources, lowest priority first:
//
//   - built-in defaults (setDefaults)
//   - an optional config file (TOML, YAML or JSON, chosen by extension)
//   - ROMAN_* environment variables, with "." in keys replaced by "_"
//     (random.seed → ROMAN_RANDOM_SEED)
//   - command line flags bound to the same viper instance
package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvroman/numeral"
)

// ErrInvalidConfig indicates a configuration value that fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix is the environment variable prefix for every key.
const EnvPrefix = "ROMAN"

// Config is the complete CLI configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Random RandomConfig `mapstructure:"random"`
}

// LogConfig selects logger verbosity and output format.
type LogConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, error.
	Level string `mapstructure:"level"`
	// Format is "console" (human readable) or "json".
	Format string `mapstructure:"format"`
}

// RandomConfig holds defaults for the random command.
type RandomConfig struct {
	Min   int   `mapstructure:"min"`
	Max   int   `mapstructure:"max"`
	Seed  int64 `mapstructure:"seed"` // 0 means time-seeded
	Count int   `mapstructure:"count"`
}

// Validate checks settings every command depends on. Random settings are
// checked by RandomConfig.Validate where the random command consumes them.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("%w: log.format must be %q or %q, got %q", ErrInvalidConfig, FormatConsole, FormatJSON, c.Log.Format)
	}

	return nil
}

// Validate checks the bounds against the numeral range and requires a
// positive count.
func (r RandomConfig) Validate() error {
	if r.Min < numeral.MinValue || r.Max > numeral.MaxValue || r.Min > r.Max {
		return fmt.Errorf("%w: random bounds [%d, %d] must lie within [%d, %d]: %w",
			ErrInvalidConfig, r.Min, r.Max, numeral.MinValue, numeral.MaxValue, numeral.ErrInvalidRange)
	}
	if r.Count < 1 {
		return fmt.Errorf("%w: random.count must be at least 1, got %d", ErrInvalidConfig, r.Count)
	}

	return nil
}
