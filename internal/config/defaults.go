package config

import (
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvroman/numeral"
)

// Log formats accepted by LogConfig.Format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Default values. Every key needs a default so AutomaticEnv can see it
// during Unmarshal.
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = FormatConsole
	DefaultRandomCount = 1
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)

	v.SetDefault("random.min", numeral.DefaultRandomMin)
	v.SetDefault("random.max", numeral.DefaultRandomMax)
	v.SetDefault("random.seed", 0)
	v.SetDefault("random.count", DefaultRandomCount)
}
