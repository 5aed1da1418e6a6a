// Package cli implements the roman command tree on top of the numeral package.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvroman/internal/config"
	"github.com/katalvlaran/lvroman/internal/logging"
)

// Version is reported by the version command and --version.
var Version = "0.1.0-dev"

// app carries state shared by every subcommand of one invocation.
type app struct {
	v        *viper.Viper
	cfg      *config.Config
	log      zerolog.Logger
	confPath string
	debug    bool
}

// NewRootCommand builds a fresh command tree. Output goes to the command's
// configured writers, so tests can capture it with SetOut/SetErr.
func NewRootCommand() *cobra.Command {
	a := &app{v: config.New(), log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "roman",
		Short: "Convert, check and compute with Roman numerals",
		Long: `roman converts between integers and Roman numerals (0-3999),
validates numeral strings and evaluates arithmetic over numerals and plain
numbers. Settings come from --conf, ROMAN_* environment variables and flags.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&a.confPath, "conf", "", "configuration file path (toml, yaml or json)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")
	root.PersistentFlags().String("log-format", config.DefaultLogFormat, "log format: console or json")
	a.bindFlag("log.format", root.PersistentFlags(), "log-format")

	root.AddCommand(
		newParseCmd(a),
		newEncodeCmd(a),
		newValidateCmd(a),
		newPlacesCmd(a),
		newRandomCmd(a),
		newCalcCmd(a),
		newVersionCmd(),
	)

	return root
}

// bindFlag ties a config key to a registered flag. A missing flag is a
// programming error, so it panics while the command tree is built.
func (a *app) bindFlag(key string, flags *pflag.FlagSet, name string) {
	if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
		panic(fmt.Sprintf("cli: bind %s to --%s: %v", key, name, err))
	}
}

// init loads configuration and builds the logger once flags are parsed.
func (a *app) init(stderr io.Writer) error {
	cfg, err := config.Load(a.v, a.confPath)
	if err != nil {
		return err
	}
	if a.debug {
		cfg.Log.Level = zerolog.LevelDebugValue
	}
	log, err := logging.New("roman", stderr, cfg.Log)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	a.log.Debug().Str("conf", a.confPath).Interface("random", cfg.Random).Msg("configuration loaded")

	return nil
}

// Execute runs the command tree against os.Args and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
