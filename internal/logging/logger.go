// Package logging builds the zerolog logger used by the roman CLI.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvroman/internal/config"
)

// New returns a logger writing to out with a timestamp and an "app" field.
// Format "console" uses zerolog.ConsoleWriter, colored only when out is a
// terminal; "json" writes one object per line.
func New(app string, out io.Writer, cfg config.LogConfig) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("logging: invalid level %q: %w", cfg.Level, err)
	}

	w := out
	if cfg.Format != config.FormatJSON {
		w = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    !isTerminal(out),
		}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Str("app", app).Logger(), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
